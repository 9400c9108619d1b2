package flows

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts flow configuration endpoints on the given router.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Get("/api/flows", listFlowsHandler(store))
	r.Get("/api/flows/{id}", getFlowHandler(store))
	r.Post("/api/flows", createFlowHandler(store))
	r.Put("/api/flows/{id}", updateFlowHandler(store))
	r.Delete("/api/flows/{id}", deleteFlowHandler(store))
}

func listFlowsHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.URL.Query().Get("tenant_id")
		if tenantID == "" {
			http.Error(w, "tenant_id is required", http.StatusBadRequest)
			return
		}
		result, err := store.ListByTenant(r.Context(), tenantID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if result == nil {
			result = []Flow{}
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func getFlowHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		flow, err := store.Get(r.Context(), id)
		if err != nil {
			http.Error(w, "flow not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, flow)
	}
}

func createFlowHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var f Flow
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if f.TenantID == "" || f.Name == "" {
			http.Error(w, "tenant_id and name are required", http.StatusBadRequest)
			return
		}
		if err := store.Create(r.Context(), &f); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, f)
	}
}

func updateFlowHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var f Flow
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		f.ID = chi.URLParam(r, "id")
		if err := store.Update(r.Context(), &f); err != nil {
			http.Error(w, "flow not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, f)
	}
}

func deleteFlowHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := store.Delete(r.Context(), id); err != nil {
			http.Error(w, "flow not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
