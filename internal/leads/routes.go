package leads

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts lead endpoints on the given router.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Get("/api/leads", listLeadsHandler(store))
	r.Get("/api/leads/{id}", getLeadHandler(store))
	r.Post("/api/leads", createLeadHandler(store))
	r.Put("/api/leads/{id}/answers", replaceAnswersHandler(store))
	r.Put("/api/leads/{id}/answers/{fieldID}", setAnswerHandler(store))
	r.Delete("/api/leads/{id}", deleteLeadHandler(store))
}

func listLeadsHandler(store *Store) http.HandlerFunc {
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
			result = []Lead{}
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func getLeadHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lead, err := store.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "lead not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, lead)
	}
}

func createLeadHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var l Lead
		if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if l.TenantID == "" {
			http.Error(w, "tenant_id is required", http.StatusBadRequest)
			return
		}
		if err := store.Create(r.Context(), &l); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, l)
	}
}

func replaceAnswersHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var answers map[string]string
		if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		id := chi.URLParam(r, "id")
		if err := store.ReplaceAnswers(r.Context(), id, answers); err != nil {
			http.Error(w, "lead not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func setAnswerHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Value string `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		id := chi.URLParam(r, "id")
		fieldID := chi.URLParam(r, "fieldID")
		if err := store.SetAnswer(r.Context(), id, fieldID, body.Value); err != nil {
			http.Error(w, "lead not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func deleteLeadHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			http.Error(w, "lead not found", http.StatusNotFound)
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
