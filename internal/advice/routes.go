package advice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/propertyloop/leadmatch/internal/concepts"
	"github.com/propertyloop/leadmatch/internal/rules"
)

// Indexer keeps a semantic index of advice entries in sync with the store.
// A nil Indexer disables indexing.
type Indexer interface {
	IndexAdvice(ctx context.Context, a *Advice) error
	DeleteByAdviceID(ctx context.Context, adviceID string) error
}

// RegisterRoutes mounts the advice CRUD endpoints. Writes accept either a
// field-addressed rule directly or a concept-addressed authored rule; the
// authored form is validated against the registry and lowered to the
// field-addressed form before it is stored. Writes are mirrored into idx
// when one is given.
func RegisterRoutes(r chi.Router, store *Store, reg *concepts.Registry, idx Indexer) {
	r.Get("/api/advice", handleList(store))
	r.Post("/api/advice", handleCreate(store, reg, idx))
	r.Get("/api/advice/{id}", handleGet(store))
	r.Get("/api/advice/{id}/preview", handlePreview(store))
	r.Put("/api/advice/{id}", handleUpdate(store, reg, idx))
	r.Delete("/api/advice/{id}", handleDelete(store, idx))
}

func handleList(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.URL.Query().Get("tenant_id")
		if tenantID == "" {
			http.Error(w, "tenant_id query parameter is required", http.StatusBadRequest)
			return
		}
		flowID := r.URL.Query().Get("flow_id")
		items, err := store.ListByTenant(r.Context(), tenantID, flowID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func handleCreate(store *Store, reg *concepts.Registry, idx Indexer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var a Advice
		if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if a.TenantID == "" || a.Title == "" {
			http.Error(w, "tenant_id and title are required", http.StatusBadRequest)
			return
		}
		if err := applyAuthoredRule(reg, &a); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := store.Create(r.Context(), &a); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		indexAdvice(r.Context(), idx, &a)
		writeJSON(w, http.StatusCreated, a)
	}
}

func handleGet(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := store.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "advice not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

func handlePreview(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := store.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "advice not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		html, err := RenderBody(a)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(html))
	}
}

func handleUpdate(store *Store, reg *concepts.Registry, idx Indexer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		existing, err := store.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "advice not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		var a Advice
		if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		a.ID = existing.ID
		a.TenantID = existing.TenantID
		if err := applyAuthoredRule(reg, &a); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := store.Update(r.Context(), &a); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		indexAdvice(r.Context(), idx, &a)
		writeJSON(w, http.StatusOK, a)
	}
}

func handleDelete(store *Store, idx Indexer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := store.Delete(r.Context(), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "advice not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if idx != nil {
			if err := idx.DeleteByAdviceID(r.Context(), id); err != nil {
				log.Printf("removing advice %s from index: %v", id, err)
			}
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// indexAdvice mirrors a stored entry into the index. Index failures are
// logged rather than failing the request; the database stays the source
// of truth.
func indexAdvice(ctx context.Context, idx Indexer, a *Advice) {
	if idx == nil {
		return
	}
	if err := idx.IndexAdvice(ctx, a); err != nil {
		log.Printf("indexing advice %s: %v", a.ID, err)
	}
}

// applyAuthoredRule validates an authored concept tree and derives the stored
// field-addressed rule from it. A request that carries only a field rule is
// passed through untouched.
func applyAuthoredRule(reg *concepts.Registry, a *Advice) error {
	if a.Authored == nil {
		return nil
	}
	if err := ValidateAuthored(reg, a.Authored); err != nil {
		return err
	}
	lowered := rules.Lower(*a.Authored)
	a.Rule = &lowered
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
