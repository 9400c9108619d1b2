package recommend

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/propertyloop/leadmatch/internal/vectordb"
)

// RegisterRoutes mounts the recommendation and rule-drafting endpoints.
// drafter and search may be nil when no LLM provider or vector index is
// configured; their endpoints then answer 503.
func RegisterRoutes(r chi.Router, rec *Recommender, drafter *Drafter, search vectordb.VectorStore) {
	r.Get("/api/leads/{id}/recommendations", handleRecommendations(rec))
	r.Post("/api/rules/draft", handleDraftRule(drafter))
	r.Get("/api/advice/search", handleSearch(search))
}

func handleRecommendations(rec *Recommender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := rec.ForLead(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "lead not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if recs == nil {
			recs = []Recommendation{}
		}
		writeJSON(w, http.StatusOK, recs)
	}
}

type draftRequest struct {
	Brief string `json:"brief"`
}

func handleDraftRule(drafter *Drafter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if drafter == nil {
			http.Error(w, "no completion provider configured", http.StatusServiceUnavailable)
			return
		}
		var req draftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Brief == "" {
			http.Error(w, "brief is required", http.StatusBadRequest)
			return
		}
		tree, err := drafter.Draft(r.Context(), req.Brief)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, tree)
	}
}

func handleSearch(search vectordb.VectorStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if search == nil {
			http.Error(w, "no vector index configured", http.StatusServiceUnavailable)
			return
		}
		query := r.URL.Query().Get("q")
		if query == "" {
			http.Error(w, "q query parameter is required", http.StatusBadRequest)
			return
		}

		var filter *vectordb.SearchFilter
		if tenantID := r.URL.Query().Get("tenant_id"); tenantID != "" {
			filter = &vectordb.SearchFilter{TenantID: &tenantID}
		}

		results, err := search.Search(r.Context(), query, 10, filter)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if results == nil {
			results = []vectordb.SearchResult{}
		}
		writeJSON(w, http.StatusOK, results)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
