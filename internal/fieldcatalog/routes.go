package fieldcatalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/propertyloop/leadmatch/internal/concepts"
	"github.com/propertyloop/leadmatch/internal/flows"
)

// RegisterRoutes mounts field catalog endpoints on the given router. The
// catalog is rebuilt from the tenant's live flows on every request; it is a
// pure function of the flow definitions, so no invalidation is needed here.
func RegisterRoutes(r chi.Router, reg *concepts.Registry, flowStore *flows.Store) {
	r.Get("/api/fields", listFieldsHandler(reg, flowStore))
	r.Get("/api/fields/custom", customFieldsHandler(reg, flowStore))
	r.Get("/api/concepts", listConceptsHandler(reg))
}

func buildForTenant(r *http.Request, reg *concepts.Registry, flowStore *flows.Store) ([]Field, error) {
	tenantID := r.URL.Query().Get("tenant_id")
	if tenantID == "" {
		return nil, errMissingTenant
	}
	flws, err := flowStore.ListByTenant(r.Context(), tenantID)
	if err != nil {
		return nil, err
	}
	return Build(reg, flws), nil
}

var errMissingTenant = &missingTenantError{}

type missingTenantError struct{}

func (*missingTenantError) Error() string { return "tenant_id is required" }

func listFieldsHandler(reg *concepts.Registry, flowStore *flows.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog, err := buildForTenant(r, reg, flowStore)
		if err == errMissingTenant {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if catalog == nil {
			catalog = []Field{}
		}
		writeJSON(w, http.StatusOK, catalog)
	}
}

func customFieldsHandler(reg *concepts.Registry, flowStore *flows.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog, err := buildForTenant(r, reg, flowStore)
		if err == errMissingTenant {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		custom := CustomFields(catalog)
		if custom == nil {
			custom = []Field{}
		}
		writeJSON(w, http.StatusOK, custom)
	}
}

func listConceptsHandler(reg *concepts.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, reg.All())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
