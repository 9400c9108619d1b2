package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/propertyloop/leadmatch/internal/concepts"
	"github.com/propertyloop/leadmatch/internal/db"
	"github.com/propertyloop/leadmatch/internal/rules"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func sampleAdvice(tenantID string) *Advice {
	return &Advice{
		TenantID: tenantID,
		Title:    "Fast movers need pre-approval",
		Body:     "## Get pre-approved\n\nMovers on a short timeline should talk to a lender **first**.",
		Category: "financing",
		Rule: &rules.FieldGroup{
			Logic: rules.LogicAnd,
			Children: []rules.FieldNode{
				rules.ConditionNode(rules.FieldCondition{
					Ref:      rules.FieldRef{FieldID: "timeline"},
					Operator: rules.OpEquals,
					Value:    rules.SingleValue("0-3"),
					Weight:   2,
				}),
			},
		},
	}
}

func TestCreateAndGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	a := sampleAdvice("tenant-1")
	if err := store.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID == "" {
		t.Fatal("Create should assign an ID")
	}

	got, err := store.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != a.Title {
		t.Errorf("Title = %q, want %q", got.Title, a.Title)
	}
	if got.Rule == nil {
		t.Fatal("Rule should survive a round trip")
	}
	if len(got.Rule.Children) != 1 {
		t.Fatalf("Rule children = %d, want 1", len(got.Rule.Children))
	}
	cond := got.Rule.Children[0].Condition
	if cond == nil || cond.Ref.FieldID != "timeline" {
		t.Errorf("condition = %+v, want field timeline", cond)
	}
	if cond.Weight != 2 {
		t.Errorf("Weight = %v, want 2", cond.Weight)
	}
}

func TestCreateDefaultsCategory(t *testing.T) {
	store := setupTestStore(t)
	a := sampleAdvice("tenant-1")
	a.Category = ""
	if err := store.Create(context.Background(), a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.Category != "general" {
		t.Errorf("Category = %q, want general", a.Category)
	}
}

func TestListByTenantFlowScope(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	global := sampleAdvice("tenant-1")
	global.Title = "Always applicable"
	if err := store.Create(ctx, global); err != nil {
		t.Fatalf("Create: %v", err)
	}

	scoped := sampleAdvice("tenant-1")
	scoped.Title = "Buyer flow only"
	scoped.FlowID = "flow-buyers"
	if err := store.Create(ctx, scoped); err != nil {
		t.Fatalf("Create: %v", err)
	}

	other := sampleAdvice("tenant-1")
	other.Title = "Seller flow only"
	other.FlowID = "flow-sellers"
	if err := store.Create(ctx, other); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.ListByTenant(ctx, "tenant-1", "flow-buyers")
	if err != nil {
		t.Fatalf("ListByTenant: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d advice for flow-buyers, want 2 (global + scoped)", len(got))
	}
	for _, a := range got {
		if a.FlowID == "flow-sellers" {
			t.Errorf("seller-scoped advice leaked into buyer flow listing")
		}
	}
}

func TestValidateAuthored(t *testing.T) {
	reg := concepts.Builtin()

	valid := &rules.ConceptGroup{
		Logic: rules.LogicAnd,
		Children: []rules.ConceptNode{
			rules.ConditionNode(rules.ConceptCondition{
				Ref:      rules.ConceptRef{ConceptID: "timeline"},
				Operator: rules.OpEquals,
				Value:    rules.SingleValue("0-3"),
			}),
		},
	}
	if err := ValidateAuthored(reg, valid); err != nil {
		t.Errorf("valid tree rejected: %v", err)
	}

	unknown := &rules.ConceptGroup{
		Logic: rules.LogicAnd,
		Children: []rules.ConceptNode{
			rules.ConditionNode(rules.ConceptCondition{
				Ref:      rules.ConceptRef{ConceptID: "shoe_size"},
				Operator: rules.OpEquals,
				Value:    rules.SingleValue("11"),
			}),
		},
	}
	err := ValidateAuthored(reg, unknown)
	if err == nil {
		t.Fatal("unknown concept should be rejected")
	}
	if !strings.Contains(err.Error(), "shoe_size") {
		t.Errorf("error should name the offending concept, got %v", err)
	}

	badLogic := &rules.ConceptGroup{Logic: "XOR"}
	if err := ValidateAuthored(reg, badLogic); err == nil {
		t.Error("unknown logic should be rejected")
	}

	emptyRef := &rules.ConceptGroup{
		Logic: rules.LogicOr,
		Children: []rules.ConceptNode{
			rules.ConditionNode(rules.ConceptCondition{
				Operator: rules.OpEquals,
				Value:    rules.SingleValue("x"),
			}),
		},
	}
	if err := ValidateAuthored(reg, emptyRef); err == nil {
		t.Error("condition without any reference should be rejected")
	}

	if err := ValidateAuthored(reg, nil); err != nil {
		t.Errorf("nil tree should validate, got %v", err)
	}
}

func TestRoutesAuthoredRuleIsLowered(t *testing.T) {
	store := setupTestStore(t)
	r := chi.NewRouter()
	RegisterRoutes(r, store, concepts.Builtin(), nil)

	a := sampleAdvice("tenant-1")
	a.Rule = nil
	a.Authored = &rules.ConceptGroup{
		Logic: rules.LogicAnd,
		Children: []rules.ConceptNode{
			rules.ConditionNode(rules.ConceptCondition{
				Ref:      rules.ConceptRef{ConceptID: "timeline"},
				Operator: rules.OpEquals,
				Value:    rules.SingleValue("0-3"),
				Weight:   2,
			}),
		},
	}

	body, _ := json.Marshal(a)
	req := httptest.NewRequest(http.MethodPost, "/api/advice", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /api/advice = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var created Advice
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if created.Rule == nil {
		t.Fatal("authored rule should be lowered into a stored field rule")
	}
	cond := created.Rule.Children[0].Condition
	if cond.Ref.FieldID != "timeline" {
		t.Errorf("lowered FieldID = %q, want timeline", cond.Ref.FieldID)
	}
	if cond.Weight != 2 {
		t.Errorf("lowered Weight = %v, want 2", cond.Weight)
	}
}

func TestRoutesRejectUnknownConcept(t *testing.T) {
	store := setupTestStore(t)
	r := chi.NewRouter()
	RegisterRoutes(r, store, concepts.Builtin(), nil)

	a := sampleAdvice("tenant-1")
	a.Rule = nil
	a.Authored = &rules.ConceptGroup{
		Logic: rules.LogicAnd,
		Children: []rules.ConceptNode{
			rules.ConditionNode(rules.ConceptCondition{
				Ref:      rules.ConceptRef{ConceptID: "favorite_color"},
				Operator: rules.OpEquals,
				Value:    rules.SingleValue("blue"),
			}),
		},
	}

	body, _ := json.Marshal(a)
	req := httptest.NewRequest(http.MethodPost, "/api/advice", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("POST with unknown concept = %d, want 400", rec.Code)
	}
}

// recordingIndexer captures index writes so tests can assert the handlers
// mirror store changes into the index.
type recordingIndexer struct {
	indexed []string
	deleted []string
	err     error
}

func (ri *recordingIndexer) IndexAdvice(_ context.Context, a *Advice) error {
	if ri.err != nil {
		return ri.err
	}
	ri.indexed = append(ri.indexed, a.ID)
	return nil
}

func (ri *recordingIndexer) DeleteByAdviceID(_ context.Context, adviceID string) error {
	if ri.err != nil {
		return ri.err
	}
	ri.deleted = append(ri.deleted, adviceID)
	return nil
}

func TestRoutesKeepIndexInSync(t *testing.T) {
	store := setupTestStore(t)
	idx := &recordingIndexer{}
	r := chi.NewRouter()
	RegisterRoutes(r, store, concepts.Builtin(), idx)

	body, _ := json.Marshal(sampleAdvice("tenant-1"))
	req := httptest.NewRequest(http.MethodPost, "/api/advice", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /api/advice = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var created Advice
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(idx.indexed) != 1 || idx.indexed[0] != created.ID {
		t.Fatalf("create should index the new entry, indexed = %v", idx.indexed)
	}

	created.Title = "Fast movers need pre-approval, updated"
	body, _ = json.Marshal(created)
	req = httptest.NewRequest(http.MethodPut, "/api/advice/"+created.ID, bytes.NewReader(body))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT /api/advice/%s = %d, want 200: %s", created.ID, rec.Code, rec.Body.String())
	}
	if len(idx.indexed) != 2 || idx.indexed[1] != created.ID {
		t.Fatalf("update should re-index the entry, indexed = %v", idx.indexed)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/advice/"+created.ID, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("DELETE /api/advice/%s = %d, want 204", created.ID, rec.Code)
	}
	if len(idx.deleted) != 1 || idx.deleted[0] != created.ID {
		t.Fatalf("delete should remove the entry from the index, deleted = %v", idx.deleted)
	}
}

func TestRoutesIndexFailureDoesNotFailWrite(t *testing.T) {
	store := setupTestStore(t)
	idx := &recordingIndexer{err: errors.New("embedding backend down")}
	r := chi.NewRouter()
	RegisterRoutes(r, store, concepts.Builtin(), idx)

	body, _ := json.Marshal(sampleAdvice("tenant-1"))
	req := httptest.NewRequest(http.MethodPost, "/api/advice", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST with failing indexer = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var created Advice
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if _, err := store.Get(context.Background(), created.ID); err != nil {
		t.Errorf("entry should be stored despite the index failure: %v", err)
	}
}

func TestPreviewRendersMarkdown(t *testing.T) {
	store := setupTestStore(t)
	r := chi.NewRouter()
	RegisterRoutes(r, store, concepts.Builtin(), nil)

	a := sampleAdvice("tenant-1")
	if err := store.Create(context.Background(), a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/advice/"+a.ID+"/preview", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET preview = %d, want 200", rec.Code)
	}
	html := rec.Body.String()
	if !strings.Contains(html, "<h2") {
		t.Errorf("preview should contain a rendered heading, got %q", html)
	}
	if !strings.Contains(html, "<strong>first</strong>") {
		t.Errorf("preview should render bold text, got %q", html)
	}
}
