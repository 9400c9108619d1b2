package leads

import (
	"context"
	"testing"

	"github.com/propertyloop/leadmatch/internal/db"
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

func TestCreateAndGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	l := &Lead{
		TenantID: "tenant-1",
		FlowID:   "flow-1",
		Answers:  map[string]string{"timeline": "asap"},
	}
	if err := store.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.ID == "" {
		t.Fatal("Create should assign an ID")
	}

	got, err := store.Get(ctx, l.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Answers["timeline"] != "asap" {
		t.Errorf("Answers = %v, want timeline=asap", got.Answers)
	}
}

func TestSetAnswer(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	l := &Lead{TenantID: "tenant-1"}
	if err := store.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := store.SetAnswer(ctx, l.ID, "price_range", "under $400,000"); err != nil {
		t.Fatalf("SetAnswer: %v", err)
	}
	if err := store.SetAnswer(ctx, l.ID, "price_range", "over 1m"); err != nil {
		t.Fatalf("SetAnswer overwrite: %v", err)
	}

	got, err := store.Get(ctx, l.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Answers["price_range"] != "over 1m" {
		t.Errorf("answer = %q, want the overwritten value", got.Answers["price_range"])
	}
}

func TestReplaceAnswers(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	l := &Lead{TenantID: "tenant-1", Answers: map[string]string{"a": "1", "b": "2"}}
	if err := store.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := store.ReplaceAnswers(ctx, l.ID, map[string]string{"c": "3"}); err != nil {
		t.Fatalf("ReplaceAnswers: %v", err)
	}

	got, err := store.Get(ctx, l.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Answers) != 1 || got.Answers["c"] != "3" {
		t.Errorf("Answers = %v, want only c=3", got.Answers)
	}
}

func TestSetAnswerMissingLead(t *testing.T) {
	store := setupTestStore(t)
	if err := store.SetAnswer(context.Background(), "nope", "f", "v"); err == nil {
		t.Error("SetAnswer on missing lead should fail")
	}
}
