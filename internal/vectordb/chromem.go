package vectordb

import (
	"context"
	"fmt"
	"time"

	chromem "github.com/philippgille/chromem-go"

	"github.com/propertyloop/leadmatch/internal/advice"
	"github.com/propertyloop/leadmatch/internal/embeddings"
)

const collectionName = "advice"

// ChromemStore implements VectorStore on chromem-go.
type ChromemStore struct {
	db         *chromem.DB
	collection *chromem.Collection
	embedder   embeddings.Embedder
	embedFunc  chromem.EmbeddingFunc
}

// NewChromemStore creates an in-memory ChromemStore.
func NewChromemStore(embedder embeddings.Embedder) (*ChromemStore, error) {
	db := chromem.NewDB()
	ef := embeddings.ToChromemFunc(embedder)

	col, err := db.GetOrCreateCollection(collectionName, nil, ef)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	return &ChromemStore{
		db:         db,
		collection: col,
		embedder:   embedder,
		embedFunc:  ef,
	}, nil
}

// IndexAdvice converts an advice entry into a document and adds it to the
// store. The indexed content is the title and the raw markdown body.
func (s *ChromemStore) IndexAdvice(ctx context.Context, a *advice.Advice) error {
	doc := Document{
		ID:      a.ID,
		Content: a.Title + "\n\n" + a.Body,
		Metadata: DocumentMetadata{
			AdviceID:    a.ID,
			TenantID:    a.TenantID,
			FlowID:      a.FlowID,
			Category:    a.Category,
			Title:       a.Title,
			LastUpdated: a.UpdatedAt,
		},
	}
	return s.AddDocuments(ctx, []Document{doc})
}

func (s *ChromemStore) AddDocuments(ctx context.Context, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}

	chromDocs := make([]chromem.Document, len(docs))
	for i, doc := range docs {
		chromDocs[i] = chromem.Document{
			ID:       doc.ID,
			Content:  doc.Content,
			Metadata: metadataToMap(doc.Metadata),
		}
	}

	return s.collection.AddDocuments(ctx, chromDocs, 1)
}

func (s *ChromemStore) Search(ctx context.Context, query string, limit int, filter *SearchFilter) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 10
	}

	// chromem-go requires nResults <= collection size.
	count := s.collection.Count()
	if count == 0 {
		return nil, nil
	}
	if limit > count {
		limit = count
	}

	results, err := s.collection.Query(ctx, query, limit, buildWhereClause(filter), nil)
	if err != nil {
		return nil, fmt.Errorf("chromem query: %w", err)
	}

	searchResults := make([]SearchResult, len(results))
	for i, r := range results {
		searchResults[i] = SearchResult{
			Document: Document{
				ID:       r.ID,
				Content:  r.Content,
				Metadata: mapToMetadata(r.Metadata),
			},
			Similarity: r.Similarity,
		}
	}
	return searchResults, nil
}

func (s *ChromemStore) DeleteByAdviceID(ctx context.Context, adviceID string) error {
	return s.collection.Delete(ctx, map[string]string{"advice_id": adviceID}, nil)
}

func (s *ChromemStore) DeleteByTenant(ctx context.Context, tenantID string) error {
	return s.collection.Delete(ctx, map[string]string{"tenant_id": tenantID}, nil)
}

func (s *ChromemStore) Persist(ctx context.Context, dir string) error {
	return s.db.ExportToFile(dir+"/chromem.gob.gz", true, "")
}

func (s *ChromemStore) Load(ctx context.Context, dir string) error {
	if err := s.db.ImportFromFile(dir+"/chromem.gob.gz", ""); err != nil {
		return fmt.Errorf("import from file: %w", err)
	}

	// Re-acquire the collection reference after import.
	col := s.db.GetCollection(collectionName, s.embedFunc)
	if col == nil {
		return fmt.Errorf("collection %q not found after import", collectionName)
	}
	s.collection = col
	return nil
}

func (s *ChromemStore) Count() int {
	return s.collection.Count()
}

func metadataToMap(m DocumentMetadata) map[string]string {
	return map[string]string{
		"advice_id":    m.AdviceID,
		"tenant_id":    m.TenantID,
		"flow_id":      m.FlowID,
		"category":     m.Category,
		"title":        m.Title,
		"last_updated": m.LastUpdated.Format(time.RFC3339),
	}
}

func mapToMetadata(m map[string]string) DocumentMetadata {
	lastUpdated, _ := time.Parse(time.RFC3339, m["last_updated"])
	return DocumentMetadata{
		AdviceID:    m["advice_id"],
		TenantID:    m["tenant_id"],
		FlowID:      m["flow_id"],
		Category:    m["category"],
		Title:       m["title"],
		LastUpdated: lastUpdated,
	}
}

func buildWhereClause(filter *SearchFilter) map[string]string {
	if filter == nil {
		return nil
	}

	where := make(map[string]string)
	if filter.TenantID != nil {
		where["tenant_id"] = *filter.TenantID
	}
	if filter.FlowID != nil {
		where["flow_id"] = *filter.FlowID
	}
	if filter.Category != nil {
		where["category"] = *filter.Category
	}

	if len(where) == 0 {
		return nil
	}
	return where
}
