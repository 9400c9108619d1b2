package vectordb

import (
	"context"

	"github.com/propertyloop/leadmatch/internal/advice"
)

// VectorStore stores and searches advice documents by embedding similarity.
type VectorStore interface {
	// IndexAdvice adds or replaces the document for one advice entry.
	IndexAdvice(ctx context.Context, a *advice.Advice) error

	// AddDocuments adds or replaces documents in the store.
	AddDocuments(ctx context.Context, docs []Document) error

	// Search performs a semantic search with the query text.
	Search(ctx context.Context, query string, limit int, filter *SearchFilter) ([]SearchResult, error)

	// DeleteByAdviceID removes all documents indexed for one advice entry.
	DeleteByAdviceID(ctx context.Context, adviceID string) error

	// DeleteByTenant removes all documents belonging to a tenant.
	DeleteByTenant(ctx context.Context, tenantID string) error

	// Persist saves the store's data to the given directory.
	Persist(ctx context.Context, dir string) error

	// Load restores the store's data from the given directory.
	Load(ctx context.Context, dir string) error

	// Count returns the total number of documents in the store.
	Count() int
}
