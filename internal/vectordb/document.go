// Package vectordb indexes advice bodies as embeddings so operators can find
// related advice by meaning rather than by exact wording.
package vectordb

import "time"

// Document is one indexed piece of advice content.
type Document struct {
	ID       string           `json:"id"`
	Content  string           `json:"content"`
	Metadata DocumentMetadata `json:"metadata"`
}

// DocumentMetadata carries the advice attributes a search can filter on.
type DocumentMetadata struct {
	AdviceID    string    `json:"advice_id"`
	TenantID    string    `json:"tenant_id"`
	FlowID      string    `json:"flow_id,omitempty"`
	Category    string    `json:"category,omitempty"`
	Title       string    `json:"title"`
	LastUpdated time.Time `json:"last_updated"`
}

// SearchResult pairs a document with its similarity score.
type SearchResult struct {
	Document   Document `json:"document"`
	Similarity float32  `json:"similarity"`
}

// SearchFilter narrows search results by metadata fields.
type SearchFilter struct {
	TenantID *string
	FlowID   *string
	Category *string
}
