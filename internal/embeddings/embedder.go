// Package embeddings provides the text-embedding backends used to index
// advice bodies for similarity search.
package embeddings

import "context"

// Embedder turns texts into embedding vectors.
type Embedder interface {
	// Embed generates embeddings for one or more texts.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector length.
	Dimensions() int

	// Name identifies the embedding model.
	Name() string
}
