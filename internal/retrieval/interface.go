package retrieval

import "context"

// Retriever finds passages relevant to a query inside one corpus.
type Retriever interface {
	Search(ctx context.Context, corpus Corpus, query string, topK int) ([]Snippet, error)
}
