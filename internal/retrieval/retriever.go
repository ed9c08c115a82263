package retrieval

import (
	"context"
	"fmt"

	pkgLog "sales-agentic-assistant/pkg/log"
	"sales-agentic-assistant/pkg/openai"
	"sales-agentic-assistant/pkg/qdrant"
)

type vectorStore interface {
	CollectionExists(ctx context.Context, name string) (bool, error)
	CreateCollection(ctx context.Context, req qdrant.CreateCollectionRequest) error
	UpsertPoints(ctx context.Context, collectionName string, req qdrant.UpsertPointsRequest) error
	SearchPoints(ctx context.Context, collectionName string, req qdrant.SearchRequest) (*qdrant.SearchResponse, error)
}

// qdrantRetriever embeds the query and searches a Qdrant collection.
type qdrantRetriever struct {
	l        pkgLog.Logger
	embedder openai.Embedder
	store    vectorStore
}

func New(l pkgLog.Logger, embedder openai.Embedder, store vectorStore) Retriever {
	return &qdrantRetriever{
		l:        l,
		embedder: embedder,
		store:    store,
	}
}

func (r *qdrantRetriever) Search(ctx context.Context, corpus Corpus, query string, topK int) ([]Snippet, error) {
	if topK <= 0 {
		topK = defaultSearchTopK
	}

	vectors, err := r.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("embed query: empty embedding response")
	}

	resp, err := r.store.SearchPoints(ctx, string(corpus), qdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       topK,
		WithPayload: true,
	})
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", corpus, err)
	}

	snippets := make([]Snippet, 0, len(resp.Result))
	for _, p := range resp.Result {
		text, ok := p.Payload["text"].(string)
		if !ok {
			continue
		}
		snippets = append(snippets, Snippet{Text: text, Score: p.Score})
	}

	r.l.Debugf(ctx, "retrieval.Search corpus=%s topK=%d hits=%d", corpus, topK, len(snippets))
	return snippets, nil
}
