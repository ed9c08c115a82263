package retrieval

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"sales-agentic-assistant/internal/model"
	pkgLog "sales-agentic-assistant/pkg/log"
	"sales-agentic-assistant/pkg/openai"
	"sales-agentic-assistant/pkg/qdrant"
)

const embedBatchSize = 64

// Indexer builds vector collections at startup. Indexing is
// idempotent: an existing collection is left untouched.
type Indexer struct {
	l        pkgLog.Logger
	embedder openai.Embedder
	store    vectorStore
}

func NewIndexer(l pkgLog.Logger, embedder openai.Embedder, store vectorStore) *Indexer {
	return &Indexer{
		l:        l,
		embedder: embedder,
		store:    store,
	}
}

// EnsureCourseIndex creates and fills the course collection from the
// catalog unless it already exists.
func (i *Indexer) EnsureCourseIndex(ctx context.Context, records []model.CourseRecord) error {
	texts := make([]string, 0, len(records))
	payloads := make([]map[string]interface{}, 0, len(records))
	for _, r := range records {
		text := courseText(r)
		texts = append(texts, text)
		payloads = append(payloads, map[string]interface{}{
			"text":      text,
			"course_id": r.ID,
			"title":     r.Title,
		})
	}
	return i.ensureIndex(ctx, CorpusCourses, texts, payloads)
}

// EnsureProductIndex creates and fills the product document collection
// unless it already exists.
func (i *Indexer) EnsureProductIndex(ctx context.Context, documents []string) error {
	payloads := make([]map[string]interface{}, 0, len(documents))
	for _, doc := range documents {
		payloads = append(payloads, map[string]interface{}{"text": doc})
	}
	return i.ensureIndex(ctx, CorpusProductDocs, documents, payloads)
}

func (i *Indexer) ensureIndex(ctx context.Context, corpus Corpus, texts []string, payloads []map[string]interface{}) error {
	name := string(corpus)

	exists, err := i.store.CollectionExists(ctx, name)
	if err != nil {
		return fmt.Errorf("check collection %s: %w", name, err)
	}
	if exists {
		i.l.Debugf(ctx, "retrieval index %s already exists, skipping", name)
		return nil
	}

	if err := i.store.CreateCollection(ctx, qdrant.CreateCollectionRequest{
		Name: name,
		Vectors: qdrant.VectorConfig{
			Size:     embeddingDim,
			Distance: distanceCosine,
		},
	}); err != nil {
		return fmt.Errorf("create collection %s: %w", name, err)
	}

	for start := 0; start < len(texts); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(texts) {
			end = len(texts)
		}

		vectors, err := i.embedder.Embed(ctx, texts[start:end])
		if err != nil {
			return fmt.Errorf("embed batch %d-%d for %s: %w", start, end, name, err)
		}
		if len(vectors) != end-start {
			return fmt.Errorf("embed batch for %s: got %d vectors, want %d", name, len(vectors), end-start)
		}

		points := make([]qdrant.Point, 0, end-start)
		for j, vec := range vectors {
			points = append(points, qdrant.Point{
				ID:      uuid.NewString(),
				Vector:  vec,
				Payload: payloads[start+j],
			})
		}
		if err := i.store.UpsertPoints(ctx, name, qdrant.UpsertPointsRequest{Points: points}); err != nil {
			return fmt.Errorf("upsert batch for %s: %w", name, err)
		}
	}

	i.l.Infof(ctx, "retrieval index %s built, points=%d", name, len(texts))
	return nil
}

// courseText flattens a record into the text that gets embedded.
func courseText(r model.CourseRecord) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "title: %s\n", r.Title)
	fmt.Fprintf(&sb, "category: %s\n", r.Category)
	fmt.Fprintf(&sb, "difficulty: %s\n", r.Difficulty)
	fmt.Fprintf(&sb, "duration_min: %d\n", r.DurationMin)
	fmt.Fprintf(&sb, "user_rating: %.1f\n", r.UserRating)
	fmt.Fprintf(&sb, "update_date: %s", r.UpdateDate)
	return sb.String()
}
