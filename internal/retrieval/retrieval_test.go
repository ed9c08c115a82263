package retrieval

import (
	"context"
	"errors"
	"testing"

	"sales-agentic-assistant/internal/model"
	pkgLog "sales-agentic-assistant/pkg/log"
	"sales-agentic-assistant/pkg/qdrant"
)

type fakeEmbedder struct {
	err   error
	calls int
}

func (f *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{float32(i), 1}
	}
	return out, nil
}

type fakeStore struct {
	exists      bool
	created     []qdrant.CreateCollectionRequest
	upserted    map[string][]qdrant.Point
	searchResp  *qdrant.SearchResponse
	searchErr   error
	lastSearch  qdrant.SearchRequest
	lastCorpora []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{upserted: map[string][]qdrant.Point{}}
}

func (f *fakeStore) CollectionExists(_ context.Context, _ string) (bool, error) {
	return f.exists, nil
}

func (f *fakeStore) CreateCollection(_ context.Context, req qdrant.CreateCollectionRequest) error {
	f.created = append(f.created, req)
	return nil
}

func (f *fakeStore) UpsertPoints(_ context.Context, collectionName string, req qdrant.UpsertPointsRequest) error {
	f.upserted[collectionName] = append(f.upserted[collectionName], req.Points...)
	return nil
}

func (f *fakeStore) SearchPoints(_ context.Context, collectionName string, req qdrant.SearchRequest) (*qdrant.SearchResponse, error) {
	f.lastCorpora = append(f.lastCorpora, collectionName)
	f.lastSearch = req
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchResp, nil
}

func TestSearch(t *testing.T) {
	store := newFakeStore()
	store.searchResp = &qdrant.SearchResponse{
		Result: []qdrant.ScoredPoint{
			{ID: "a", Score: 0.91, Payload: map[string]interface{}{"text": "환불은 7일 이내 가능합니다."}},
			{ID: "b", Score: 0.72, Payload: map[string]interface{}{"title": "payload without text"}},
			{ID: "c", Score: 0.55, Payload: map[string]interface{}{"text": "구독은 언제든 해지할 수 있습니다."}},
		},
	}

	r := New(pkgLog.NewNop(), &fakeEmbedder{}, store)
	snippets, err := r.Search(context.Background(), CorpusProductDocs, "환불 정책", 3)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if len(snippets) != 2 {
		t.Fatalf("len(snippets) = %d, want 2 (point without text payload skipped)", len(snippets))
	}
	if snippets[0].Text != "환불은 7일 이내 가능합니다." || snippets[0].Score != 0.91 {
		t.Errorf("unexpected first snippet: %+v", snippets[0])
	}
	if store.lastCorpora[0] != string(CorpusProductDocs) {
		t.Errorf("searched corpus = %s", store.lastCorpora[0])
	}
	if !store.lastSearch.WithPayload {
		t.Error("search must request payloads")
	}
}

func TestSearchDefaultsTopK(t *testing.T) {
	store := newFakeStore()
	store.searchResp = &qdrant.SearchResponse{}

	r := New(pkgLog.NewNop(), &fakeEmbedder{}, store)
	if _, err := r.Search(context.Background(), CorpusCourses, "질문", 0); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if store.lastSearch.Limit != defaultSearchTopK {
		t.Errorf("Limit = %d, want %d", store.lastSearch.Limit, defaultSearchTopK)
	}
}

func TestSearchEmbedFailure(t *testing.T) {
	r := New(pkgLog.NewNop(), &fakeEmbedder{err: errors.New("quota")}, newFakeStore())
	if _, err := r.Search(context.Background(), CorpusProductDocs, "질문", 3); err == nil {
		t.Error("Search() expected error when embedding fails")
	}
}

func TestEnsureCourseIndex(t *testing.T) {
	records := []model.CourseRecord{
		{ID: 1, Title: "영업 기초", Category: "영업", Difficulty: "초급", DurationMin: 60, UserRating: 4.5, UpdateDate: "2025-06-01"},
		{ID: 2, Title: "협상 전략", Category: "영업", Difficulty: "고급", DurationMin: 180, UserRating: 4.8, UpdateDate: "2024-11-20"},
	}

	t.Run("builds collection once", func(t *testing.T) {
		store := newFakeStore()
		idx := NewIndexer(pkgLog.NewNop(), &fakeEmbedder{}, store)

		if err := idx.EnsureCourseIndex(context.Background(), records); err != nil {
			t.Fatalf("EnsureCourseIndex() error = %v", err)
		}

		if len(store.created) != 1 || store.created[0].Name != string(CorpusCourses) {
			t.Fatalf("created = %+v", store.created)
		}
		points := store.upserted[string(CorpusCourses)]
		if len(points) != 2 {
			t.Fatalf("upserted %d points, want 2", len(points))
		}
		text, _ := points[0].Payload["text"].(string)
		if text == "" {
			t.Error("point payload missing text")
		}
		if points[0].Payload["course_id"] != 1 {
			t.Errorf("payload course_id = %v", points[0].Payload["course_id"])
		}
	})

	t.Run("skips existing collection", func(t *testing.T) {
		store := newFakeStore()
		store.exists = true
		emb := &fakeEmbedder{}
		idx := NewIndexer(pkgLog.NewNop(), emb, store)

		if err := idx.EnsureCourseIndex(context.Background(), records); err != nil {
			t.Fatalf("EnsureCourseIndex() error = %v", err)
		}
		if len(store.created) != 0 || emb.calls != 0 {
			t.Error("existing collection must not be rebuilt")
		}
	})
}

func TestEnsureProductIndex(t *testing.T) {
	store := newFakeStore()
	idx := NewIndexer(pkgLog.NewNop(), &fakeEmbedder{}, store)

	docs := []string{"제품 A 설명", "제품 B 설명", "환불 정책"}
	if err := idx.EnsureProductIndex(context.Background(), docs); err != nil {
		t.Fatalf("EnsureProductIndex() error = %v", err)
	}

	points := store.upserted[string(CorpusProductDocs)]
	if len(points) != 3 {
		t.Fatalf("upserted %d points, want 3", len(points))
	}
	if points[2].Payload["text"] != "환불 정책" {
		t.Errorf("payload text = %v", points[2].Payload["text"])
	}
}
