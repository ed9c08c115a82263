package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"sales-agentic-assistant/pkg/llmprovider"
	pkgLog "sales-agentic-assistant/pkg/log"
)

type stubLLM struct {
	text  string
	err   error
	calls int
}

func (s *stubLLM) GenerateContent(_ context.Context, _ *llmprovider.Request) (*llmprovider.Response, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{Text: s.text, ProviderName: "stub"}, nil
}

func TestParse(t *testing.T) {
	now := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)

	t.Run("plain json", func(t *testing.T) {
		llm := &stubLLM{text: `{"filters": {"difficulty": "초급", "user_rating": {"gte": 4.0}}, "user_context": "입문자"}`}
		p := NewParser(pkgLog.NewNop(), llm)

		got := p.Parse(context.Background(), "초급 코스 추천해줘", now)
		if got.UserContext != "입문자" {
			t.Errorf("UserContext = %q, want %q", got.UserContext, "입문자")
		}
		if got.Filters["difficulty"] != "초급" {
			t.Errorf("Filters[difficulty] = %v", got.Filters["difficulty"])
		}
	})

	t.Run("markdown fenced json", func(t *testing.T) {
		llm := &stubLLM{text: "```json\n{\"filters\": {\"category\": \"영업\"}, \"user_context\": \"\"}\n```"}
		p := NewParser(pkgLog.NewNop(), llm)

		got := p.Parse(context.Background(), "영업 코스", now)
		if got.Filters["category"] != "영업" {
			t.Errorf("Filters[category] = %v", got.Filters["category"])
		}
	})

	t.Run("unknown field is dropped", func(t *testing.T) {
		llm := &stubLLM{text: `{"filters": {"difficulty": "초급", "salary": {"gte": 100}}, "user_context": ""}`}
		p := NewParser(pkgLog.NewNop(), llm)

		got := p.Parse(context.Background(), "초급", now)
		if _, ok := got.Filters["salary"]; ok {
			t.Error("unknown field survived validation")
		}
		if _, ok := got.Filters["difficulty"]; !ok {
			t.Error("known field was dropped")
		}
	})

	t.Run("invalid json degrades to empty filter", func(t *testing.T) {
		llm := &stubLLM{text: "죄송합니다, 조건을 찾지 못했습니다."}
		p := NewParser(pkgLog.NewNop(), llm)

		got := p.Parse(context.Background(), "아무거나", now)
		if len(got.Filters) != 0 {
			t.Errorf("Filters = %v, want empty", got.Filters)
		}
	})

	t.Run("completion failure degrades to empty filter", func(t *testing.T) {
		llm := &stubLLM{err: errors.New("all providers failed")}
		p := NewParser(pkgLog.NewNop(), llm)

		got := p.Parse(context.Background(), "아무거나", now)
		if len(got.Filters) != 0 {
			t.Errorf("Filters = %v, want empty", got.Filters)
		}
	})

	t.Run("repeated query hits cache", func(t *testing.T) {
		llm := &stubLLM{text: `{"filters": {}, "user_context": ""}`}
		p := NewParser(pkgLog.NewNop(), llm)

		p.Parse(context.Background(), "같은 질문", now)
		p.Parse(context.Background(), "같은 질문", now)
		if llm.calls != 1 {
			t.Errorf("llm calls = %d, want 1", llm.calls)
		}
	})

	t.Run("failures are not cached", func(t *testing.T) {
		llm := &stubLLM{err: errors.New("transient")}
		p := NewParser(pkgLog.NewNop(), llm)

		p.Parse(context.Background(), "재시도 질문", now)
		llm.err = nil
		llm.text = `{"filters": {"category": "CS"}, "user_context": ""}`

		got := p.Parse(context.Background(), "재시도 질문", now)
		if got.Filters["category"] != "CS" {
			t.Error("transient failure was cached")
		}
	})
}
