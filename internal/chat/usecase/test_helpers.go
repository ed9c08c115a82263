package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"sales-agentic-assistant/internal/catalog"
	"sales-agentic-assistant/internal/chat/repository"
	"sales-agentic-assistant/internal/model"
	"sales-agentic-assistant/internal/retrieval"
	"sales-agentic-assistant/internal/router"
	"sales-agentic-assistant/pkg/datemath"
	"sales-agentic-assistant/pkg/llmprovider"
	pkgLog "sales-agentic-assistant/pkg/log"
)

type mockLLM struct {
	mu      sync.Mutex
	text    string
	err     error
	prompts []string
}

func (m *mockLLM) GenerateContent(_ context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(req.Messages) > 0 {
		m.prompts = append(m.prompts, req.Messages[len(req.Messages)-1].Content)
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text, ProviderName: "mock"}, nil
}

type mockClassifier struct {
	route router.Route
}

func (m *mockClassifier) Classify(_ context.Context, _ string) router.Route {
	return m.route
}

type mockParser struct {
	parsed catalog.ParsedQuery
}

func (m *mockParser) Parse(_ context.Context, _ string, _ time.Time) catalog.ParsedQuery {
	return m.parsed
}

type mockCourses struct {
	records []model.CourseRecord
}

func (m *mockCourses) Records() []model.CourseRecord {
	return m.records
}

type mockRetriever struct {
	snippets []retrieval.Snippet
	err      error
}

func (m *mockRetriever) Search(_ context.Context, _ retrieval.Corpus, _ string, _ int) ([]retrieval.Snippet, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.snippets, nil
}

type mockRepo struct {
	mu          sync.Mutex
	appended    []repository.AppendTurnOptions
	appendErr   error
	feedback    []repository.UpdateFeedbackOptions
	feedbackErr error
}

func (m *mockRepo) AppendTurn(_ context.Context, opt repository.AppendTurnOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appended = append(m.appended, opt)
	return nil
}

func (m *mockRepo) UpdateFeedback(_ context.Context, opt repository.UpdateFeedbackOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.feedbackErr != nil {
		return m.feedbackErr
	}
	m.feedback = append(m.feedback, opt)
	return nil
}

type testDeps struct {
	llm        *mockLLM
	classifier *mockClassifier
	parser     *mockParser
	courses    *mockCourses
	retriever  *mockRetriever
	repo       *mockRepo
}

func newTestUseCase(t *testing.T) (*implUseCase, *testDeps) {
	t.Helper()

	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}

	deps := &testDeps{
		llm:        &mockLLM{text: "답변입니다."},
		classifier: &mockClassifier{route: router.RouteCourses},
		parser:     &mockParser{parsed: catalog.ParsedQuery{Filters: catalog.Filter{}}},
		courses:    &mockCourses{},
		retriever:  &mockRetriever{},
		repo:       &mockRepo{},
	}

	uc := New(
		pkgLog.NewNop(),
		deps.llm,
		deps.classifier,
		deps.parser,
		catalog.NewEvaluator(dates),
		deps.courses,
		deps.retriever,
		deps.repo,
	)
	return uc, deps
}
