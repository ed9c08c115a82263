package usecase

import (
	"context"
	"time"

	"sales-agentic-assistant/internal/catalog"
	"sales-agentic-assistant/internal/chat/repository"
	"sales-agentic-assistant/internal/model"
	"sales-agentic-assistant/internal/retrieval"
	"sales-agentic-assistant/internal/router"
	"sales-agentic-assistant/pkg/llmprovider"
	pkgLog "sales-agentic-assistant/pkg/log"
)

type completionClient interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type intentClassifier interface {
	Classify(ctx context.Context, query string) router.Route
}

type filterParser interface {
	Parse(ctx context.Context, query string, now time.Time) catalog.ParsedQuery
}

type courseSource interface {
	Records() []model.CourseRecord
}

type implUseCase struct {
	l         pkgLog.Logger
	llm       completionClient
	router    intentClassifier
	parser    filterParser
	evaluator *catalog.Evaluator
	courses   courseSource
	retriever retrieval.Retriever
	repo      repository.HistoryRepository
	sessions  *sessionStore
	now       func() time.Time
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	llm completionClient,
	rt intentClassifier,
	parser filterParser,
	evaluator *catalog.Evaluator,
	courses courseSource,
	retriever retrieval.Retriever,
	repo repository.HistoryRepository,
) *implUseCase {
	return &implUseCase{
		l:         l,
		llm:       llm,
		router:    rt,
		parser:    parser,
		evaluator: evaluator,
		courses:   courses,
		retriever: retriever,
		repo:      repo,
		sessions:  newSessionStore(),
		now:       time.Now,
	}
}
