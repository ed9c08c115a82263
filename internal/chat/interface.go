package chat

import (
	"context"

	"sales-agentic-assistant/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Ask routes the query to a responder agent, records the turn and
	// returns the answer.
	Ask(ctx context.Context, sc model.Scope, input AskInput) (AskOutput, error)

	// SubmitFeedback stores feedback for a previously answered turn.
	SubmitFeedback(ctx context.Context, sc model.Scope, input FeedbackInput) error
}
