package repository

import (
	"context"
	"errors"
)

// ErrNoRowsMatched is returned when a feedback update targets a turn
// that was never persisted.
var ErrNoRowsMatched = errors.New("no rows matched")

// HistoryRepository persists conversation turns.
type HistoryRepository interface {
	AppendTurn(ctx context.Context, opt AppendTurnOptions) error
	UpdateFeedback(ctx context.Context, opt UpdateFeedbackOptions) error
}
