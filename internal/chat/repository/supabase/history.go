package supabase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"sales-agentic-assistant/internal/chat/repository"
	pkgLog "sales-agentic-assistant/pkg/log"
)

const historyTable = "chat_history"

// historyRow mirrors the chat_history table schema.
type historyRow struct {
	UserID         string `json:"user_id"`
	ConversationID string `json:"conversation_id"`
	TurnIndex      int    `json:"turn_index"`
	Timestamp      string `json:"timestamp"`
	UserInput      string `json:"user_input"`
	LLMResponse    string `json:"llm_response"`
}

type implRepository struct {
	l      pkgLog.Logger
	client *Client
}

// NewRepository creates the Supabase-backed history repository.
func NewRepository(l pkgLog.Logger, client *Client) repository.HistoryRepository {
	return &implRepository{l: l, client: client}
}

func (r *implRepository) AppendTurn(ctx context.Context, opt repository.AppendTurnOptions) error {
	row := historyRow{
		UserID:         opt.UserID,
		ConversationID: opt.ConversationID,
		TurnIndex:      opt.TurnIndex,
		Timestamp:      opt.Timestamp.UTC().Format(time.RFC3339),
		UserInput:      opt.UserInput,
		LLMResponse:    opt.LLMResponse,
	}
	if err := r.client.Insert(ctx, historyTable, row); err != nil {
		return fmt.Errorf("append turn %s/%d: %w", opt.ConversationID, opt.TurnIndex, err)
	}
	return nil
}

func (r *implRepository) UpdateFeedback(ctx context.Context, opt repository.UpdateFeedbackOptions) error {
	matched, err := r.client.UpdateWhere(ctx, historyTable, map[string]string{
		"conversation_id": opt.ConversationID,
		"turn_index":      strconv.Itoa(opt.TurnIndex),
	}, map[string]string{"feedback": opt.Feedback})
	if err != nil {
		return fmt.Errorf("update feedback %s/%d: %w", opt.ConversationID, opt.TurnIndex, err)
	}
	if matched == 0 {
		return repository.ErrNoRowsMatched
	}
	return nil
}
