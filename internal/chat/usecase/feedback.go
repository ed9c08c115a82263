package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sales-agentic-assistant/internal/chat"
	"sales-agentic-assistant/internal/chat/repository"
	"sales-agentic-assistant/internal/model"
)

// SubmitFeedback attaches feedback to an already persisted turn.
func (uc *implUseCase) SubmitFeedback(ctx context.Context, sc model.Scope, input chat.FeedbackInput) error {
	if strings.TrimSpace(input.Feedback) == "" {
		return chat.ErrEmptyFeedback
	}
	if input.ConversationID == "" || input.TurnIndex <= 0 {
		return chat.ErrTurnNotFound
	}

	err := uc.repo.UpdateFeedback(ctx, repository.UpdateFeedbackOptions{
		ConversationID: input.ConversationID,
		TurnIndex:      input.TurnIndex,
		Feedback:       input.Feedback,
	})
	if errors.Is(err, repository.ErrNoRowsMatched) {
		return chat.ErrTurnNotFound
	}
	if err != nil {
		return fmt.Errorf("submit feedback: %w", err)
	}

	uc.l.Infof(ctx, "chat.SubmitFeedback user=%s conv=%s turn=%d", sc.UserID, input.ConversationID, input.TurnIndex)
	return nil
}
