package usecase

import (
	"context"
	"errors"
	"testing"

	"sales-agentic-assistant/internal/chat"
	"sales-agentic-assistant/internal/chat/repository"
	"sales-agentic-assistant/internal/model"
)

func TestSubmitFeedback(t *testing.T) {
	sc := model.Scope{UserID: "u-1"}

	t.Run("success", func(t *testing.T) {
		uc, deps := newTestUseCase(t)

		err := uc.SubmitFeedback(context.Background(), sc, chat.FeedbackInput{
			ConversationID: "conv_x",
			TurnIndex:      2,
			Feedback:       "좋아요",
		})
		if err != nil {
			t.Fatalf("SubmitFeedback() error = %v", err)
		}
		if len(deps.repo.feedback) != 1 {
			t.Fatalf("recorded %d feedback updates, want 1", len(deps.repo.feedback))
		}
		got := deps.repo.feedback[0]
		if got.ConversationID != "conv_x" || got.TurnIndex != 2 || got.Feedback != "좋아요" {
			t.Errorf("feedback options = %+v", got)
		}
	})

	t.Run("empty feedback", func(t *testing.T) {
		uc, _ := newTestUseCase(t)
		err := uc.SubmitFeedback(context.Background(), sc, chat.FeedbackInput{
			ConversationID: "conv_x",
			TurnIndex:      1,
			Feedback:       "  ",
		})
		if !errors.Is(err, chat.ErrEmptyFeedback) {
			t.Errorf("SubmitFeedback() error = %v, want ErrEmptyFeedback", err)
		}
	})

	t.Run("invalid turn index", func(t *testing.T) {
		uc, _ := newTestUseCase(t)
		err := uc.SubmitFeedback(context.Background(), sc, chat.FeedbackInput{
			ConversationID: "conv_x",
			TurnIndex:      0,
			Feedback:       "좋아요",
		})
		if !errors.Is(err, chat.ErrTurnNotFound) {
			t.Errorf("SubmitFeedback() error = %v, want ErrTurnNotFound", err)
		}
	})

	t.Run("unknown turn maps to not found", func(t *testing.T) {
		uc, deps := newTestUseCase(t)
		deps.repo.feedbackErr = repository.ErrNoRowsMatched

		err := uc.SubmitFeedback(context.Background(), sc, chat.FeedbackInput{
			ConversationID: "conv_missing",
			TurnIndex:      7,
			Feedback:       "별로예요",
		})
		if !errors.Is(err, chat.ErrTurnNotFound) {
			t.Errorf("SubmitFeedback() error = %v, want ErrTurnNotFound", err)
		}
	})

	t.Run("storage error surfaces", func(t *testing.T) {
		uc, deps := newTestUseCase(t)
		deps.repo.feedbackErr = errors.New("supabase down")

		err := uc.SubmitFeedback(context.Background(), sc, chat.FeedbackInput{
			ConversationID: "conv_x",
			TurnIndex:      1,
			Feedback:       "좋아요",
		})
		if err == nil || errors.Is(err, chat.ErrTurnNotFound) {
			t.Errorf("SubmitFeedback() error = %v, want wrapped storage error", err)
		}
	})
}
