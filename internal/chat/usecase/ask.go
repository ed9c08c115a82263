package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"sales-agentic-assistant/internal/chat"
	"sales-agentic-assistant/internal/chat/repository"
	"sales-agentic-assistant/internal/model"
	"sales-agentic-assistant/internal/router"
)

// Ask handles one user message: classify intent, dispatch to the
// matching responder, commit the turn and persist it. A responder
// failure produces a diagnostic answer, not an error; the turn is
// committed either way.
func (uc *implUseCase) Ask(ctx context.Context, sc model.Scope, input chat.AskInput) (chat.AskOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return chat.AskOutput{}, chat.ErrEmptyQuery
	}

	conversationID := input.ConversationID
	if conversationID == "" {
		conversationID = newConversationID()
	}

	sess := uc.sessions.acquire(conversationID)
	defer uc.sessions.release(sess)

	route := uc.router.Classify(ctx, query)
	uc.l.Infof(ctx, "chat.Ask user=%s conv=%s turn=%d route=%s", sc.UserID, conversationID, sess.conv.TurnIndex+1, route)

	var answer string
	switch route {
	case router.RouteProductQA:
		answer = uc.respondProduct(ctx, sess.conv, query)
	default:
		answer = uc.respondCourses(ctx, sess.conv, query)
	}

	// A cancelled request never half-commits: the conversation state is
	// left exactly as it was before this call.
	if err := ctx.Err(); err != nil {
		return chat.AskOutput{}, fmt.Errorf("request aborted before commit: %w", err)
	}

	turn := model.Turn{
		UserText:      query,
		AssistantText: answer,
		Responder:     route.String(),
		Timestamp:     uc.now(),
	}
	sess.conv.AppendTurn(turn)

	if err := uc.repo.AppendTurn(ctx, repository.AppendTurnOptions{
		UserID:         sc.UserID,
		ConversationID: conversationID,
		TurnIndex:      sess.conv.TurnIndex,
		Timestamp:      turn.Timestamp,
		UserInput:      turn.UserText,
		LLMResponse:    turn.AssistantText,
	}); err != nil {
		// Persistence is best-effort; the in-memory turn already committed.
		uc.l.Errorf(ctx, "chat.Ask persist failed conv=%s turn=%d: %v", conversationID, sess.conv.TurnIndex, err)
	}

	return chat.AskOutput{
		ConversationID: conversationID,
		TurnIndex:      sess.conv.TurnIndex,
		Responder:      route.String(),
		Answer:         answer,
	}, nil
}

func newConversationID() string {
	return "conv_" + uuid.NewString()[:8]
}
