package usecase

import (
	"fmt"
	"strings"

	"sales-agentic-assistant/internal/model"
)

// historyText renders conversation turns for the prompt. maxTurns > 0
// keeps only the most recent turns; 0 renders the whole history.
func historyText(conv *model.Conversation, maxTurns int) string {
	if conv == nil || len(conv.History) == 0 {
		return "(없음)"
	}

	history := conv.History
	if maxTurns > 0 && len(history) > maxTurns {
		history = history[len(history)-maxTurns:]
	}

	parts := make([]string, 0, len(history)*2)
	for _, turn := range history {
		parts = append(parts, fmt.Sprintf("사용자: %s", turn.UserText))
		parts = append(parts, fmt.Sprintf("상담원: %s", turn.AssistantText))
	}
	return strings.Join(parts, "\n")
}
