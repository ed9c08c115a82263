package repository

import "time"

// AppendTurnOptions holds one completed turn for persistence.
type AppendTurnOptions struct {
	UserID         string
	ConversationID string
	TurnIndex      int
	Timestamp      time.Time
	UserInput      string
	LLMResponse    string
}

// UpdateFeedbackOptions identifies a persisted turn and the feedback
// text to attach to it.
type UpdateFeedbackOptions struct {
	ConversationID string
	TurnIndex      int
	Feedback       string
}
