package chat

// AskInput is one user message addressed to the assistant.
// UserID lives in model.Scope, not here.
type AskInput struct {
	ConversationID string // empty starts a new conversation
	Query          string
}

// AskOutput is the assistant's reply for one turn.
type AskOutput struct {
	ConversationID string `json:"conversation_id"`
	TurnIndex      int    `json:"turn_index"`
	Responder      string `json:"responder"` // "agent1" or "agent2"
	Answer         string `json:"answer"`
}

// FeedbackInput attaches user feedback to an already answered turn.
type FeedbackInput struct {
	ConversationID string
	TurnIndex      int
	Feedback       string
}
