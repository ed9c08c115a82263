package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyQuery       = errors.New("query is empty")
	ErrEmptyFeedback    = errors.New("feedback is empty")
	ErrTurnNotFound     = errors.New("conversation turn not found")
	ErrCompletionFailed = errors.New("completion failed")
)
