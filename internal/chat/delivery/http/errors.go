package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sales-agentic-assistant/internal/chat"
	"sales-agentic-assistant/pkg/response"
)

// respondError translates domain errors into HTTP responses. Unknown
// errors are hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyQuery), errors.Is(err, chat.ErrEmptyFeedback):
		response.Error(c, err)
	case errors.Is(err, chat.ErrTurnNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
