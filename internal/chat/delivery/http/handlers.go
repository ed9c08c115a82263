package http

import (
	"github.com/gin-gonic/gin"

	"sales-agentic-assistant/pkg/response"
)

// Ask godoc
// @Summary     Send a chat message
// @Description Routes the message to a responder agent and returns the answer with its turn index.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body askReq true "Message"
// @Success     200 {object} askResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Ask(ctx, req.scope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Ask: %v", err)
		respondError(c, err)
		return
	}

	response.OK(c, newAskResp(output))
}

// Feedback godoc
// @Summary     Submit feedback for a turn
// @Description Attaches user feedback to an already answered conversation turn.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body feedbackReq true "Feedback"
// @Success     200 {object} feedbackResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Turn Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/feedback [POST]
func (h *handler) Feedback(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFeedbackReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.SubmitFeedback(ctx, req.scope(), req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.SubmitFeedback: %v", err)
		respondError(c, err)
		return
	}

	response.OK(c, feedbackResp{
		ConversationID: req.ConversationID,
		TurnIndex:      req.TurnIndex,
		Recorded:       true,
	})
}
