package http

import (
	"sales-agentic-assistant/internal/chat"
	"sales-agentic-assistant/internal/model"
)

// --- Request DTOs ---

type askReq struct {
	UserID         string `json:"user_id"         binding:"required,min=1,max=255"`
	ConversationID string `json:"conversation_id" binding:"omitempty,max=64"`
	Message        string `json:"message"         binding:"required,min=1"`
}

func (r askReq) scope() model.Scope {
	return model.Scope{UserID: r.UserID}
}

func (r askReq) toInput() chat.AskInput {
	return chat.AskInput{
		ConversationID: r.ConversationID,
		Query:          r.Message,
	}
}

type feedbackReq struct {
	UserID         string `json:"user_id"         binding:"required,min=1,max=255"`
	ConversationID string `json:"conversation_id" binding:"required,max=64"`
	TurnIndex      int    `json:"turn_index"      binding:"required,min=1"`
	Feedback       string `json:"feedback"        binding:"required,min=1"`
}

func (r feedbackReq) scope() model.Scope {
	return model.Scope{UserID: r.UserID}
}

func (r feedbackReq) toInput() chat.FeedbackInput {
	return chat.FeedbackInput{
		ConversationID: r.ConversationID,
		TurnIndex:      r.TurnIndex,
		Feedback:       r.Feedback,
	}
}

// --- Response DTOs ---

type askResp struct {
	ConversationID string `json:"conversation_id"`
	TurnIndex      int    `json:"turn_index"`
	Responder      string `json:"responder"`
	Answer         string `json:"answer"`
}

func newAskResp(out chat.AskOutput) askResp {
	return askResp{
		ConversationID: out.ConversationID,
		TurnIndex:      out.TurnIndex,
		Responder:      out.Responder,
		Answer:         out.Answer,
	}
}

type feedbackResp struct {
	ConversationID string `json:"conversation_id"`
	TurnIndex      int    `json:"turn_index"`
	Recorded       bool   `json:"recorded"`
}
