package router

import (
	"context"

	"sales-agentic-assistant/pkg/llmprovider"
	pkgLog "sales-agentic-assistant/pkg/log"
)

// completionClient is the slice of the provider manager the router needs.
type completionClient interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Router classifies user queries into one of the responder routes.
type Router struct {
	l   pkgLog.Logger
	llm completionClient
}

func New(l pkgLog.Logger, llm completionClient) *Router {
	return &Router{
		l:   l,
		llm: llm,
	}
}
