package router

import (
	"context"
	"strings"

	"sales-agentic-assistant/internal/prompt"
	"sales-agentic-assistant/pkg/llmprovider"
)

// Classify decides which responder should handle the query. It never
// returns an error: any completion failure or unrecognizable answer
// falls back to the course recommender.
func (r *Router) Classify(ctx context.Context, query string) Route {
	text, err := prompt.Render(prompt.KindRouteIntent, map[string]interface{}{
		"query": query,
	})
	if err != nil {
		r.l.Warnf(ctx, "router.Classify fallback, prompt render failed: %v", err)
		return RouteCourses
	}

	req := &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "user", Content: text},
		},
		Temperature: classifyTemperature,
		MaxTokens:   classifyMaxTokens,
	}

	resp, err := r.llm.GenerateContent(ctx, req)
	if err != nil {
		r.l.Warnf(ctx, "router.Classify fallback, completion failed: %v", err)
		return RouteCourses
	}

	route := parseRoute(resp.Text)
	r.l.Debugf(ctx, "router.Classify route=%s provider=%s", route, resp.ProviderName)
	return route
}

// parseRoute scans the raw model answer for a route token. The product
// route is checked first and wins when both tokens appear; anything
// else resolves to the course route.
func parseRoute(answer string) Route {
	normalized := strings.ToLower(strings.TrimSpace(answer))
	if strings.Contains(normalized, string(RouteProductQA)) {
		return RouteProductQA
	}
	if strings.Contains(normalized, string(RouteCourses)) {
		return RouteCourses
	}
	return RouteCourses
}
