package catalog

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"sales-agentic-assistant/internal/prompt"
	"sales-agentic-assistant/pkg/llmprovider"
	pkgLog "sales-agentic-assistant/pkg/log"
)

const (
	parseCacheSize   = 256
	parseTemperature = 0.0
	parseMaxTokens   = 512
)

type completionClient interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Parser extracts a structured filter from a free-text recommendation
// request. Repeated queries hit an LRU cache instead of the model.
type Parser struct {
	l     pkgLog.Logger
	llm   completionClient
	cache *lru.Cache[string, ParsedQuery]
}

func NewParser(l pkgLog.Logger, llm completionClient) *Parser {
	cache, err := lru.New[string, ParsedQuery](parseCacheSize)
	if err != nil {
		// Only reachable with a non-positive size constant.
		panic(err)
	}
	return &Parser{l: l, llm: llm, cache: cache}
}

// Parse never fails: when extraction misbehaves in any way the query
// degrades to an empty filter so recommendation still runs over the
// full catalog.
func (p *Parser) Parse(ctx context.Context, query string, now time.Time) ParsedQuery {
	if cached, ok := p.cache.Get(query); ok {
		return cached
	}

	text, err := prompt.Render(prompt.KindFilterExtract, map[string]interface{}{
		"today": now.Format("2006-01-02"),
		"query": query,
	})
	if err != nil {
		p.l.Warnf(ctx, "catalog.Parse prompt render failed: %v", err)
		return EmptyQuery()
	}

	resp, err := p.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{{Role: "user", Content: text}},
		Temperature: parseTemperature,
		MaxTokens:   parseMaxTokens,
	})
	if err != nil {
		p.l.Warnf(ctx, "catalog.Parse completion failed: %v", err)
		return EmptyQuery()
	}

	parsed, err := decodeParsedQuery(resp.Text)
	if err != nil {
		p.l.Warnf(ctx, "catalog.Parse invalid model output: %v", err)
		return EmptyQuery()
	}

	p.cache.Add(query, parsed)
	return parsed
}

func decodeParsedQuery(raw string) (ParsedQuery, error) {
	var parsed ParsedQuery
	if err := json.Unmarshal([]byte(stripFences(raw)), &parsed); err != nil {
		return ParsedQuery{}, err
	}
	if parsed.Filters == nil {
		parsed.Filters = Filter{}
	}
	for field := range parsed.Filters {
		if !allowedFields[field] {
			delete(parsed.Filters, field)
		}
	}
	return parsed, nil
}

// stripFences unwraps a markdown code fence the model may emit around
// the JSON payload.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
