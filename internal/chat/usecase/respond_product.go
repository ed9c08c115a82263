package usecase

import (
	"context"
	"fmt"
	"strings"

	"sales-agentic-assistant/internal/chat"
	"sales-agentic-assistant/internal/model"
	"sales-agentic-assistant/internal/prompt"
	"sales-agentic-assistant/internal/retrieval"
	"sales-agentic-assistant/pkg/llmprovider"
)

// respondProduct answers a product question grounded on retrieved
// documents. It never fails: every error path degrades to a diagnostic
// answer so the turn still completes.
func (uc *implUseCase) respondProduct(ctx context.Context, conv *model.Conversation, query string) string {
	snippets, err := uc.retriever.Search(ctx, retrieval.CorpusProductDocs, query, maxSnippetsInPrompt)
	if err != nil {
		// Degrade to an unsupported answer rather than failing the turn.
		uc.l.Warnf(ctx, "chat.respondProduct retrieval failed conv=%s: %v", conv.ID, err)
		snippets = nil
	}

	text, err := prompt.Render(prompt.KindProductAnswer, map[string]interface{}{
		"context": snippetContext(snippets),
		"history": historyText(conv, maxProductHistoryTurns),
		"query":   query,
	})
	if err != nil {
		uc.l.Warnf(ctx, "chat.respondProduct prompt render failed conv=%s: %v", conv.ID, err)
		return fmt.Sprintf(productErrorFormat, err)
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{{Role: "user", Content: text}},
		Temperature: answerTemperature,
		MaxTokens:   answerMaxTokens,
	})
	if err != nil {
		uc.l.Warnf(ctx, "chat.respondProduct conv=%s: %v: %v", conv.ID, chat.ErrCompletionFailed, err)
		return fmt.Sprintf(productErrorFormat, err)
	}

	return headerProductAgent + "\n" + strings.TrimSpace(resp.Text)
}

// snippetContext joins retrieved passages into the prompt context block.
func snippetContext(snippets []retrieval.Snippet) string {
	if len(snippets) == 0 {
		return "(관련 문서 없음)"
	}
	parts := make([]string, 0, len(snippets))
	for i, s := range snippets {
		parts = append(parts, fmt.Sprintf("%d. %s", i+1, s.Text))
	}
	return strings.Join(parts, "\n")
}
