package usecase

import (
	"context"
	"fmt"
	"strings"

	"sales-agentic-assistant/internal/chat"
	"sales-agentic-assistant/internal/model"
	"sales-agentic-assistant/internal/prompt"
	"sales-agentic-assistant/pkg/llmprovider"
)

// respondCourses recommends courses matching the structured conditions
// extracted from the query. Like respondProduct it never fails.
func (uc *implUseCase) respondCourses(ctx context.Context, conv *model.Conversation, query string) string {
	now := uc.now()
	parsed := uc.parser.Parse(ctx, query, now)
	matched := uc.evaluator.Evaluate(uc.courses.Records(), parsed.Filters, now)
	uc.l.Debugf(ctx, "chat.respondCourses conv=%s filters=%d matched=%d", conv.ID, len(parsed.Filters), len(matched))

	text, err := prompt.Render(prompt.KindCourseRecommend, map[string]interface{}{
		"courses":      coursesText(matched, maxCoursesInPrompt),
		"user_context": userContextText(parsed.UserContext),
		"history":      historyText(conv, 0),
		"query":        query,
	})
	if err != nil {
		uc.l.Warnf(ctx, "chat.respondCourses prompt render failed conv=%s: %v", conv.ID, err)
		return fmt.Sprintf(courseErrorFormat, err)
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{{Role: "user", Content: text}},
		Temperature: answerTemperature,
		MaxTokens:   answerMaxTokens,
	})
	if err != nil {
		uc.l.Warnf(ctx, "chat.respondCourses conv=%s: %v: %v", conv.ID, chat.ErrCompletionFailed, err)
		return fmt.Sprintf(courseErrorFormat, err)
	}

	return headerCourseAgent + "\n" + strings.TrimSpace(resp.Text)
}

// coursesText renders matched records as the prompt candidate block.
func coursesText(records []model.CourseRecord, limit int) string {
	if len(records) == 0 {
		return "(조건에 맞는 코스 없음)"
	}
	if len(records) > limit {
		records = records[:limit]
	}
	parts := make([]string, 0, len(records))
	for _, r := range records {
		parts = append(parts, fmt.Sprintf("- %s (카테고리: %s, 난이도: %s, %d분, 평점 %.1f, 업데이트 %s)",
			r.Title, r.Category, r.Difficulty, r.DurationMin, r.UserRating, r.UpdateDate))
	}
	return strings.Join(parts, "\n")
}

func userContextText(userContext string) string {
	if strings.TrimSpace(userContext) == "" {
		return "(없음)"
	}
	return userContext
}
