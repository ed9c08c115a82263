package usecase

const (
	// Responder headers prefixed to every successful answer.
	headerProductAgent = "📱 [제품 정보 Agent]"
	headerCourseAgent  = "🎓 [학습 추천 Agent]"

	// Diagnostic markers returned as the answer when a responder fails.
	// A failed completion still completes the turn.
	productErrorFormat = "❗제품 정보 조회 중 오류 발생: %v"
	courseErrorFormat  = "❗추천 생성 중 오류 발생: %v"

	answerTemperature = 0.3
	answerMaxTokens   = 1024

	// Context caps keep the product prompt inside the token budget. The
	// recommendation prompt carries the whole history instead, since the
	// filter and recommendation quality depend on accumulated context.
	maxProductHistoryTurns = 5
	maxSnippetsInPrompt    = 3
	maxCoursesInPrompt     = 10
)
