package catalog

import "sales-agentic-assistant/internal/model"

// fieldValue resolves a filter field name against a record. The bool
// reports whether the field exists in the catalog schema.
func fieldValue(r model.CourseRecord, name string) (interface{}, bool) {
	switch name {
	case "id":
		return r.ID, true
	case "title":
		return r.Title, true
	case "category":
		return r.Category, true
	case "duration_min":
		return r.DurationMin, true
	case "difficulty":
		return r.Difficulty, true
	case "completion_rate":
		return r.CompletionRate, true
	case "review_rate":
		return r.ReviewRate, true
	case "average_quiz_score":
		return r.AverageQuizScore, true
	case "user_rating":
		return r.UserRating, true
	case "num_of_learners":
		return r.NumOfLearners, true
	case "recent_popularity":
		return r.RecentPopularity, true
	case "update_date":
		return r.UpdateDate, true
	case "completion_time_ratio":
		return r.CompletionTimeRatio, true
	default:
		return nil, false
	}
}

// toFloat coerces numeric values of any JSON or record origin.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
