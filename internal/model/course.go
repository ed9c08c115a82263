package model

// CourseRecord is one sales-learning catalog entry. Records are read-only
// at request time; the catalog is replaced wholesale on reload.
type CourseRecord struct {
	ID                  int     `json:"id"`
	Title               string  `json:"title"`
	Category            string  `json:"category"`
	DurationMin         int     `json:"duration_min"`
	Difficulty          string  `json:"difficulty"`
	CompletionRate      float64 `json:"completion_rate"`
	ReviewRate          float64 `json:"review_rate"`
	AverageQuizScore    float64 `json:"average_quiz_score"`
	UserRating          float64 `json:"user_rating"`
	NumOfLearners       int     `json:"num_of_learners"`
	RecentPopularity    float64 `json:"recent_popularity"`
	UpdateDate          string  `json:"update_date"` // "2006-01-02"
	CompletionTimeRatio float64 `json:"completion_time_ratio"`
}
