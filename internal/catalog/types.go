package catalog

// Filter maps a catalog field name to a condition. A condition is a
// scalar (equality), a list (membership), or an object with a single
// comparison operator: gte, lte, after, before.
type Filter map[string]interface{}

// ParsedQuery is the structured form extracted from a free-text
// recommendation request.
type ParsedQuery struct {
	Filters     Filter `json:"filters"`
	UserContext string `json:"user_context"`
}

// EmptyQuery matches every record and carries no user context.
func EmptyQuery() ParsedQuery {
	return ParsedQuery{Filters: Filter{}}
}

const (
	opGte    = "gte"
	opLte    = "lte"
	opAfter  = "after"
	opBefore = "before"
)

// allowedFields is the closed catalog schema. Conditions on any other
// field are dropped during parsing and match nothing during evaluation.
var allowedFields = map[string]bool{
	"id":                    true,
	"title":                 true,
	"category":              true,
	"duration_min":          true,
	"difficulty":            true,
	"completion_rate":       true,
	"review_rate":           true,
	"average_quiz_score":    true,
	"user_rating":           true,
	"num_of_learners":       true,
	"recent_popularity":     true,
	"update_date":           true,
	"completion_time_ratio": true,
}
