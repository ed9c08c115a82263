package catalog

import (
	"testing"
	"time"

	"sales-agentic-assistant/internal/model"
	"sales-agentic-assistant/pkg/datemath"
)

func testRecords() []model.CourseRecord {
	return []model.CourseRecord{
		{
			ID: 1, Title: "영업 기초", Category: "영업", Difficulty: "초급",
			DurationMin: 60, UserRating: 4.5, NumOfLearners: 1200,
			UpdateDate: "2025-06-01",
		},
		{
			ID: 2, Title: "협상 전략", Category: "영업", Difficulty: "고급",
			DurationMin: 180, UserRating: 4.8, NumOfLearners: 300,
			UpdateDate: "2024-11-20",
		},
		{
			ID: 3, Title: "고객 응대 입문", Category: "CS", Difficulty: "초급",
			DurationMin: 45, UserRating: 4.1, NumOfLearners: 2500,
			UpdateDate: "2025-08-15",
		},
	}
}

func newTestEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}
	return NewEvaluator(dates)
}

func ids(records []model.CourseRecord) []int {
	out := make([]int, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestEvaluate(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)
	e := newTestEvaluator(t)

	tests := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{
			name:   "empty filter matches everything",
			filter: Filter{},
			want:   []int{1, 2, 3},
		},
		{
			name: "equality and numeric range",
			filter: Filter{
				"difficulty":  "초급",
				"user_rating": map[string]interface{}{"gte": 4.0},
			},
			want: []int{1, 3},
		},
		{
			name: "list membership",
			filter: Filter{
				"category": []interface{}{"CS", "마케팅"},
			},
			want: []int{3},
		},
		{
			name: "combined gte and lte",
			filter: Filter{
				"duration_min": map[string]interface{}{"gte": float64(50), "lte": float64(120)},
			},
			want: []int{1},
		},
		{
			name: "relative date window",
			filter: Filter{
				"update_date": map[string]interface{}{"after": "3 months ago"},
			},
			want: []int{1, 3},
		},
		{
			name: "before absolute date",
			filter: Filter{
				"update_date": map[string]interface{}{"before": "2025-01-01"},
			},
			want: []int{2},
		},
		{
			name: "after excludes the boundary date",
			filter: Filter{
				"update_date": map[string]interface{}{"after": "2025-06-01"},
			},
			want: []int{3},
		},
		{
			name: "before excludes the boundary date",
			filter: Filter{
				"update_date": map[string]interface{}{"before": "2024-11-20"},
			},
			want: []int{},
		},
		{
			name: "numeric equality coerces json float to int field",
			filter: Filter{
				"duration_min": float64(45),
			},
			want: []int{3},
		},
		{
			name: "unknown field excludes all records",
			filter: Filter{
				"salary": map[string]interface{}{"gte": float64(1)},
			},
			want: []int{},
		},
		{
			name: "unknown operator excludes all records",
			filter: Filter{
				"user_rating": map[string]interface{}{"approximately": 4.5},
			},
			want: []int{},
		},
		{
			name: "non numeric bound excludes all records",
			filter: Filter{
				"user_rating": map[string]interface{}{"gte": "높음"},
			},
			want: []int{},
		},
		{
			name: "unparsable date excludes all records",
			filter: Filter{
				"update_date": map[string]interface{}{"after": "최근"},
			},
			want: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(e.Evaluate(testRecords(), tt.filter, now))
			if len(got) != len(tt.want) {
				t.Fatalf("Evaluate() ids = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Evaluate() ids = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	now := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)
	e := newTestEvaluator(t)
	records := testRecords()

	e.Evaluate(records, Filter{"difficulty": "고급"}, now)

	if records[0].ID != 1 || records[2].ID != 3 {
		t.Error("Evaluate() mutated the input slice")
	}
}
