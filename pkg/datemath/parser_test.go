package datemath_test

import (
	"testing"
	"time"

	"sales-agentic-assistant/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Seoul")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParseDate(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "ISO date",
			value: "2024-03-15",
			want:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "RFC3339",
			value: "2024-03-15T10:00:00Z",
			want:  time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "Slash date",
			value: "2024/03/15",
			want:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "Today",
			value: "today",
			want:  startOfBase,
		},
		{
			name:  "Yesterday",
			value: "yesterday",
			want:  startOfBase.AddDate(0, 0, -1),
		},
		{
			name:  "Three days ago",
			value: "3 days ago",
			want:  startOfBase.AddDate(0, 0, -3),
		},
		{
			name:  "One month ago",
			value: "1 month ago",
			want:  startOfBase.AddDate(0, -1, 0),
		},
		{
			name:  "In two weeks",
			value: "in 2 weeks",
			want:  startOfBase.AddDate(0, 0, 14),
		},
		{
			name:    "Garbage",
			value:   "최근",
			wantErr: true,
		},
		{
			name:    "Empty",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseDate(tt.value, baseTime)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
