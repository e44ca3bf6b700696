package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"honorly/pkg/response"
)

func TestDateFormats(t *testing.T) {
	afternoon := time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC)
	// 21:00 in New York is already the next day in UTC.
	ny := time.FixedZone("EST", -5*3600)
	lateEvening := time.Date(2026, 3, 1, 21, 0, 0, 0, ny)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"date drops the clock", response.Date(afternoon), `"2026-03-01"`},
		{"date is normalized to UTC", response.Date(lateEvening), `"2026-03-02"`},
		{"datetime is RFC3339 UTC", response.DateTime(lateEvening), `"2026-03-02T02:00:00Z"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}

func TestOptionalDateOmitted(t *testing.T) {
	type task struct {
		Title   string         `json:"title"`
		DueDate *response.Date `json:"dueDate,omitempty"`
	}

	b, err := json.Marshal(task{Title: "Order flowers"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `{"title":"Order flowers"}` {
		t.Errorf("got %s", b)
	}
}
