package v1

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/veyra-lab/project-veyra/internal/core/filter"
)

func TestSelection_Resolve(t *testing.T) {
	tests := []struct {
		name         string
		selection    Selection
		requireDates bool
		wantErr      bool
		checkFn      func(*testing.T, filter.FilterSelection) // Optional assertions on the resolved value
	}{
		{
			name: "valid selection with all fields",
			selection: Selection{
				StartDate:   "2024-01-01",
				EndDate:     "2024-03-31",
				Brand:       "Acme",
				Category:    "Hardware",
				Subcategory: "Fasteners",
				Store:       "Pune Central",
			},
			requireDates: true,
			checkFn: func(t *testing.T, sel filter.FilterSelection) {
				if got := sel.DateRange.Start.Format(filter.DateLayout); got != "2024-01-01" {
					t.Errorf("Start = %q, want 2024-01-01", got)
				}
				if got := sel.DateRange.End.Format(filter.DateLayout); got != "2024-03-31" {
					t.Errorf("End = %q, want 2024-03-31", got)
				}
				if sel.Brand != "Acme" || sel.Store != "Pune Central" {
					t.Errorf("facet picks not carried over: %+v", sel)
				}
			},
		},
		{
			name: "dates skipped when not required",
			selection: Selection{
				StartDate: "not-a-date",
				EndDate:   "",
				Brand:     "Acme",
			},
			requireDates: false,
			checkFn: func(t *testing.T, sel filter.FilterSelection) {
				if !sel.DateRange.Start.IsZero() || !sel.DateRange.End.IsZero() {
					t.Errorf("date range should stay zero, got %+v", sel.DateRange)
				}
				if sel.Brand != "Acme" {
					t.Errorf("Brand = %q, want Acme", sel.Brand)
				}
			},
		},
		{
			name:         "missing start date",
			selection:    Selection{EndDate: "2024-03-31"},
			requireDates: true,
			wantErr:      true,
		},
		{
			name:         "missing end date",
			selection:    Selection{StartDate: "2024-01-01"},
			requireDates: true,
			wantErr:      true,
		},
		{
			name: "malformed start date",
			selection: Selection{
				StartDate: "01/01/2024",
				EndDate:   "2024-03-31",
			},
			requireDates: true,
			wantErr:      true,
		},
		{
			name: "end before start",
			selection: Selection{
				StartDate: "2024-03-31",
				EndDate:   "2024-01-01",
			},
			requireDates: true,
			wantErr:      true,
		},
		{
			name: "single day range is valid",
			selection: Selection{
				StartDate: "2024-06-15",
				EndDate:   "2024-06-15",
			},
			requireDates: true,
			checkFn: func(t *testing.T, sel filter.FilterSelection) {
				if days := sel.DateRange.Days(); days != 1 {
					t.Errorf("Days() = %d, want 1", days)
				}
			},
		},
		{
			name:         "empty selection without dates",
			selection:    Selection{},
			requireDates: false,
			checkFn: func(t *testing.T, sel filter.FilterSelection) {
				for _, d := range filter.Dimensions {
					if sel.Pick(d) != "" {
						t.Errorf("Pick(%s) = %q, want empty", d, sel.Pick(d))
					}
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := tt.selection.Resolve(tt.requireDates)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.checkFn != nil {
				tt.checkFn(t, sel)
			}
		})
	}
}

func TestSelection_JSONRoundtrip(t *testing.T) {
	payload := `{"start_date":"2024-01-01","end_date":"2024-03-31","brand":"Acme","store":"Pune Central"}`

	var sel Selection
	if err := json.Unmarshal([]byte(payload), &sel); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if sel.StartDate != "2024-01-01" || sel.Brand != "Acme" {
		t.Errorf("unexpected decode: %+v", sel)
	}
	if sel.Category != "" || sel.Subcategory != "" {
		t.Errorf("absent picks should decode empty: %+v", sel)
	}

	resolved, err := sel.Resolve(true)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	wantStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !resolved.DateRange.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", resolved.DateRange.Start, wantStart)
	}
}
