package v1

import (
	"fmt"
	"time"

	"github.com/veyra-lab/project-veyra/internal/core/filter"
)

// Selection is the wire form of a filter selection, the unit of query state
// every data endpoint receives. One shape serves both transports: the filter
// panel binds it from query parameters, the export endpoints from a JSON
// body. Dates travel as plain YYYY-MM-DD strings; facet picks are optional
// and empty means unset.
type Selection struct {
	// StartDate and EndDate bound the inclusive date range. Required by
	// every endpoint except the cascading filter resolution, which is
	// selection-only and ignores dates entirely.
	StartDate string `form:"start_date" json:"start_date"`
	EndDate   string `form:"end_date" json:"end_date"`

	// The four facet picks. Each, when set, must name a previously observed
	// distinct value; a stale pick is tolerated and simply matches nothing.
	Brand       string `form:"brand" json:"brand,omitempty"`
	Category    string `form:"category" json:"category,omitempty"`
	Subcategory string `form:"subcategory" json:"subcategory,omitempty"`
	Store       string `form:"store" json:"store,omitempty"`
}

// Resolve converts the wire selection into its domain value. With
// requireDates unset the dates are skipped, not validated: the cascade
// resolver must behave identically whether or not the client happened to
// send its current range along.
func (s Selection) Resolve(requireDates bool) (filter.FilterSelection, error) {
	sel := filter.FilterSelection{
		Brand:       s.Brand,
		Category:    s.Category,
		Subcategory: s.Subcategory,
		Store:       s.Store,
	}
	if !requireDates {
		return sel, nil
	}

	start, err := time.Parse(filter.DateLayout, s.StartDate)
	if err != nil {
		return sel, fmt.Errorf("invalid start date %q: expected YYYY-MM-DD", s.StartDate)
	}
	end, err := time.Parse(filter.DateLayout, s.EndDate)
	if err != nil {
		return sel, fmt.Errorf("invalid end date %q: expected YYYY-MM-DD", s.EndDate)
	}

	sel.DateRange = filter.DateRange{Start: start, End: end}
	if err := sel.DateRange.Validate(); err != nil {
		return sel, err
	}
	return sel, nil
}
