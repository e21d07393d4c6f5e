package filter

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and artifact format for calendar dates.
const DateLayout = "2006-01-02"

// Dimension identifies one of the four facet columns of the billing fact table.
type Dimension string

const (
	DimensionBrand       Dimension = "brand"
	DimensionCategory    Dimension = "category"
	DimensionSubcategory Dimension = "subcategory"
	DimensionStore       Dimension = "store"
)

// Dimensions lists the facet dimensions in canonical order. Constraint sets
// and response payloads follow this order so query text stays deterministic.
var Dimensions = []Dimension{DimensionBrand, DimensionCategory, DimensionSubcategory, DimensionStore}

// ParseDimension maps a wire-level dimension name to its Dimension.
func ParseDimension(s string) (Dimension, error) {
	switch Dimension(s) {
	case DimensionBrand, DimensionCategory, DimensionSubcategory, DimensionStore:
		return Dimension(s), nil
	}
	return "", fmt.Errorf("unknown dimension %q", s)
}

// Column returns the fact table column backing the dimension.
func (d Dimension) Column() string {
	switch d {
	case DimensionBrand:
		return "brandName"
	case DimensionCategory:
		return "categoryName"
	case DimensionSubcategory:
		return "subCategoryOf"
	case DimensionStore:
		return "storeName"
	}
	return ""
}

// DisplayName returns the human-facing header used in unavailability artifacts.
func (d Dimension) DisplayName() string {
	switch d {
	case DimensionBrand:
		return "Brand Name"
	case DimensionCategory:
		return "Category Name"
	case DimensionSubcategory:
		return "Sub Category"
	case DimensionStore:
		return "Store Name"
	}
	return ""
}

// DateRange is an inclusive calendar date interval. Mandatory on every
// operation that touches the fact table directly.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Validate checks that both endpoints are set and ordered.
func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("date range requires both start and end")
	}
	if r.End.Before(r.Start) {
		return fmt.Errorf("date range end %s is before start %s",
			r.End.Format(DateLayout), r.Start.Format(DateLayout))
	}
	return nil
}

// Days returns the inclusive calendar day count of the range.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Label renders the range for artifact file names: <start>_to_<end>.
func (r DateRange) Label() string {
	return r.Start.Format(DateLayout) + "_to_" + r.End.Format(DateLayout)
}

// FilterSelection is the current query state owned by the calling session:
// a mandatory date range plus zero to four single-valued facet picks.
// Empty string means unset. The core components are stateless over this
// value; nothing in the selection is mutated by resolvers or exports.
type FilterSelection struct {
	DateRange   DateRange
	Brand       string
	Category    string
	Subcategory string
	Store       string
}

// Pick returns the current pick for a dimension, empty when unset.
func (s FilterSelection) Pick(d Dimension) string {
	switch d {
	case DimensionBrand:
		return s.Brand
	case DimensionCategory:
		return s.Category
	case DimensionSubcategory:
		return s.Subcategory
	case DimensionStore:
		return s.Store
	}
	return ""
}

// FacetKey is the cache key for cascading filter results: the facet tuple
// only, date range deliberately excluded. Values are joined on a unit
// separator since facet text may contain any printable character.
func (s FilterSelection) FacetKey() string {
	return strings.Join([]string{s.Brand, s.Category, s.Subcategory, s.Store}, "\x1f")
}

// Constraint is one exact-match predicate on a facet column.
type Constraint struct {
	Column string
	Value  string
}

// Constraints is the predicate set handed to the facet store: an optional
// date-range predicate plus exact-match facet predicates in canonical
// dimension order.
type Constraints struct {
	DateRange *DateRange
	Facets    []Constraint
}

// FacetConstraints builds the selection-only constraint set used to compute
// one dimension's candidate list: every OTHER dimension's set pick becomes an
// exact-match predicate, the excluded dimension's own pick never does. This
// is the cascading self-exclusion rule, expressed as an explicit exclude
// parameter rather than clause rewriting.
func FacetConstraints(s FilterSelection, exclude Dimension) Constraints {
	var cons Constraints
	for _, d := range Dimensions {
		if d == exclude {
			continue
		}
		if pick := s.Pick(d); pick != "" {
			cons.Facets = append(cons.Facets, Constraint{Column: d.Column(), Value: pick})
		}
	}
	return cons
}

// ActiveConstraints builds the full constraint set for the active filter:
// the date range plus every set facet. Used by the export pipeline and by
// the unavailability resolver's reachable scans.
func ActiveConstraints(s FilterSelection) Constraints {
	dr := s.DateRange
	cons := Constraints{DateRange: &dr}
	for _, d := range Dimensions {
		if pick := s.Pick(d); pick != "" {
			cons.Facets = append(cons.Facets, Constraint{Column: d.Column(), Value: pick})
		}
	}
	return cons
}
