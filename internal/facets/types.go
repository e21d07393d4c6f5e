package facets

import (
	"github.com/veyra-lab/project-veyra/internal/core/filter"
)

// ResolvedFilters carries the candidate value lists for all four facet
// dimensions. Each list is computed under the other three picks only, so a
// dimension's own pick never narrows its own options.
type ResolvedFilters struct {
	Brands        []string `json:"brands"`
	Categories    []string `json:"categories"`
	Subcategories []string `json:"subcategories"`
	Stores        []string `json:"stores"`

	// Degraded is set when the data source could not be reached. All four
	// lists are empty and the result is not cached.
	Degraded bool `json:"degraded"`
}

// Values returns the candidate list for one dimension.
func (r *ResolvedFilters) Values(d filter.Dimension) []string {
	if out := r.listFor(d); out != nil {
		return *out
	}
	return nil
}

func (r *ResolvedFilters) listFor(d filter.Dimension) *[]string {
	switch d {
	case filter.DimensionBrand:
		return &r.Brands
	case filter.DimensionCategory:
		return &r.Categories
	case filter.DimensionSubcategory:
		return &r.Subcategories
	case filter.DimensionStore:
		return &r.Stores
	}
	return nil
}

// normalize replaces nil lists with empty ones so responses encode [] rather
// than null.
func (r *ResolvedFilters) normalize() {
	for _, d := range filter.Dimensions {
		if out := r.listFor(d); *out == nil {
			*out = []string{}
		}
	}
}

// degradedResolved is the explicit no-data cascade result.
func degradedResolved() *ResolvedFilters {
	return &ResolvedFilters{
		Brands:        []string{},
		Categories:    []string{},
		Subcategories: []string{},
		Stores:        []string{},
		Degraded:      true,
	}
}

// UnavailableFilters carries, per dimension, the catalog values that cannot
// produce any rows under the active filter: known to the system, out of
// reach right now. Lists are sorted ascending in plain byte order.
type UnavailableFilters struct {
	Brands        []string `json:"brands"`
	Categories    []string `json:"categories"`
	Subcategories []string `json:"subcategories"`
	Stores        []string `json:"stores"`

	// Degraded is set when the data source could not be reached. All four
	// lists are empty and the result is not cached.
	Degraded bool `json:"degraded"`
}

// Values returns the unavailable list for one dimension.
func (u *UnavailableFilters) Values(d filter.Dimension) []string {
	if out := u.listFor(d); out != nil {
		return *out
	}
	return nil
}

func (u *UnavailableFilters) listFor(d filter.Dimension) *[]string {
	switch d {
	case filter.DimensionBrand:
		return &u.Brands
	case filter.DimensionCategory:
		return &u.Categories
	case filter.DimensionSubcategory:
		return &u.Subcategories
	case filter.DimensionStore:
		return &u.Stores
	}
	return nil
}

// degradedUnavailable is the explicit no-data unavailability result.
func degradedUnavailable() *UnavailableFilters {
	return &UnavailableFilters{
		Brands:        []string{},
		Categories:    []string{},
		Subcategories: []string{},
		Stores:        []string{},
		Degraded:      true,
	}
}
