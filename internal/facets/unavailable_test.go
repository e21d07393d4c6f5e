package facets

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/veyra-lab/project-veyra/internal/core/filter"
	"github.com/veyra-lab/project-veyra/internal/core/storage"
	storagemocks "github.com/veyra-lab/project-veyra/internal/mocks/storage"
)

func testDateRange() filter.DateRange {
	return filter.DateRange{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_ResolveUnavailable_SortedDifference(t *testing.T) {
	sel := filter.FilterSelection{
		DateRange: testDateRange(),
		Brand:     "Acme",
	}
	// Reachable scans carry the full active filter: the date range plus
	// every pick, the scanned dimension's own included.
	active := filter.ActiveConstraints(sel)

	universe := map[filter.Dimension][]string{
		filter.DimensionBrand:       {"Acme", "Bolt", "Corex", "aardvark"},
		filter.DimensionCategory:    {"Beverages", "Snacks"},
		filter.DimensionSubcategory: {"Juice", "Soda", "Chips"},
		filter.DimensionStore:       {"Downtown", "Mall", "Airport"},
	}
	reachable := map[filter.Dimension][]string{
		filter.DimensionBrand:       {"Acme", "Bolt"},
		filter.DimensionCategory:    {"Beverages"},
		filter.DimensionSubcategory: {"Juice", "Soda"},
		filter.DimensionStore:       {"Downtown"},
	}

	store := storagemocks.NewFacetStore(t)
	for dim, values := range universe {
		store.EXPECT().DistinctValuesUnconstrained(mock.Anything, dim).Return(values, nil).Once()
	}
	for dim, values := range reachable {
		store.EXPECT().DistinctValues(mock.Anything, dim, active).Return(values, nil).Once()
	}

	svc := NewService(store, time.Hour)
	result := svc.ResolveUnavailable(context.Background(), sel)

	require.False(t, result.Degraded)
	// Plain byte order: uppercase sorts before lowercase.
	require.Equal(t, []string{"Corex", "aardvark"}, result.Brands)
	require.Equal(t, []string{"Snacks"}, result.Categories)
	require.Equal(t, []string{"Chips"}, result.Subcategories)
	require.Equal(t, []string{"Airport", "Mall"}, result.Stores)
}

func TestService_ResolveUnavailable_EmptyRangeMeansEverythingUnavailable(t *testing.T) {
	sel := filter.FilterSelection{DateRange: testDateRange()}
	active := filter.ActiveConstraints(sel)

	universe := map[filter.Dimension][]string{
		filter.DimensionBrand:       {"Bolt", "Acme"},
		filter.DimensionCategory:    {"Snacks", "Beverages"},
		filter.DimensionSubcategory: {"Soda", "Chips"},
		filter.DimensionStore:       {"Mall", "Airport"},
	}

	store := storagemocks.NewFacetStore(t)
	for dim, values := range universe {
		store.EXPECT().DistinctValuesUnconstrained(mock.Anything, dim).Return(values, nil).Once()
		store.EXPECT().DistinctValues(mock.Anything, dim, active).Return(nil, nil).Once()
	}

	svc := NewService(store, time.Hour)
	result := svc.ResolveUnavailable(context.Background(), sel)

	require.False(t, result.Degraded)
	for dim, values := range universe {
		want := append([]string(nil), values...)
		sort.Strings(want)
		require.Equal(t, want, result.Values(dim), "dimension %s", dim)
	}
}

func TestService_ResolveUnavailable_DegradesOnStoreError(t *testing.T) {
	store := storagemocks.NewFacetStore(t)
	store.EXPECT().
		DistinctValuesUnconstrained(mock.Anything, mock.Anything).
		Return(nil, storage.ErrDataSource)
	store.EXPECT().
		DistinctValues(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, storage.ErrDataSource)

	svc := NewService(store, time.Hour)
	result := svc.ResolveUnavailable(context.Background(), filter.FilterSelection{DateRange: testDateRange()})

	require.True(t, result.Degraded)
	require.Empty(t, result.Brands)
	require.Empty(t, result.Categories)
	require.Empty(t, result.Subcategories)
	require.Empty(t, result.Stores)
}

func TestService_ResolveUnavailable_CacheKeyIncludesDateRange(t *testing.T) {
	selA := filter.FilterSelection{DateRange: testDateRange(), Brand: "Acme"}
	selB := selA
	selB.DateRange.End = time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	store := storagemocks.NewFacetStore(t)
	for _, dim := range filter.Dimensions {
		store.EXPECT().
			DistinctValuesUnconstrained(mock.Anything, dim).
			Return([]string{"u"}, nil).
			Times(2)
		store.EXPECT().
			DistinctValues(mock.Anything, dim, filter.ActiveConstraints(selA)).
			Return([]string{"u"}, nil).
			Once()
		store.EXPECT().
			DistinctValues(mock.Anything, dim, filter.ActiveConstraints(selB)).
			Return(nil, nil).
			Once()
	}

	svc := NewService(store, time.Hour)

	first := svc.ResolveUnavailable(context.Background(), selA)
	require.Empty(t, first.Brands)

	// Identical selection is served from cache: no further scans.
	cached := svc.ResolveUnavailable(context.Background(), selA)
	require.Equal(t, first, cached)

	// Same facets with a different range is a different computation.
	other := svc.ResolveUnavailable(context.Background(), selB)
	require.Equal(t, []string{"u"}, other.Brands)
}
