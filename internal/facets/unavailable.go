package facets

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/veyra-lab/project-veyra/internal/core/filter"
)

// ResolveUnavailable computes, per dimension, which catalog values cannot
// produce rows under the active filter. The universe comes from the
// unconstrained scans (served by the precomputed lookup when present), the
// reachable set from the fact table under the full active filter including
// the date range, and the unavailable set is their sorted difference. Eight
// scans per computation, so results are cached and concurrent identical
// requests are deduped. The cache key includes the date range, unlike the
// cascade cache.
//
// Resolution never returns an error: when any scan fails the result is four
// empty lists with Degraded set, and nothing is cached.
func (s *Service) ResolveUnavailable(ctx context.Context, sel filter.FilterSelection) *UnavailableFilters {
	key := "unavailable\x00" + sel.DateRange.Label() + "\x00" + sel.FacetKey()

	if cached, ok := s.unavailableCache.get(key); ok {
		return copyUnavailable(cached.(*UnavailableFilters))
	}

	result, _, _ := s.group.Do(key, func() (interface{}, error) {
		// Double-check cache after acquiring singleflight lock
		if cached, ok := s.unavailableCache.get(key); ok {
			return cached.(*UnavailableFilters), nil
		}

		computed := s.scanUnavailable(ctx, sel)
		if !computed.Degraded {
			s.unavailableCache.put(key, computed)
		}
		return computed, nil
	})

	return copyUnavailable(result.(*UnavailableFilters))
}

// scanUnavailable runs the eight scans in parallel: one universe scan and
// one reachable scan per dimension.
func (s *Service) scanUnavailable(ctx context.Context, sel filter.FilterSelection) *UnavailableFilters {
	universe := make([][]string, len(filter.Dimensions))
	reachable := make([][]string, len(filter.Dimensions))
	cons := filter.ActiveConstraints(sel)

	g, gctx := errgroup.WithContext(ctx)
	for i, dim := range filter.Dimensions {
		g.Go(func() error {
			values, err := s.store.DistinctValuesUnconstrained(gctx, dim)
			if err != nil {
				return fmt.Errorf("scan %s universe: %w", dim, err)
			}
			universe[i] = values
			return nil
		})
		g.Go(func() error {
			values, err := s.store.DistinctValues(gctx, dim, cons)
			if err != nil {
				return fmt.Errorf("scan %s reachable set: %w", dim, err)
			}
			reachable[i] = values
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.Warn("[Facets] Unavailability resolution degraded", "error", err)
		return degradedUnavailable()
	}

	var computed UnavailableFilters
	for i, dim := range filter.Dimensions {
		*computed.listFor(dim) = missingValues(universe[i], reachable[i])
	}
	return &computed
}

// missingValues returns universe minus reachable, sorted ascending in plain
// byte order: case-sensitive, uppercase before lowercase.
func missingValues(universe, reachable []string) []string {
	seen := make(map[string]struct{}, len(reachable))
	for _, v := range reachable {
		seen[v] = struct{}{}
	}

	missing := make([]string, 0)
	for _, v := range universe {
		if _, ok := seen[v]; !ok {
			missing = append(missing, v)
		}
	}

	sort.Strings(missing)
	return missing
}
