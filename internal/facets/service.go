package facets

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/veyra-lab/project-veyra/internal/core/filter"
	"github.com/veyra-lab/project-veyra/internal/core/storage"
)

// DefaultCacheTTL bounds how stale a cached resolver result may get before
// the next request recomputes it from live data.
const DefaultCacheTTL = 2 * time.Hour

// Service resolves filter panel state against the fact table: cascading
// candidate lists and per-dimension unavailability. Both resolutions degrade
// to explicit empty results instead of failing, cache successful results
// under a TTL, and dedupe concurrent identical computations.
type Service struct {
	store storage.FacetStore

	// Successful results only; degraded results are never cached.
	cascadeCache     *resolverCache
	unavailableCache *resolverCache

	group singleflight.Group // Dedupe concurrent identical resolutions
}

// NewService creates a facet resolver service over the given store.
func NewService(store storage.FacetStore, cacheTTL time.Duration) *Service {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}

	return &Service{
		store:            store,
		cascadeCache:     newResolverCache(cacheTTL),
		unavailableCache: newResolverCache(cacheTTL),
	}
}

// ResolveCascadingFilters computes the candidate lists for all four
// dimensions under the given selection. A dimension's list is constrained by
// the other three picks only, never by its own, so switching a pick among
// the listed candidates needs no intermediate clearing. The date range plays
// no part here, which is what lets results cache on the facet tuple alone.
//
// Resolution never returns an error: when any scan fails the result is four
// empty lists with Degraded set, and nothing is cached.
func (s *Service) ResolveCascadingFilters(ctx context.Context, sel filter.FilterSelection) *ResolvedFilters {
	key := "cascade\x00" + sel.FacetKey()

	if cached, ok := s.cascadeCache.get(key); ok {
		return copyResolved(cached.(*ResolvedFilters))
	}

	result, _, _ := s.group.Do(key, func() (interface{}, error) {
		// Double-check cache after acquiring singleflight lock
		if cached, ok := s.cascadeCache.get(key); ok {
			return cached.(*ResolvedFilters), nil
		}

		resolved := s.scanCandidates(ctx, sel)
		if !resolved.Degraded {
			s.cascadeCache.put(key, resolved)
		}
		return resolved, nil
	})

	return copyResolved(result.(*ResolvedFilters))
}

// scanCandidates runs the four per-dimension candidate scans in parallel.
func (s *Service) scanCandidates(ctx context.Context, sel filter.FilterSelection) *ResolvedFilters {
	var resolved ResolvedFilters

	g, gctx := errgroup.WithContext(ctx)
	for _, dim := range filter.Dimensions {
		out := resolved.listFor(dim)
		g.Go(func() error {
			values, err := s.store.DistinctValues(gctx, dim, filter.FacetConstraints(sel, dim))
			if err != nil {
				return fmt.Errorf("scan %s candidates: %w", dim, err)
			}
			*out = values
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.Warn("[Facets] Candidate resolution degraded", "error", err)
		return degradedResolved()
	}

	resolved.normalize()
	return &resolved
}

// InvalidateCaches drops every cached resolver result. Wired to the manual
// retry path so the retry recomputes from live data.
func (s *Service) InvalidateCaches() {
	s.cascadeCache.clear()
	s.unavailableCache.clear()
	slog.Info("[Facets] Resolver caches invalidated")
}

func copyResolved(r *ResolvedFilters) *ResolvedFilters {
	copy := *r
	return &copy
}

func copyUnavailable(u *UnavailableFilters) *UnavailableFilters {
	copy := *u
	return &copy
}
