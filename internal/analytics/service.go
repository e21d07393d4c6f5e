package analytics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/veyra-lab/project-veyra/internal/core/filter"
	"github.com/veyra-lab/project-veyra/internal/core/storage"
)

const (
	DefaultTopStores    = 10
	DefaultStoreListTTL = 2 * time.Hour
)

// ErrInvalidRange marks date range validation errors that should return
// HTTP 400.
var ErrInvalidRange = errors.New("invalid analytics range")

// Metrics is the computed analytics block for one date range, optionally
// narrowed to a single store. All money values are exact decimals; the
// averages divide by buckets that actually contain data, not by the number
// of weeks or months the range spans.
type Metrics struct {
	Range filter.DateRange
	Store string
	Days  int

	// Empty is set when no fact rows matched. The totals below are zero and
	// the series are empty; callers decide whether that renders as zeros or
	// as no content.
	Empty bool

	TotalSales          decimal.Decimal
	TotalTransactions   int64
	AvgSalesPerDay      decimal.Decimal
	AvgTransactionValue decimal.Decimal
	WeeklyAvgSales      decimal.Decimal
	MonthlyAvgSales     decimal.Decimal
	TotalWeeks          int
	TotalMonths         int

	Daily   []DailySales
	Weekly  []WeeklySales
	Monthly []MonthlySales
	Stores  []StoreSales
}

// TopStores returns the highest-selling stores, at most n entries.
func (m *Metrics) TopStores(n int) []StoreSales {
	if n <= 0 || n >= len(m.Stores) {
		return m.Stores
	}
	return m.Stores[:n]
}

// Service computes sales metrics from the grouped day/store query and
// memoizes the store name list behind the store picker.
type Service struct {
	store     storage.AnalyticsStore
	topStores int

	storeListTTL time.Duration

	mu               sync.Mutex
	storeNames       []string
	storeNamesExpiry time.Time
	nowFn            func() time.Time
}

// Options tune the service. Zero values fall back to defaults.
type Options struct {
	TopStores    int
	StoreListTTL time.Duration
}

func (o Options) normalized() Options {
	if o.TopStores <= 0 {
		o.TopStores = DefaultTopStores
	}
	if o.StoreListTTL <= 0 {
		o.StoreListTTL = DefaultStoreListTTL
	}
	return o
}

// NewService creates an analytics service over the given store.
func NewService(store storage.AnalyticsStore, opts Options) *Service {
	opts = opts.normalized()

	return &Service{
		store:        store,
		topStores:    opts.TopStores,
		storeListTTL: opts.StoreListTTL,
		nowFn:        func() time.Time { return time.Now().UTC() },
	}
}

// Compute runs the grouped sales query for the range and derives the full
// metrics block from its day/store rows. One query per call; every series
// and average is computed in memory from the same result set.
func (s *Service) Compute(ctx context.Context, dateRange filter.DateRange, store string) (*Metrics, error) {
	if err := dateRange.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	groups, err := s.store.DailyStoreSales(ctx, dateRange, store)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily sales: %w", err)
	}

	m := &Metrics{
		Range: dateRange,
		Store: store,
		Days:  dateRange.Days(),
	}
	if len(groups) == 0 {
		m.Empty = true
		m.Daily = []DailySales{}
		m.Weekly = []WeeklySales{}
		m.Monthly = []MonthlySales{}
		m.Stores = []StoreSales{}
		return m, nil
	}

	for _, g := range groups {
		m.TotalSales = m.TotalSales.Add(g.Sales)
		m.TotalTransactions += g.Transactions
	}

	m.Daily = rollupDaily(groups)
	m.Weekly = rollupWeekly(groups)
	m.Monthly = rollupMonthly(groups)
	m.Stores = rollupStores(groups)
	m.TotalWeeks = len(m.Weekly)
	m.TotalMonths = len(m.Monthly)

	// Every group row lands in exactly one week and one month bucket, so the
	// bucket totals sum back to TotalSales and the averages reduce to
	// TotalSales over the bucket count.
	m.AvgSalesPerDay = m.TotalSales.Div(decimal.NewFromInt(int64(m.Days)))
	m.WeeklyAvgSales = m.TotalSales.Div(decimal.NewFromInt(int64(m.TotalWeeks)))
	m.MonthlyAvgSales = m.TotalSales.Div(decimal.NewFromInt(int64(m.TotalMonths)))
	if m.TotalTransactions > 0 {
		m.AvgTransactionValue = m.TotalSales.Div(decimal.NewFromInt(m.TotalTransactions))
	}

	slog.Debug("[Analytics] Metrics computed",
		"range", dateRange.Label(),
		"store", store,
		"groups", len(groups),
		"transactions", m.TotalTransactions,
	)
	return m, nil
}

// StoreNames returns the distinct store names for the store picker. The
// list only changes on data loads, so one memoized copy is served for the
// configured TTL. Concurrent misses may scan twice; both write the same
// list.
func (s *Service) StoreNames(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	if s.storeNames != nil && !s.nowFn().After(s.storeNamesExpiry) {
		names := s.storeNames
		s.mu.Unlock()
		return names, nil
	}
	s.mu.Unlock()

	names, err := s.store.StoreNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load store names: %w", err)
	}
	if names == nil {
		names = []string{}
	}

	s.mu.Lock()
	s.storeNames = names
	s.storeNamesExpiry = s.nowFn().Add(s.storeListTTL)
	s.mu.Unlock()

	return names, nil
}

// InvalidateCache drops the memoized store name list. Wired into the manual
// retry path alongside the facet resolver caches.
func (s *Service) InvalidateCache() {
	s.mu.Lock()
	s.storeNames = nil
	s.storeNamesExpiry = time.Time{}
	s.mu.Unlock()

	slog.Info("[Analytics] Store name cache invalidated")
}
