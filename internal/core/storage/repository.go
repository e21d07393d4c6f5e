package storage

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/veyra-lab/project-veyra/internal/core/filter"
)

// ErrDataSource is returned when the backing store is unreachable or rejects
// a query: connection refused, dropped mid-query, recovery mode, malformed
// statement. Never retried automatically; callers surface a manual-retry
// suggestion.
var ErrDataSource = errors.New("data source unavailable")

// ErrQueryTimeout is returned when a statement exceeds its server-side
// deadline. Callers surface a narrow-your-filters suggestion.
var ErrQueryTimeout = errors.New("query deadline exceeded")

// OrderBy selects the row ordering for FetchPage. A closed set keeps ORDER BY
// text out of caller hands.
type OrderBy string

// OrderDateDesc orders rows newest-first by order date. Ties are left to the
// data source: deterministic per query plan, no secondary key specified.
const OrderDateDesc OrderBy = `"orderDate" DESC`

// FactRecord is one fact table row rendered as text, one entry per column in
// source column order. NULL renders as the empty string.
type FactRecord []string

// FactPage is one fetched page of fact rows plus the result set's column
// order. Columns is identical across pages of the same query.
type FactPage struct {
	Columns []string
	Records []FactRecord
}

// FacetStore is the read-only adapter contract over the billing fact table
// and its optional precomputed facet lookup.
type FacetStore interface {
	// DistinctValues returns the ordered distinct non-null values of a
	// dimension's column among rows matching the constraint set.
	DistinctValues(ctx context.Context, dim filter.Dimension, cons filter.Constraints) ([]string, error)

	// DistinctValuesUnconstrained returns the ordered distinct non-null
	// values ever observed for a dimension. Served from the facet lookup
	// table when it exists, transparently from the fact table otherwise.
	// The lookup carries no date column, so this is always date-blind.
	DistinctValuesUnconstrained(ctx context.Context, dim filter.Dimension) ([]string, error)

	// Count returns the number of fact rows matching the constraint set,
	// under the short count deadline.
	Count(ctx context.Context, cons filter.Constraints) (int64, error)

	// FetchPage returns one page of matching fact rows under the long fetch
	// deadline. offset/limit paging; order per orderBy.
	FetchPage(ctx context.Context, cons filter.Constraints, orderBy OrderBy, offset, limit int) (*FactPage, error)
}

// DailyStoreSales is one (day, store) group of the analytics base query.
type DailyStoreSales struct {
	Date         time.Time
	Store        string
	Sales        decimal.Decimal
	Transactions int64
}

// AnalyticsStore serves the grouped sales query behind the analytics view.
type AnalyticsStore interface {
	// DailyStoreSales returns per-day per-store sales totals and transaction
	// counts inside the range, optionally narrowed to one store. Ordered by
	// date then store name.
	DailyStoreSales(ctx context.Context, dateRange filter.DateRange, store string) ([]DailyStoreSales, error)

	// StoreNames returns all distinct store names, for the store picker.
	StoreNames(ctx context.Context) ([]string, error)
}
