package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/veyra-lab/project-veyra/internal/core/filter"
	"github.com/veyra-lab/project-veyra/internal/core/storage"
)

// builder returns a squirrel builder with Postgres placeholders.
func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// quotedColumn returns a dimension's column as a quoted identifier, empty
// for an unknown dimension.
func quotedColumn(dim filter.Dimension) string {
	col := dim.Column()
	if col == "" {
		return ""
	}
	return pq.QuoteIdentifier(col)
}

// applyConstraints appends a constraint set to a select: the date-range
// predicate first when present, then each facet predicate in the canonical
// dimension order the builder produced. Every value travels as a placeholder
// argument, never as spliced text.
func applyConstraints(q sq.SelectBuilder, cons filter.Constraints) sq.SelectBuilder {
	if cons.DateRange != nil {
		q = q.Where(sq.Expr(`"orderDate" BETWEEN ? AND ?`, cons.DateRange.Start, cons.DateRange.End))
	}
	for _, c := range cons.Facets {
		q = q.Where(sq.Eq{pq.QuoteIdentifier(c.Column): c.Value})
	}
	return q
}

// sqlStateQueryCanceled is raised when a statement exceeds statement_timeout.
const sqlStateQueryCanceled = "57014"

// classifyQueryError maps a driver error onto the storage sentinels so the
// rest of the system branches with errors.Is instead of inspecting driver
// internals. Anything that is not a deadline becomes ErrDataSource: the
// taxonomy has no "malformed query" bucket of its own.
func classifyQueryError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == sqlStateQueryCanceled {
		return fmt.Errorf("%s: %w: %v", op, storage.ErrQueryTimeout, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %v", op, storage.ErrQueryTimeout, err)
	}
	return fmt.Errorf("%s: %w: %v", op, storage.ErrDataSource, err)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanStrings drains a single text-column result set in row order.
func scanStrings(rows *sql.Rows) ([]string, error) {
	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan value row: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// scanFactPage drains a fact table result set into a page, preserving the
// result set's column order for the CSV header. Cell values are rendered to
// text immediately so the page holds no driver-owned memory.
func scanFactPage(rows *sql.Rows) (*storage.FactPage, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read column set: %w", err)
	}

	page := &storage.FactPage{Columns: cols}
	raw := make([]interface{}, len(cols))
	ptrs := make([]interface{}, len(cols))
	for i := range raw {
		ptrs[i] = &raw[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan fact row: %w", err)
		}
		record := make(storage.FactRecord, len(cols))
		for i, v := range raw {
			record[i] = formatValue(v)
		}
		page.Records = append(page.Records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return page, nil
}

// formatValue renders a scanned driver value as export-ready text. DATE
// columns arrive as midnight-UTC time.Time and render as plain dates;
// NUMERIC arrives as []byte and passes through verbatim; NULL renders empty.
func formatValue(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case time.Time:
		if x.Equal(x.Truncate(24 * time.Hour)) {
			return x.Format(filter.DateLayout)
		}
		return x.UTC().Format(time.RFC3339)
	case []byte:
		return string(x)
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// scanDailyStoreSales scans one (day, store) analytics group. SUM over an
// all-NULL price group comes back NULL, which scans as a zero total.
func scanDailyStoreSales(row scanner) (storage.DailyStoreSales, error) {
	var (
		group storage.DailyStoreSales
		sales sql.NullString
	)
	if err := row.Scan(&group.Date, &group.Store, &sales, &group.Transactions); err != nil {
		return storage.DailyStoreSales{}, fmt.Errorf("failed to scan daily sales row: %w", err)
	}
	if sales.Valid {
		d, err := decimal.NewFromString(sales.String)
		if err != nil {
			return storage.DailyStoreSales{}, fmt.Errorf("failed to parse daily sales total %q: %w", sales.String, err)
		}
		group.Sales = d
	}
	return group, nil
}
