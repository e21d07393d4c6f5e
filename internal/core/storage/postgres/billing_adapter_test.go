package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/veyra-lab/project-veyra/internal/core/filter"
	"github.com/veyra-lab/project-veyra/internal/core/storage"
)

func TestAdapter_DistinctValues(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		dim            filter.Dimension
		cons           filter.Constraints
		mockResult     func(mock sqlmock.Sqlmock)
		assertions     func(t *testing.T, values []string, err error)
		expectationsOK bool
	}{
		{
			name: "selection-only constraints",
			dim:  filter.DimensionBrand,
			cons: filter.Constraints{Facets: []filter.Constraint{
				{Column: "categoryName", Value: "Hardware"},
				{Column: "storeName", Value: "Pune Central"},
			}},
			mockResult: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(
					`SELECT DISTINCT "brandName" FROM billing_data WHERE "brandName" IS NOT NULL AND "categoryName" = $1 AND "storeName" = $2 ORDER BY "brandName"`,
				)).
					WithArgs("Hardware", "Pune Central").
					WillReturnRows(sqlmock.NewRows([]string{"brandName"}).
						AddRow("Acme").
						AddRow("Bolt")).
					RowsWillBeClosed()
			},
			assertions: func(t *testing.T, values []string, err error) {
				require.NoError(t, err)
				require.Equal(t, []string{"Acme", "Bolt"}, values)
			},
			expectationsOK: true,
		},
		{
			name: "date range constraint included",
			dim:  filter.DimensionStore,
			cons: filter.Constraints{
				DateRange: &filter.DateRange{Start: start, End: end},
				Facets:    []filter.Constraint{{Column: "storeName", Value: "Pune Central"}},
			},
			mockResult: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(
					`SELECT DISTINCT "storeName" FROM billing_data WHERE "storeName" IS NOT NULL AND "orderDate" BETWEEN $1 AND $2 AND "storeName" = $3 ORDER BY "storeName"`,
				)).
					WithArgs(start, end, "Pune Central").
					WillReturnRows(sqlmock.NewRows([]string{"storeName"}).AddRow("Pune Central")).
					RowsWillBeClosed()
			},
			assertions: func(t *testing.T, values []string, err error) {
				require.NoError(t, err)
				require.Equal(t, []string{"Pune Central"}, values)
			},
			expectationsOK: true,
		},
		{
			name: "no constraints scans everything",
			dim:  filter.DimensionCategory,
			mockResult: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(
					`SELECT DISTINCT "categoryName" FROM billing_data WHERE "categoryName" IS NOT NULL ORDER BY "categoryName"`,
				)).
					WillReturnRows(sqlmock.NewRows([]string{"categoryName"})).
					RowsWillBeClosed()
			},
			assertions: func(t *testing.T, values []string, err error) {
				require.NoError(t, err)
				require.Empty(t, values)
			},
			expectationsOK: true,
		},
		{
			name: "statement timeout maps to ErrQueryTimeout",
			dim:  filter.DimensionBrand,
			mockResult: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT DISTINCT "brandName"`).
					WillReturnError(&pq.Error{Code: sqlStateQueryCanceled})
			},
			assertions: func(t *testing.T, values []string, err error) {
				require.ErrorIs(t, err, storage.ErrQueryTimeout)
				require.Nil(t, values)
			},
			expectationsOK: true,
		},
		{
			name: "connection failure maps to ErrDataSource",
			dim:  filter.DimensionBrand,
			mockResult: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT DISTINCT "brandName"`).
					WillReturnError(errors.New("connection refused"))
			},
			assertions: func(t *testing.T, values []string, err error) {
				require.ErrorIs(t, err, storage.ErrDataSource)
			},
			expectationsOK: true,
		},
		{
			name: "unknown dimension short-circuits",
			dim:  filter.Dimension("bogus"),
			assertions: func(t *testing.T, values []string, err error) {
				require.Error(t, err)
				require.ErrorContains(t, err, "unknown dimension")
			},
			expectationsOK: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			adapter, mock, db := newMockAdapter(t)
			defer db.Close()

			if tc.mockResult != nil {
				tc.mockResult(mock)
			}

			values, err := adapter.DistinctValues(context.Background(), tc.dim, tc.cons)
			tc.assertions(t, values, err)

			if tc.expectationsOK {
				require.NoError(t, mock.ExpectationsWereMet())
			}
		})
	}
}

func TestAdapter_DistinctValuesUnconstrained(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(universeQuery(tableFacetLookup, filter.DimensionBrand))).
		WillReturnRows(sqlmock.NewRows([]string{"brandName"}).
			AddRow("Acme").
			AddRow("Bolt").
			AddRow("Corex")).
		RowsWillBeClosed()

	values, err := adapter.DistinctValuesUnconstrained(context.Background(), filter.DimensionBrand)
	require.NoError(t, err)
	require.Equal(t, []string{"Acme", "Bolt", "Corex"}, values)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_DistinctValuesUnconstrained_UnknownDimension(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	_, err := adapter.DistinctValuesUnconstrained(context.Background(), filter.Dimension("bogus"))
	require.Error(t, err)
	require.ErrorContains(t, err, "unknown dimension")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_Count(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	cons := filter.Constraints{
		DateRange: &filter.DateRange{Start: start, End: end},
		Facets:    []filter.Constraint{{Column: "brandName", Value: "Acme"}},
	}

	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET LOCAL statement_timeout = 30000")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT COUNT(*) FROM billing_data WHERE "orderDate" BETWEEN $1 AND $2 AND "brandName" = $3`,
	)).
		WithArgs(start, end, "Acme").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1234)))
	mock.ExpectCommit()

	n, err := adapter.Count(context.Background(), cons)
	require.NoError(t, err)
	require.Equal(t, int64(1234), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_CountTimeoutRollsBack(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET LOCAL statement_timeout = 30000")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM billing_data")).
		WillReturnError(&pq.Error{Code: sqlStateQueryCanceled})
	mock.ExpectRollback()

	_, err := adapter.Count(context.Background(), filter.Constraints{})
	require.ErrorIs(t, err, storage.ErrQueryTimeout)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_FetchPage(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	cons := filter.Constraints{DateRange: &filter.DateRange{Start: start, End: end}}

	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	orderDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET LOCAL statement_timeout = 300000")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM billing_data WHERE "orderDate" BETWEEN $1 AND $2 ORDER BY "orderDate" DESC LIMIT 2 OFFSET 0`,
	)).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows(billingRowColumns()).
			AddRow(orderDate, "Acme", "Hardware", "Fasteners", "Pune Central", "ORD-1001", int64(2), []byte("649.50"), []byte("1299.00")).
			AddRow(orderDate, nil, "Hardware", nil, "Pune Central", "ORD-1002", int64(1), []byte("80.00"), []byte("80.00"))).
		RowsWillBeClosed()
	mock.ExpectCommit()

	page, err := adapter.FetchPage(context.Background(), cons, storage.OrderDateDesc, 0, 2)
	require.NoError(t, err)
	require.Equal(t, billingRowColumns(), page.Columns)
	require.Len(t, page.Records, 2)
	require.Equal(t,
		storage.FactRecord{"2024-01-15", "Acme", "Hardware", "Fasteners", "Pune Central", "ORD-1001", "2", "649.50", "1299.00"},
		page.Records[0],
	)
	require.Equal(t, "", page.Records[1][1], "NULL facet renders empty")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_FetchPageRejectsUnknownOrder(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	_, err := adapter.FetchPage(context.Background(), filter.Constraints{}, storage.OrderBy("id ASC"), 0, 10)
	require.Error(t, err)
	require.ErrorContains(t, err, "unsupported order")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_DailyStoreSales(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	t.Run("all stores", func(t *testing.T) {
		adapter, mock, db := newMockAdapter(t)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT "orderDate", "storeName", SUM("totalProductPrice") AS daily_sales, COUNT(*) AS transaction_count FROM billing_data WHERE "orderDate" BETWEEN $1 AND $2 GROUP BY "orderDate", "storeName" ORDER BY "orderDate", "storeName"`,
		)).
			WithArgs(start, end).
			WillReturnRows(sqlmock.NewRows([]string{"orderDate", "storeName", "daily_sales", "transaction_count"}).
				AddRow(day, "Mumbai West", []byte("15499.50"), int64(42)).
				AddRow(day, "Pune Central", nil, int64(3))).
			RowsWillBeClosed()

		groups, err := adapter.DailyStoreSales(context.Background(), filter.DateRange{Start: start, End: end}, "")
		require.NoError(t, err)
		require.Len(t, groups, 2)
		require.Equal(t, "Mumbai West", groups[0].Store)
		require.True(t, groups[0].Sales.Equal(decimal.RequireFromString("15499.50")))
		require.Equal(t, int64(42), groups[0].Transactions)
		require.True(t, groups[1].Sales.IsZero(), "NULL sum scans as zero")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("single store", func(t *testing.T) {
		adapter, mock, db := newMockAdapter(t)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT "orderDate", "storeName", SUM("totalProductPrice") AS daily_sales, COUNT(*) AS transaction_count FROM billing_data WHERE "orderDate" BETWEEN $1 AND $2 AND "storeName" = $3 GROUP BY "orderDate", "storeName" ORDER BY "orderDate", "storeName"`,
		)).
			WithArgs(start, end, "Pune Central").
			WillReturnRows(sqlmock.NewRows([]string{"orderDate", "storeName", "daily_sales", "transaction_count"}).
				AddRow(day, "Pune Central", []byte("220.00"), int64(5))).
			RowsWillBeClosed()

		groups, err := adapter.DailyStoreSales(context.Background(), filter.DateRange{Start: start, End: end}, "Pune Central")
		require.NoError(t, err)
		require.Len(t, groups, 1)
		require.Equal(t, "Pune Central", groups[0].Store)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAdapter_StoreNames(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryStoreNames)).
		WillReturnRows(sqlmock.NewRows([]string{"storeName"}).
			AddRow("Mumbai West").
			AddRow("Pune Central")).
		RowsWillBeClosed()

	values, err := adapter.StoreNames(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Mumbai West", "Pune Central"}, values)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_CloseReturnsDBCloseError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dbCloseErr := errors.New("db close failed")

	stmtUniverse := make(map[filter.Dimension]*sql.Stmt, len(filter.Dimensions))
	for _, dim := range filter.Dimensions {
		mock.ExpectPrepare(regexp.QuoteMeta(universeQuery(tableFacetLookup, dim))).WillBeClosed()
		stmt, err := db.Prepare(universeQuery(tableFacetLookup, dim))
		require.NoError(t, err)
		stmtUniverse[dim] = stmt
	}

	mock.ExpectPrepare(regexp.QuoteMeta(queryStoreNames)).WillBeClosed()
	stmtStoreNames, err := db.Prepare(queryStoreNames)
	require.NoError(t, err)

	mock.ExpectClose().WillReturnError(dbCloseErr)

	adapter := &Adapter{
		db:             db,
		hasFacetLookup: true,
		stmtUniverse:   stmtUniverse,
		stmtStoreNames: stmtStoreNames,
	}

	err = adapter.Close()
	require.Error(t, err)
	require.ErrorContains(t, err, "failed to close database")
	require.ErrorIs(t, err, dbCloseErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFormatValue(t *testing.T) {
	midnight := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	afternoon := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)

	require.Equal(t, "", formatValue(nil))
	require.Equal(t, "2024-01-15", formatValue(midnight))
	require.Equal(t, "2024-01-15T14:30:00Z", formatValue(afternoon))
	require.Equal(t, "1299.00", formatValue([]byte("1299.00")))
	require.Equal(t, "plain", formatValue("plain"))
	require.Equal(t, "42", formatValue(int64(42)))
	require.Equal(t, "1.5", formatValue(1.5))
	require.Equal(t, "true", formatValue(true))
}

func newMockAdapter(t *testing.T) (*Adapter, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	stmtUniverse := make(map[filter.Dimension]*sql.Stmt, len(filter.Dimensions))
	for _, dim := range filter.Dimensions {
		stmtUniverse[dim] = mustPrepareStmt(t, db, mock, universeQuery(tableFacetLookup, dim))
	}

	adapter := &Adapter{
		db:             db,
		hasFacetLookup: true,
		countTimeout:   30 * time.Second,
		fetchTimeout:   300 * time.Second,
		stmtUniverse:   stmtUniverse,
		stmtStoreNames: mustPrepareStmt(t, db, mock, queryStoreNames),
	}

	return adapter, mock, db
}

func mustPrepareStmt(t *testing.T, db *sql.DB, mock sqlmock.Sqlmock, query string) *sql.Stmt {
	t.Helper()

	mock.ExpectPrepare(regexp.QuoteMeta(query))
	stmt, err := db.Prepare(query)
	require.NoError(t, err)

	return stmt
}

func billingRowColumns() []string {
	return []string{
		"orderDate",
		"brandName",
		"categoryName",
		"subCategoryOf",
		"storeName",
		"orderId",
		"quantity",
		"unitPrice",
		"totalProductPrice",
	}
}
