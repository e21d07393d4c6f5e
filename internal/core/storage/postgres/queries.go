package postgres

import (
	"fmt"

	"github.com/lib/pq"

	"github.com/veyra-lab/project-veyra/internal/core/filter"
)

// Static SQL for billing storage. Constraint-dependent queries are assembled
// with the squirrel builder in billing_adapter.go; only fixed-shape text
// lives here.

const (
	tableBillingData = "billing_data"
	tableFacetLookup = "facet_lookup"

	// queryTableExists checks table presence via information_schema.
	// Used for startup schema validation of the fact table.
	queryTableExists = `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_name = $1
		)
	`

	// queryMatviewExists checks for the precomputed facet lookup, which is a
	// materialized view and therefore absent from information_schema.tables.
	queryMatviewExists = `
		SELECT EXISTS (
			SELECT FROM pg_matviews
			WHERE matviewname = $1
		)
	`

	// queryStoreNames feeds the analytics store picker. Always reads the fact
	// table: the picker must list stores even when the lookup table is stale.
	queryStoreNames = `
		SELECT DISTINCT "storeName"
		FROM billing_data
		WHERE "storeName" IS NOT NULL
		ORDER BY "storeName"
	`
)

// universeQuery renders the distinct-universe scan for one facet column
// against the given source table (facet_lookup when present, billing_data on
// fallback). Identifiers come from the closed Dimension set and are quoted.
func universeQuery(table string, dim filter.Dimension) string {
	col := pq.QuoteIdentifier(dim.Column())
	return fmt.Sprintf(
		"SELECT DISTINCT %s FROM %s WHERE %s IS NOT NULL ORDER BY %s",
		col, table, col, col,
	)
}
