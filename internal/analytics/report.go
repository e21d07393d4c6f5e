package analytics

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/veyra-lab/project-veyra/internal/core/filter"
)

// SummaryCSV renders the metrics block as the two-column summary artifact:
// a Metric,Value header, the headline metrics, then one row per store's
// total. Money renders as ₹ with comma-grouped thousands and two decimal
// places.
func SummaryCSV(m *Metrics) ([]byte, error) {
	rows := [][]string{
		{"Metric", "Value"},
		{"Date Range", fmt.Sprintf("%s to %s",
			m.Range.Start.Format(filter.DateLayout), m.Range.End.Format(filter.DateLayout))},
		{"Total Days", fmt.Sprintf("%d days", m.Days)},
		{"Total Sales", formatMoney(m.TotalSales)},
		{"Average Sales per Day", formatMoney(m.AvgSalesPerDay)},
		{"Weekly Average Sales", formatMoney(m.WeeklyAvgSales)},
		{"Monthly Average Sales", formatMoney(m.MonthlyAvgSales)},
		{"Total Transactions", groupThousands(strconv.FormatInt(m.TotalTransactions, 10))},
		{"Average Transaction Value", formatMoney(m.AvgTransactionValue)},
		{"Total Weeks", strconv.Itoa(m.TotalWeeks)},
		{"Total Months", strconv.Itoa(m.TotalMonths)},
	}
	for _, store := range m.Stores {
		rows = append(rows, []string{"Store: " + store.Store, formatMoney(store.Sales)})
	}

	var buf bytes.Buffer
	if err := csv.NewWriter(&buf).WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to render summary report: %w", err)
	}
	return buf.Bytes(), nil
}

func formatMoney(d decimal.Decimal) string {
	return "₹" + groupThousands(d.StringFixed(2))
}

// groupThousands inserts comma separators into the integer part of a
// decimal string, leaving any sign and fraction untouched.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + frac
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + frac
}
