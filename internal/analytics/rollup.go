package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/veyra-lab/project-veyra/internal/core/filter"
	"github.com/veyra-lab/project-veyra/internal/core/storage"
)

// DailySales is one day's sales total across all matching stores.
type DailySales struct {
	Date         string          `json:"date"`
	Sales        decimal.Decimal `json:"sales"`
	Transactions int64           `json:"transactions"`
}

// WeeklySales is one ISO week's sales total, labeled <year>-W<week>.
type WeeklySales struct {
	Week  string          `json:"week"`
	Sales decimal.Decimal `json:"sales"`
}

// MonthlySales is one calendar month's sales total, labeled <year>-<month>.
type MonthlySales struct {
	Month string          `json:"month"`
	Sales decimal.Decimal `json:"sales"`
}

// StoreSales is one store's totals over the whole range.
type StoreSales struct {
	Store        string          `json:"store"`
	Sales        decimal.Decimal `json:"sales"`
	Transactions int64           `json:"transactions"`
}

// isoWeekLabel renders the ISO year and week of a date. Zero-padding keeps
// the labels byte-sortable in chronological order, including year rollovers
// where early January belongs to the previous ISO year.
func isoWeekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

func monthLabel(t time.Time) string {
	return t.Format("2006-01")
}

// The rollups below rely on the AnalyticsStore ordering contract: groups
// arrive sorted by date, so rows sharing a day, week, or month are
// contiguous and a single pass accumulates each bucket in chronological
// order.

// rollupDaily collapses the day/store groups into one entry per day.
func rollupDaily(groups []storage.DailyStoreSales) []DailySales {
	daily := make([]DailySales, 0)
	for _, g := range groups {
		date := g.Date.Format(filter.DateLayout)
		if n := len(daily); n > 0 && daily[n-1].Date == date {
			daily[n-1].Sales = daily[n-1].Sales.Add(g.Sales)
			daily[n-1].Transactions += g.Transactions
			continue
		}
		daily = append(daily, DailySales{Date: date, Sales: g.Sales, Transactions: g.Transactions})
	}
	return daily
}

// rollupWeekly buckets the day/store groups by ISO week. Only weeks that
// actually contain data produce an entry; gaps are not zero-filled.
func rollupWeekly(groups []storage.DailyStoreSales) []WeeklySales {
	weekly := make([]WeeklySales, 0)
	for _, g := range groups {
		week := isoWeekLabel(g.Date)
		if n := len(weekly); n > 0 && weekly[n-1].Week == week {
			weekly[n-1].Sales = weekly[n-1].Sales.Add(g.Sales)
			continue
		}
		weekly = append(weekly, WeeklySales{Week: week, Sales: g.Sales})
	}
	return weekly
}

// rollupMonthly buckets the day/store groups by calendar month, same rules
// as rollupWeekly.
func rollupMonthly(groups []storage.DailyStoreSales) []MonthlySales {
	monthly := make([]MonthlySales, 0)
	for _, g := range groups {
		month := monthLabel(g.Date)
		if n := len(monthly); n > 0 && monthly[n-1].Month == month {
			monthly[n-1].Sales = monthly[n-1].Sales.Add(g.Sales)
			continue
		}
		monthly = append(monthly, MonthlySales{Month: month, Sales: g.Sales})
	}
	return monthly
}

// rollupStores totals sales and transactions per store, sorted by sales
// descending with store name breaking ties.
func rollupStores(groups []storage.DailyStoreSales) []StoreSales {
	index := make(map[string]int)
	stores := make([]StoreSales, 0)
	for _, g := range groups {
		i, ok := index[g.Store]
		if !ok {
			i = len(stores)
			index[g.Store] = i
			stores = append(stores, StoreSales{Store: g.Store})
		}
		stores[i].Sales = stores[i].Sales.Add(g.Sales)
		stores[i].Transactions += g.Transactions
	}

	sort.Slice(stores, func(i, j int) bool {
		if !stores[i].Sales.Equal(stores[j].Sales) {
			return stores[i].Sales.GreaterThan(stores[j].Sales)
		}
		return stores[i].Store < stores[j].Store
	})
	return stores
}
