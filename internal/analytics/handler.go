package analytics

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	httperr "github.com/veyra-lab/project-veyra/internal/core/errors"
	"github.com/veyra-lab/project-veyra/internal/core/filter"
	"github.com/veyra-lab/project-veyra/internal/core/storage"
)

// RegisterRoutes registers the analytics API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/analytics/summary", s.HandleSummary)
	r.GET("/analytics/daily", s.HandleDaily)
	r.GET("/analytics/weekly", s.HandleWeekly)
	r.GET("/analytics/monthly", s.HandleMonthly)
	r.GET("/analytics/stores", s.HandleStores)
	r.GET("/analytics/stores/names", s.HandleStoreNames)
	r.GET("/analytics/summary/csv", s.HandleSummaryCSV)
}

// rangeQuery binds the mandatory date range plus the optional store filter
// shared by the analytics endpoints.
type rangeQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Store     string `form:"store"`
}

// bindRange binds and parses the shared query parameters. Date ordering is
// left to Compute; only parse failures are rejected here.
func bindRange(c *gin.Context) (filter.DateRange, string, bool) {
	var query rangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return filter.DateRange{}, "", false
	}

	start, err := time.Parse(filter.DateLayout, query.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid date range",
			Details:   fmt.Sprintf("invalid start date %q: expected YYYY-MM-DD", query.StartDate),
		})
		return filter.DateRange{}, "", false
	}
	end, err := time.Parse(filter.DateLayout, query.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid date range",
			Details:   fmt.Sprintf("invalid end date %q: expected YYYY-MM-DD", query.EndDate),
		})
		return filter.DateRange{}, "", false
	}

	return filter.DateRange{Start: start, End: end}, query.Store, true
}

// summaryResponse is the headline metrics block. Money fields marshal as
// decimal strings.
type summaryResponse struct {
	StartDate           string          `json:"start_date"`
	EndDate             string          `json:"end_date"`
	Store               string          `json:"store,omitempty"`
	Days                int             `json:"days"`
	Empty               bool            `json:"empty"`
	TotalSales          decimal.Decimal `json:"total_sales"`
	AvgSalesPerDay      decimal.Decimal `json:"avg_sales_per_day"`
	WeeklyAvgSales      decimal.Decimal `json:"weekly_avg_sales"`
	MonthlyAvgSales     decimal.Decimal `json:"monthly_avg_sales"`
	TotalTransactions   int64           `json:"total_transactions"`
	AvgTransactionValue decimal.Decimal `json:"avg_transaction_value"`
	TotalWeeks          int             `json:"total_weeks"`
	TotalMonths         int             `json:"total_months"`
	TopStores           []StoreSales    `json:"top_stores"`
}

type dailyResponse struct {
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date"`
	Store     string       `json:"store,omitempty"`
	Daily     []DailySales `json:"daily"`
}

type weeklyResponse struct {
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Store     string        `json:"store,omitempty"`
	Weekly    []WeeklySales `json:"weekly"`
}

type monthlyResponse struct {
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Store     string         `json:"store,omitempty"`
	Monthly   []MonthlySales `json:"monthly"`
}

type storesResponse struct {
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date"`
	Store     string       `json:"store,omitempty"`
	Stores    []StoreSales `json:"stores"`
}

type storeNamesResponse struct {
	Stores []string `json:"stores"`
}

// HandleSummary handles GET /analytics/summary
// Query parameters: start_date, end_date (YYYY-MM-DD, required), store
// (optional). An empty result returns the zeroed block with empty set, not
// an error.
func (s *Service) HandleSummary(c *gin.Context) {
	m, ok := s.compute(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, summaryResponse{
		StartDate:           m.Range.Start.Format(filter.DateLayout),
		EndDate:             m.Range.End.Format(filter.DateLayout),
		Store:               m.Store,
		Days:                m.Days,
		Empty:               m.Empty,
		TotalSales:          m.TotalSales,
		AvgSalesPerDay:      m.AvgSalesPerDay,
		WeeklyAvgSales:      m.WeeklyAvgSales,
		MonthlyAvgSales:     m.MonthlyAvgSales,
		TotalTransactions:   m.TotalTransactions,
		AvgTransactionValue: m.AvgTransactionValue,
		TotalWeeks:          m.TotalWeeks,
		TotalMonths:         m.TotalMonths,
		TopStores:           m.TopStores(s.topStores),
	})
}

// HandleDaily handles GET /analytics/daily
func (s *Service) HandleDaily(c *gin.Context) {
	m, ok := s.compute(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dailyResponse{
		StartDate: m.Range.Start.Format(filter.DateLayout),
		EndDate:   m.Range.End.Format(filter.DateLayout),
		Store:     m.Store,
		Daily:     m.Daily,
	})
}

// HandleWeekly handles GET /analytics/weekly
func (s *Service) HandleWeekly(c *gin.Context) {
	m, ok := s.compute(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, weeklyResponse{
		StartDate: m.Range.Start.Format(filter.DateLayout),
		EndDate:   m.Range.End.Format(filter.DateLayout),
		Store:     m.Store,
		Weekly:    m.Weekly,
	})
}

// HandleMonthly handles GET /analytics/monthly
func (s *Service) HandleMonthly(c *gin.Context) {
	m, ok := s.compute(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, monthlyResponse{
		StartDate: m.Range.Start.Format(filter.DateLayout),
		EndDate:   m.Range.End.Format(filter.DateLayout),
		Store:     m.Store,
		Monthly:   m.Monthly,
	})
}

// HandleStores handles GET /analytics/stores
// Returns the full per-store breakdown, sales descending.
func (s *Service) HandleStores(c *gin.Context) {
	m, ok := s.compute(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, storesResponse{
		StartDate: m.Range.Start.Format(filter.DateLayout),
		EndDate:   m.Range.End.Format(filter.DateLayout),
		Store:     m.Store,
		Stores:    m.Stores,
	})
}

// HandleStoreNames handles GET /analytics/stores/names
// No date range; the picker lists every store ever observed.
func (s *Service) HandleStoreNames(c *gin.Context) {
	names, err := s.StoreNames(c.Request.Context())
	if err != nil {
		respondAnalyticsError(c, err)
		return
	}

	c.JSON(http.StatusOK, storeNamesResponse{Stores: names})
}

// HandleSummaryCSV handles GET /analytics/summary/csv
// Streams the summary report artifact. An empty result returns 204: there
// is no report worth downloading, but it is not an error.
func (s *Service) HandleSummaryCSV(c *gin.Context) {
	m, ok := s.compute(c)
	if !ok {
		return
	}
	if m.Empty {
		c.Status(http.StatusNoContent)
		return
	}

	payload, err := SummaryCSV(m)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to render summary report",
			Details:   err.Error(),
		})
		return
	}

	filename := "sales_summary_" + m.Range.Label() + ".csv"
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", payload)
}

// compute binds the shared query parameters and runs Compute, writing the
// error response itself when either step fails.
func (s *Service) compute(c *gin.Context) (*Metrics, bool) {
	dateRange, store, ok := bindRange(c)
	if !ok {
		return nil, false
	}

	m, err := s.Compute(c.Request.Context(), dateRange, store)
	if err != nil {
		respondAnalyticsError(c, err)
		return nil, false
	}
	return m, true
}

// respondAnalyticsError maps computation errors onto HTTP statuses.
func respondAnalyticsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidRange):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid date range",
			Details:   err.Error(),
		})
	case errors.Is(err, storage.ErrQueryTimeout):
		c.JSON(http.StatusGatewayTimeout, httperr.ErrorResponse{
			ErrorType:  httperr.HttpQueryTimeoutError,
			Message:    "Analytics query exceeded its time budget",
			Suggestion: "Narrow the date range, then retry.",
			Details:    err.Error(),
		})
	case errors.Is(err, storage.ErrDataSource):
		c.JSON(http.StatusServiceUnavailable, httperr.ErrorResponse{
			ErrorType:  httperr.HttpDataSourceError,
			Message:    "Data source unavailable",
			Suggestion: "Check the data source connection, then retry.",
			Details:    err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Analytics computation failed",
			Details:   err.Error(),
		})
	}
}
