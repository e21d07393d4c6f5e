package facets

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/veyra-lab/project-veyra/internal/api/v1"
	httperr "github.com/veyra-lab/project-veyra/internal/core/errors"
	"github.com/veyra-lab/project-veyra/internal/core/filter"
)

// RegisterRoutes registers the filter panel API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/filters", s.HandleResolveFilters)
	r.GET("/filters/unavailable", s.HandleResolveUnavailable)
	r.GET("/filters/unavailable/:dimension/csv", s.HandleUnavailableCSV)
}

// HandleResolveFilters handles GET /filters
// Query parameters: brand, category, subcategory, store (all optional).
func (s *Service) HandleResolveFilters(c *gin.Context) {
	var query v1.Selection
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	sel, _ := query.Resolve(false)
	c.JSON(http.StatusOK, s.ResolveCascadingFilters(c.Request.Context(), sel))
}

// HandleResolveUnavailable handles GET /filters/unavailable
// Query parameters: start_date, end_date (YYYY-MM-DD, required), plus the
// optional facet picks.
func (s *Service) HandleResolveUnavailable(c *gin.Context) {
	var query v1.Selection
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	sel, err := query.Resolve(true)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid date range",
			Details:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, s.ResolveUnavailable(c.Request.Context(), sel))
}

// HandleUnavailableCSV handles GET /filters/unavailable/:dimension/csv
// Streams one dimension's unavailable values as a single-column CSV
// attachment. A degraded resolution returns 503 with no artifact rather
// than an empty file that reads as "nothing unavailable".
func (s *Service) HandleUnavailableCSV(c *gin.Context) {
	dim, err := filter.ParseDimension(c.Param("dimension"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Unknown dimension",
			Details:   err.Error(),
		})
		return
	}

	var query v1.Selection
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	sel, err := query.Resolve(true)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid date range",
			Details:   err.Error(),
		})
		return
	}

	result := s.ResolveUnavailable(c.Request.Context(), sel)
	if result.Degraded {
		c.JSON(http.StatusServiceUnavailable, httperr.ErrorResponse{
			ErrorType:  httperr.HttpDataSourceError,
			Message:    "Unavailability could not be computed",
			Suggestion: "Retry the request; a retry recomputes from live data.",
		})
		return
	}

	values := result.Values(dim)
	rows := make([][]string, 0, len(values)+1)
	rows = append(rows, []string{dim.DisplayName()})
	for _, v := range values {
		rows = append(rows, []string{v})
	}

	var buf bytes.Buffer
	if err := csv.NewWriter(&buf).WriteAll(rows); err != nil {
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to render CSV",
			Details:   err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("unavailable_%s_%s.csv", dim, sel.DateRange.Label())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
