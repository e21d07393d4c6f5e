package export

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	v1 "github.com/veyra-lab/project-veyra/internal/api/v1"
	httperr "github.com/veyra-lab/project-veyra/internal/core/errors"
	"github.com/veyra-lab/project-veyra/internal/core/filter"
	"github.com/veyra-lab/project-veyra/internal/core/storage"
)

// RegisterRoutes registers the export API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/exports", s.HandleExport)
	r.POST("/exports/preflight", s.HandlePreflight)
}

// HandlePreflight handles POST /exports/preflight
// Returns the guarded row count and verdict without fetching anything.
func (s *Service) HandlePreflight(c *gin.Context) {
	sel, ok := bindSelection(c)
	if !ok {
		return
	}

	pre, err := s.Preflight(c.Request.Context(), sel)
	if err != nil {
		respondExportError(c, err)
		return
	}

	c.JSON(http.StatusOK, pre)
}

// exportVerdictResponse is the body of a no-artifact outcome. Empty and
// blocked are verdicts, not errors, so they do not use the error envelope.
type exportVerdictResponse struct {
	Verdict    Verdict `json:"verdict"`
	Rows       int64   `json:"rows"`
	Message    string  `json:"message"`
	Suggestion string  `json:"suggestion,omitempty"`
}

// HandleExport handles POST /exports
// Streams the CSV artifact on an ok or warned verdict. Empty returns 200,
// blocked returns 413; both carry the verdict headers and no artifact.
func (s *Service) HandleExport(c *gin.Context) {
	sel, ok := bindSelection(c)
	if !ok {
		return
	}

	result, err := s.Export(c.Request.Context(), sel, nil)
	if err != nil {
		respondExportError(c, err)
		return
	}

	c.Header("X-Export-Job", result.JobID)
	c.Header("X-Export-Verdict", string(result.Verdict))
	c.Header("X-Export-Rows", strconv.FormatInt(result.Rows, 10))

	switch result.Verdict {
	case VerdictEmpty:
		c.JSON(http.StatusOK, exportVerdictResponse{
			Verdict: VerdictEmpty,
			Message: "No data found for the selected filters",
		})
	case VerdictBlocked:
		c.JSON(http.StatusRequestEntityTooLarge, exportVerdictResponse{
			Verdict:    VerdictBlocked,
			Rows:       result.Rows,
			Message:    fmt.Sprintf("Dataset too large: %d rows", result.Rows),
			Suggestion: "Please narrow your filters.",
		})
	default:
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", result.Payload)
	}
}

func bindSelection(c *gin.Context) (filter.FilterSelection, bool) {
	var req v1.Selection
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid request body",
			Details:   err.Error(),
		})
		return filter.FilterSelection{}, false
	}

	sel, err := req.Resolve(true)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid export selection",
			Details:   err.Error(),
		})
		return filter.FilterSelection{}, false
	}
	return sel, true
}

// respondExportError maps pipeline errors onto HTTP statuses. There are no
// automatic retries anywhere in the pipeline; the suggestions tell the
// caller what a manual retry should change.
func respondExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidSelection):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid export selection",
			Details:   err.Error(),
		})
	case errors.Is(err, storage.ErrQueryTimeout):
		c.JSON(http.StatusGatewayTimeout, httperr.ErrorResponse{
			ErrorType:  httperr.HttpQueryTimeoutError,
			Message:    "Query exceeded its time budget",
			Suggestion: "Narrow the date range or add filters, then retry.",
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
			Message:   "Export failed",
			Details:   err.Error(),
		})
	}
}
