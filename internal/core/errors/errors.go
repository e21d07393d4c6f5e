package errors

const (
	HttpInternalError        = "internal_error"
	HttpInvalidRequestError  = "invalid_request"
	HttpUnauthorizedError    = "unauthorized"
	HttpForbiddenError       = "forbidden"
	HttpDataSourceError      = "data_source_unavailable"
	HttpQueryTimeoutError    = "query_timeout"
	HttpDatasetTooLargeError = "dataset_too_large"
)

// ErrorResponse is the error response body for API errors. Suggestion, when
// set, tells the user what to do next (narrow the range, add filters, retry
// manually); the client renders it verbatim.
type ErrorResponse struct {
	ErrorType  string      `json:"error_type"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
	Details    interface{} `json:"details,omitempty"`
}
