// Package httpkit carries the HTTP response conventions shared by every
// module: plain JSON payloads for data, a single error envelope, and the
// mapping from typed domain errors to status codes.
package httpkit

import (
	"net/http"

	"eqia_dashboard_backend/platform/apperr"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error envelope returned by every endpoint. Data
// payloads are returned bare; only failures wrap.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// JSON writes payload with the given status code.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// Error writes an ErrorResponse with the given status code.
func Error(c *gin.Context, status int, message string, details interface{}) {
	c.JSON(status, ErrorResponse{Error: message, Details: details})
}

// OK writes payload with 200. Tables with null cells are still OK responses;
// missing data is a value in the payload, not an HTTP failure.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// HandleError writes the response for a service error and reports whether it
// did so, letting handlers keep the "if HandleError { return }" shape. Typed
// *apperr.Error values map through their Kind (unknown station 404, bad
// dimension 400, exhausted upstream 502); anything untyped falls back to 400.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if domainErr, ok := err.(*apperr.Error); ok {
		c.JSON(domainErr.HTTPStatus(), ErrorResponse{
			Error:   domainErr.Message,
			Details: domainErr.Details,
		})
		return true
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	return true
}
