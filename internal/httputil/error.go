package httputil

import (
	"errors"
	"net/http"

	"github.com/finance-visualizer/backend/internal/validate"
	"github.com/gin-gonic/gin"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error  string            `json:"error" example:"the transaction is invalid: date: Invalid date format"` // The error message
	Fields map[string]string `json:"fields,omitempty" example:"date:Invalid date format"`                   // Messages for every invalid field
}

// NewError renders the error as JSON. Validation errors additionally
// carry their per-field messages.
func NewError(c *gin.Context, status int, err error) {
	e := HTTPError{
		Error: err.Error(),
	}

	var verr *validate.Error
	if errors.As(err, &verr) {
		e.Fields = verr.Fields
	}

	c.JSON(status, e)
}

// MethodNotAllowed renders the error for calls with unsupported HTTP methods.
func MethodNotAllowed(c *gin.Context) {
	NewError(c, http.StatusMethodNotAllowed, errors.New("this HTTP method is not allowed for the endpoint you called"))
}
