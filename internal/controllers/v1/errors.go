package v1

import (
	"errors"
	"net/http"

	"github.com/finance-visualizer/backend/internal/httputil"
	"github.com/finance-visualizer/backend/internal/models"
	"github.com/finance-visualizer/backend/internal/validate"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// status returns the HTTP status for an error.
func status(err error) int {
	var verr *validate.Error
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}

	if errors.Is(err, models.ErrStorageUnavailable) {
		return http.StatusServiceUnavailable
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// renderError writes the error response for err.
func renderError(c *gin.Context, err error) {
	s := status(err)
	if s >= http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	}

	httputil.NewError(c, s, err)
}
