package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"baseload-study/internal/api/models"
	"baseload-study/internal/simulation"
	"baseload-study/internal/sites"
	"baseload-study/internal/solar"
)

// writeError maps domain validation failures onto stable error codes. Every
// core failure is a caller error, so anything recognized maps to 400.
func writeError(c *gin.Context, err error) {
	code := "INTERNAL_ERROR"
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errMissingSource):
		code = "INVALID_REQUEST"
		status = http.StatusBadRequest
	case errors.Is(err, sites.ErrInvalidCount):
		code = "INVALID_COUNT"
		status = http.StatusBadRequest
	case errors.Is(err, solar.ErrLengthMismatch):
		code = "LENGTH_MISMATCH"
		status = http.StatusBadRequest
	case errors.Is(err, simulation.ErrInvalidConfig):
		code = "INVALID_CONFIG"
		status = http.StatusBadRequest
	}

	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: err.Error()},
	})
}
