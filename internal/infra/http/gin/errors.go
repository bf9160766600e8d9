package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	sessionsapp "villastay/internal/app/handlers/sessions"
	"villastay/internal/domain/calendar"
	"villastay/internal/domain/stay"
	"villastay/internal/domain/villa"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(c *gin.Context, err error) {
	status, code := classify(err)
	c.JSON(status, gin.H{"error": errorBody{Code: code, Message: err.Error()}})
}

// Booking rule violations are expected outcomes of user input, not faults:
// they map to 422 with a stable machine-readable code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, stay.ErrInvalidStartDay):
		return http.StatusUnprocessableEntity, "invalid_start_day"
	case errors.Is(err, stay.ErrPeriodUnavailable):
		return http.StatusUnprocessableEntity, "period_unavailable"
	case errors.Is(err, stay.ErrDurationBelowMinimum):
		return http.StatusUnprocessableEntity, "duration_below_minimum"
	case errors.Is(err, stay.ErrDurationAboveMaximum):
		return http.StatusUnprocessableEntity, "duration_above_maximum"
	case errors.Is(err, stay.ErrSelectionRequired):
		return http.StatusUnprocessableEntity, "selection_required"
	case errors.Is(err, stay.ErrNotFound), errors.Is(err, villa.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, calendar.ErrInvalidDate):
		return http.StatusBadRequest, "invalid_date"
	case errors.Is(err, stay.ErrUnknownMode):
		return http.StatusBadRequest, "unknown_mode"
	case errors.Is(err, sessionsapp.ErrZeroDelta):
		return http.StatusBadRequest, "invalid_delta"
	case errors.Is(err, sessionsapp.ErrInvalidMonth):
		return http.StatusBadRequest, "invalid_month"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
