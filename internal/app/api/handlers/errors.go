package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitpro/gym/internal/app/service/attendance"
	"github.com/fitpro/gym/internal/app/service/member"
	"github.com/fitpro/gym/internal/app/service/payment"
	"github.com/fitpro/gym/pkg/response"
)

// respondError maps domain errors onto envelope codes. Session-state
// conflicts get their own code so the UI can show a specific message rather
// than a generic validation failure.
func respondError(c *gin.Context, err error) {
	var verr *member.ValidationError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, verr.Error()))
	case errors.Is(err, payment.ErrInvalidAmount), errors.Is(err, payment.ErrInvalidMethod):
		c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
	case errors.Is(err, member.ErrNotFound), errors.Is(err, attendance.ErrNotFound):
		c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeNotFound, err.Error()))
	case errors.Is(err, attendance.ErrAlreadyCheckedIn), errors.Is(err, attendance.ErrNoOpenSession):
		c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeConflict, err.Error()))
	default:
		c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, msg))
}

// parseDate parses a canonical YYYY-MM-DD value.
func parseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

// parseDateRange reads the inclusive start/end query params of report
// endpoints.
func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	start, err := parseDate(c.Query("start"))
	if err != nil {
		badRequest(c, "start must be YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	end, err := parseDate(c.Query("end"))
	if err != nil {
		badRequest(c, "end must be YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
