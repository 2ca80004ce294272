package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitpro/gym/internal/app/service/attendance"
	"github.com/fitpro/gym/internal/models"
	"github.com/fitpro/gym/pkg/response"
)

const clockLayout = "15:04:05"

type attendanceActionRequest struct {
	MemberID string `json:"member_id"`
	// Date and Time default to the current wall clock when omitted.
	Date string `json:"date,omitempty"`
	Time string `json:"time,omitempty"`
}

type sessionView struct {
	ID         string `json:"id"`
	MemberID   string `json:"member_id"`
	MemberName string `json:"member_name,omitempty"`
	Date       string `json:"date"`
	TimeIn     string `json:"time_in"`
	TimeOut    string `json:"time_out,omitempty"`
	Duration   string `json:"duration"`
}

func toSessionView(s *models.AttendanceSession, memberName string) *sessionView {
	v := &sessionView{
		ID:         s.ID,
		MemberID:   s.MemberID,
		MemberName: memberName,
		Date:       s.Date.Format(time.DateOnly),
		TimeIn:     s.CheckedInAt.Format(clockLayout),
		Duration:   attendance.DurationLabel(s),
	}
	if s.CheckedOutAt != nil {
		v.TimeOut = s.CheckedOutAt.Format(clockLayout)
	}
	return v
}

// resolveMoment combines the optional date and time fields into a single
// timestamp, defaulting each part to now.
func (r *attendanceActionRequest) resolveMoment(c *gin.Context) (day, at time.Time, ok bool) {
	now := time.Now()
	day = now
	if r.Date != "" {
		var err error
		if day, err = parseDate(r.Date); err != nil {
			badRequest(c, "date must be YYYY-MM-DD")
			return
		}
	}
	at = now
	if r.Time != "" {
		clock, err := time.Parse(clockLayout, r.Time)
		if err != nil {
			badRequest(c, "time must be HH:MM:SS")
			return
		}
		at = time.Date(day.Year(), day.Month(), day.Day(),
			clock.Hour(), clock.Minute(), clock.Second(), 0, now.Location())
	}
	ok = true
	return
}

// @Summary      Check in
// @Description  Opens a session. Fails while the member already has an open session that day.
// @Tags         Attendance
// @Accept       json
// @Produce      json
// @Param        request body handlers.attendanceActionRequest true "Check-in request"
// @Success      200  {object}  response.APIResponse[sessionView]
// @Router       /api/v1/attendance/check-in [post]
func ApiCheckIn(svc *attendance.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req attendanceActionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		day, at, ok := req.resolveMoment(c)
		if !ok {
			return
		}
		s, err := svc.CheckIn(c.Request.Context(), req.MemberID, day, at)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(toSessionView(s, "")))
	}
}

// @Summary      Check out
// @Description  Closes the member's most recent open session for the day.
// @Tags         Attendance
// @Accept       json
// @Produce      json
// @Param        request body handlers.attendanceActionRequest true "Check-out request"
// @Success      200  {object}  response.APIResponse[sessionView]
// @Router       /api/v1/attendance/check-out [post]
func ApiCheckOut(svc *attendance.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req attendanceActionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		day, at, ok := req.resolveMoment(c)
		if !ok {
			return
		}
		s, err := svc.CheckOut(c.Request.Context(), req.MemberID, day, at)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(toSessionView(s, "")))
	}
}

// @Summary      Check out by session id
// @Description  Closes a specific session; already-closed sessions are rejected.
// @Tags         Attendance
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200  {object}  response.APIResponse[sessionView]
// @Router       /api/v1/attendance/{id}/check-out [post]
func ApiCheckOutByID(svc *attendance.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := svc.CheckOutByID(c.Request.Context(), c.Param("id"), time.Now())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(toSessionView(s, "")))
	}
}

// @Summary      List attendance
// @Description  Lists sessions for a date (default today) or, when member_id is given, a member's history.
// @Tags         Attendance
// @Produce      json
// @Param        date      query string false "YYYY-MM-DD"
// @Param        member_id query string false "Member ID"
// @Success      200  {object}  response.APIResponse[[]sessionView]
// @Router       /api/v1/attendance [get]
func ApiListAttendance(svc *attendance.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if memberID := c.Query("member_id"); memberID != "" {
			sessions, err := svc.ListForMember(c.Request.Context(), memberID)
			if err != nil {
				respondError(c, err)
				return
			}
			views := make([]*sessionView, 0, len(sessions))
			for _, s := range sessions {
				views = append(views, toSessionView(s, ""))
			}
			c.JSON(http.StatusOK, response.OKT(views))
			return
		}

		day := time.Now()
		if q := c.Query("date"); q != "" {
			var err error
			if day, err = parseDate(q); err != nil {
				badRequest(c, "date must be YYYY-MM-DD")
				return
			}
		}
		records, err := svc.ListForDate(c.Request.Context(), day)
		if err != nil {
			respondError(c, err)
			return
		}
		views := make([]*sessionView, 0, len(records))
		for _, r := range records {
			views = append(views, toSessionView(&r.AttendanceSession, r.MemberName))
		}
		c.JSON(http.StatusOK, response.OKT(views))
	}
}

func RegisterAttendanceRoutes(r gin.IRouter, svc *attendance.Service) {
	r.POST("/attendance/check-in", ApiCheckIn(svc))
	r.POST("/attendance/check-out", ApiCheckOut(svc))
	r.POST("/attendance/:id/check-out", ApiCheckOutByID(svc))
	r.GET("/attendance", ApiListAttendance(svc))
}
