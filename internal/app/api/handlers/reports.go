package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitpro/gym/internal/app/service/statistics"
	"github.com/fitpro/gym/pkg/response"
	"github.com/fitpro/gym/pkg/tool"
)

type revenueView struct {
	Total    string            `json:"total"`
	ByMethod map[string]string `json:"by_method"`
	Monthly  []monthlyAmount   `json:"monthly"`
}

type monthlyAmount struct {
	Month  string `json:"month"`
	Amount string `json:"amount"`
}

// @Summary      Attendance report
// @Description  Visit totals, distinct visitors, average visits per member and the daily breakdown.
// @Tags         Reports
// @Produce      json
// @Param        start query string true "YYYY-MM-DD"
// @Param        end   query string true "YYYY-MM-DD"
// @Success      200  {object}  response.APIResponse[statistics.AttendanceSummary]
// @Router       /api/v1/reports/attendance [get]
func ApiAttendanceReport(svc *statistics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		start, end, ok := parseDateRange(c)
		if !ok {
			return
		}
		summary, err := svc.GetAttendanceSummary(c.Request.Context(), start, end)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(summary))
	}
}

// @Summary      Membership report
// @Description  Member counts and percentage share per membership type.
// @Tags         Reports
// @Produce      json
// @Success      200  {object}  response.APIResponse[[]statistics.MembershipTypeCount]
// @Router       /api/v1/reports/membership [get]
func ApiMembershipReport(svc *statistics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		dist, err := svc.GetMembershipDistribution(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(dist))
	}
}

// @Summary      Revenue report
// @Description  Total revenue, split by method and the chronological monthly trend.
// @Tags         Reports
// @Produce      json
// @Param        start query string true "YYYY-MM-DD"
// @Param        end   query string true "YYYY-MM-DD"
// @Success      200  {object}  response.APIResponse[revenueView]
// @Router       /api/v1/reports/revenue [get]
func ApiRevenueReport(svc *statistics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		start, end, ok := parseDateRange(c)
		if !ok {
			return
		}
		analysis, err := svc.GetRevenueAnalysis(c.Request.Context(), start, end)
		if err != nil {
			respondError(c, err)
			return
		}

		view := &revenueView{
			Total:    tool.FormatCents(analysis.TotalCents),
			ByMethod: make(map[string]string, len(analysis.ByMethod)),
		}
		for method, cents := range analysis.ByMethod {
			view.ByMethod[string(method)] = tool.FormatCents(cents)
		}
		for _, m := range analysis.Monthly {
			view.Monthly = append(view.Monthly, monthlyAmount{Month: m.Month, Amount: tool.FormatCents(m.AmountCents)})
		}
		c.JSON(http.StatusOK, response.OKT(view))
	}
}

// @Summary      Growth report
// @Description  New vs expired members in the window with the merged monthly series.
// @Tags         Reports
// @Produce      json
// @Param        start query string true "YYYY-MM-DD"
// @Param        end   query string true "YYYY-MM-DD"
// @Success      200  {object}  response.APIResponse[statistics.GrowthAnalysis]
// @Router       /api/v1/reports/growth [get]
func ApiGrowthReport(svc *statistics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		start, end, ok := parseDateRange(c)
		if !ok {
			return
		}
		analysis, err := svc.GetGrowthAnalysis(c.Request.Context(), start, end)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(analysis))
	}
}

// @Summary      Dashboard
// @Description  Landing-page counters and the day's most recent sessions.
// @Tags         Reports
// @Produce      json
// @Success      200  {object}  response.APIResponse[statistics.Dashboard]
// @Router       /api/v1/dashboard [get]
func ApiDashboard(svc *statistics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := svc.GetDashboard(c.Request.Context(), time.Now())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(d))
	}
}

func RegisterReportRoutes(r gin.IRouter, svc *statistics.Service) {
	r.GET("/reports/attendance", ApiAttendanceReport(svc))
	r.GET("/reports/membership", ApiMembershipReport(svc))
	r.GET("/reports/revenue", ApiRevenueReport(svc))
	r.GET("/reports/growth", ApiGrowthReport(svc))
	r.GET("/dashboard", ApiDashboard(svc))
}
