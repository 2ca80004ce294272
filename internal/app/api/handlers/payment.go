package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitpro/gym/internal/app/service/payment"
	"github.com/fitpro/gym/internal/models"
	"github.com/fitpro/gym/pkg/response"
	"github.com/fitpro/gym/pkg/tool"
	"github.com/fitpro/gym/pkg/types"
)

type recordPaymentRequest struct {
	MemberID string `json:"member_id"`
	// Amount is a decimal string with up to two places, e.g. "50.00".
	Amount      string `json:"amount"`
	PaymentDate string `json:"payment_date,omitempty"`
	DueDate     string `json:"due_date"`
	Method      string `json:"method"`
}

type paymentView struct {
	ID          string `json:"id"`
	MemberID    string `json:"member_id"`
	MemberName  string `json:"member_name,omitempty"`
	Amount      string `json:"amount"`
	PaymentDate string `json:"payment_date"`
	DueDate     string `json:"due_date"`
	Method      string `json:"method"`
	Status      string `json:"status"`
}

func toPaymentView(p *models.Payment, memberName string) *paymentView {
	return &paymentView{
		ID:          p.ID,
		MemberID:    p.MemberID,
		MemberName:  memberName,
		Amount:      tool.FormatCents(p.AmountCents),
		PaymentDate: p.PaymentDate.Format(time.DateOnly),
		DueDate:     p.DueDate.Format(time.DateOnly),
		Method:      string(p.Method),
		Status:      string(p.Status),
	}
}

// @Summary      Record payment
// @Description  Records a paid payment and extends the member's expiry when the due date is later.
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        request body handlers.recordPaymentRequest true "Payment fields"
// @Success      200  {object}  response.APIResponse[paymentView]
// @Router       /api/v1/payments [post]
func ApiRecordPayment(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req recordPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		cents, err := tool.ParseAmountCents(req.Amount)
		if err != nil {
			badRequest(c, "amount must be a decimal value like 50.00")
			return
		}
		paymentDate := time.Now()
		if req.PaymentDate != "" {
			if paymentDate, err = parseDate(req.PaymentDate); err != nil {
				badRequest(c, "payment_date must be YYYY-MM-DD")
				return
			}
		}
		dueDate, err := parseDate(req.DueDate)
		if err != nil {
			badRequest(c, "due_date must be YYYY-MM-DD")
			return
		}

		p, err := svc.Record(c.Request.Context(), &payment.RecordRequest{
			MemberID:    req.MemberID,
			AmountCents: cents,
			PaymentDate: paymentDate,
			DueDate:     dueDate,
			Method:      types.PaymentMethod(req.Method),
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(toPaymentView(p, "")))
	}
}

// @Summary      List payments
// @Description  Filters by member name / payment id substring and status; newest payment date first.
// @Tags         Payments
// @Produce      json
// @Param        search query string false "Member name or payment id substring"
// @Param        status query string false "Paid or Pending"
// @Success      200  {object}  response.APIResponse[[]paymentView]
// @Router       /api/v1/payments [get]
func ApiListPayments(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := svc.List(c.Request.Context(), &payment.ListFilter{
			Search: c.Query("search"),
			Status: types.PaymentStatus(c.Query("status")),
		})
		if err != nil {
			respondError(c, err)
			return
		}
		views := make([]*paymentView, 0, len(records))
		for _, r := range records {
			views = append(views, toPaymentView(&r.Payment, r.MemberName))
		}
		c.JSON(http.StatusOK, response.OKT(views))
	}
}

// @Summary      Scan payments
// @Description  Paginated admin listing with generic field filters.
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        request body payment.ScanPaymentsRequest true "Scan request"
// @Success      200  {object}  response.APIResponse[payment.ScanPaymentsResponse]
// @Router       /api/v1/payments/scan [post]
func ApiScanPayments(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req payment.ScanPaymentsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		res, err := svc.Scan(c.Request.Context(), &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

func RegisterPaymentRoutes(r gin.IRouter, svc *payment.Service) {
	r.POST("/payments", ApiRecordPayment(svc))
	r.GET("/payments", ApiListPayments(svc))
	r.POST("/payments/scan", ApiScanPayments(svc))
}
