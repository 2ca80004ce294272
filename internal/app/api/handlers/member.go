package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitpro/gym/internal/app/service/member"
	"github.com/fitpro/gym/internal/models"
	"github.com/fitpro/gym/pkg/response"
	"github.com/fitpro/gym/pkg/types"
)

type memberPayload struct {
	Name           string `json:"name"`
	Gender         string `json:"gender"`
	DateOfBirth    string `json:"date_of_birth"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	MembershipType string `json:"membership_type"`
	JoinDate       string `json:"join_date"`
	// ExpiryDate and Status are honored on updates only; registration
	// derives both.
	ExpiryDate string `json:"expiry_date,omitempty"`
	Status     string `json:"status,omitempty"`
}

type memberView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Gender         string `json:"gender"`
	DateOfBirth    string `json:"date_of_birth,omitempty"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	MembershipType string `json:"membership_type"`
	JoinDate       string `json:"join_date"`
	ExpiryDate     string `json:"expiry_date"`
	Status         string `json:"status"`
}

func toMemberView(m *models.Member) *memberView {
	v := &memberView{
		ID:             m.ID,
		Name:           m.Name,
		Gender:         string(m.Gender),
		Phone:          m.Phone,
		Email:          m.Email,
		Address:        m.Address,
		MembershipType: m.MembershipType,
		JoinDate:       m.JoinDate.Format(time.DateOnly),
		ExpiryDate:     m.ExpiryDate.Format(time.DateOnly),
		Status:         string(m.Status),
	}
	if m.DateOfBirth != nil {
		v.DateOfBirth = m.DateOfBirth.Format(time.DateOnly)
	}
	return v
}

func (p *memberPayload) dates(c *gin.Context) (join time.Time, dob *time.Time, ok bool) {
	join = time.Now()
	if p.JoinDate != "" {
		var err error
		if join, err = parseDate(p.JoinDate); err != nil {
			badRequest(c, "join_date must be YYYY-MM-DD")
			return
		}
	}
	if p.DateOfBirth != "" {
		d, err := parseDate(p.DateOfBirth)
		if err != nil {
			badRequest(c, "date_of_birth must be YYYY-MM-DD")
			return
		}
		dob = &d
	}
	ok = true
	return
}

// @Summary      Register member
// @Description  Registers a new member; expiry is derived from the membership plan and the join date.
// @Tags         Members
// @Accept       json
// @Produce      json
// @Param        request body handlers.memberPayload true "Member fields"
// @Success      200  {object}  response.APIResponse[memberView]
// @Router       /api/v1/members [post]
func ApiRegisterMember(svc *member.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req memberPayload
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		join, dob, ok := req.dates(c)
		if !ok {
			return
		}

		m, err := svc.Register(c.Request.Context(), &member.RegisterRequest{
			Name:           req.Name,
			Gender:         types.Gender(req.Gender),
			DateOfBirth:    dob,
			Phone:          req.Phone,
			Email:          req.Email,
			Address:        req.Address,
			MembershipType: req.MembershipType,
			JoinDate:       join,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(toMemberView(m)))
	}
}

// @Summary      Update member
// @Description  Edits a member. Changing the plan or join date recomputes expiry; an omitted status keeps the stored one.
// @Tags         Members
// @Accept       json
// @Produce      json
// @Param        id      path  string                  true "Member ID"
// @Param        request body  handlers.memberPayload  true "Member fields"
// @Success      200  {object}  response.APIResponse[memberView]
// @Router       /api/v1/members/{id} [put]
func ApiUpdateMember(svc *member.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req memberPayload
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		join, dob, ok := req.dates(c)
		if !ok {
			return
		}
		var expiry *time.Time
		if req.ExpiryDate != "" {
			d, err := parseDate(req.ExpiryDate)
			if err != nil {
				badRequest(c, "expiry_date must be YYYY-MM-DD")
				return
			}
			expiry = &d
		}

		m, err := svc.Update(c.Request.Context(), c.Param("id"), &member.UpdateRequest{
			Name:           req.Name,
			Gender:         types.Gender(req.Gender),
			DateOfBirth:    dob,
			Phone:          req.Phone,
			Email:          req.Email,
			Address:        req.Address,
			MembershipType: req.MembershipType,
			JoinDate:       join,
			ExpiryDate:     expiry,
			Status:         types.MemberStatus(req.Status),
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(toMemberView(m)))
	}
}

// @Summary      Get member
// @Tags         Members
// @Produce      json
// @Param        id path string true "Member ID"
// @Success      200  {object}  response.APIResponse[memberView]
// @Router       /api/v1/members/{id} [get]
func ApiGetMember(svc *member.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(toMemberView(m)))
	}
}

// @Summary      List members
// @Description  Filters by name/phone substring and status; ordered by name.
// @Tags         Members
// @Produce      json
// @Param        search query string false "Name or phone substring"
// @Param        status query string false "Active or Expired"
// @Success      200  {object}  response.APIResponse[[]memberView]
// @Router       /api/v1/members [get]
func ApiListMembers(svc *member.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		members, err := svc.List(c.Request.Context(), &member.ListFilter{
			Search: c.Query("search"),
			Status: types.MemberStatus(c.Query("status")),
		})
		if err != nil {
			respondError(c, err)
			return
		}
		views := make([]*memberView, 0, len(members))
		for _, m := range members {
			views = append(views, toMemberView(m))
		}
		c.JSON(http.StatusOK, response.OKT(views))
	}
}

// @Summary      Delete member
// @Description  Removes a member and all of their attendance and payment records.
// @Tags         Members
// @Produce      json
// @Param        id path string true "Member ID"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/members/{id} [delete]
func ApiDeleteMember(svc *member.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      Refresh member statuses
// @Description  Re-derives the cached status column after the calendar day advances.
// @Tags         Members
// @Produce      json
// @Success      200  {object}  response.APIResponse[map[string]int64]
// @Router       /api/v1/members/refresh-statuses [post]
func ApiRefreshStatuses(svc *member.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		changed, err := svc.RefreshStatuses(c.Request.Context(), time.Now())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(map[string]int64{"changed": changed}))
	}
}

func RegisterMemberRoutes(r gin.IRouter, svc *member.Service) {
	r.POST("/members", ApiRegisterMember(svc))
	r.GET("/members", ApiListMembers(svc))
	r.POST("/members/refresh-statuses", ApiRefreshStatuses(svc))
	r.GET("/members/:id", ApiGetMember(svc))
	r.PUT("/members/:id", ApiUpdateMember(svc))
	r.DELETE("/members/:id", ApiDeleteMember(svc))
}
