package payment

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fitpro/gym/internal/app/service/member"
	"github.com/fitpro/gym/internal/models"
	"github.com/fitpro/gym/pkg/logctx"
	"github.com/fitpro/gym/pkg/tool"
	"github.com/fitpro/gym/pkg/types"
)

// Service is the payment ledger. Recording a payment and the resulting
// membership extension commit in one transaction; rows are immutable after
// creation.
type Service struct {
	db      *gorm.DB
	members *member.Service
	log     *zap.SugaredLogger
}

func NewService(db *gorm.DB, members *member.Service, log *zap.SugaredLogger) *Service {
	return &Service{db: db, members: members, log: log}
}

type RecordRequest struct {
	MemberID    string
	AmountCents int64
	PaymentDate time.Time
	// DueDate is the day the paid period runs to; when later than the
	// member's expiry it becomes the new expiry date.
	DueDate time.Time
	Method  types.PaymentMethod
}

type ListFilter struct {
	// Search matches the member name or the payment id.
	Search string
	Status types.PaymentStatus
}

// PaymentRecord is a payment joined with its member's name, as shown on the
// payments page.
type PaymentRecord struct {
	models.Payment
	MemberName string `gorm:"column:member_name" json:"member_name"`
}

// Record validates and persists a payment, extending the member's expiry in
// the same transaction. Either both the payment row and the extension
// commit, or neither does.
func (s *Service) Record(ctx context.Context, req *RecordRequest) (*models.Payment, error) {
	if req.AmountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if !req.Method.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, req.Method)
	}

	p := &models.Payment{
		ID:          tool.GenerateUUIDV7(),
		MemberID:    req.MemberID,
		AmountCents: req.AmountCents,
		PaymentDate: tool.DateOf(req.PaymentDate),
		DueDate:     tool.DateOf(req.DueDate),
		Method:      req.Method,
		Status:      types.PaymentStatusPaid,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}
		return s.members.ExtendExpiryFromPayment(ctx, tx, req.MemberID, req.DueDate, p.ID)
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("payment recorded",
		"payment_id", p.ID, "member_id", p.MemberID,
		"amount", tool.FormatCents(p.AmountCents), "due_date", p.DueDate.Format(time.DateOnly))
	return p, nil
}

// List returns payments with member names, newest payment date first.
func (s *Service) List(ctx context.Context, f *ListFilter) ([]*PaymentRecord, error) {
	q := s.db.WithContext(ctx).
		Table("payment AS p").
		Select("p.*, m.name AS member_name").
		Joins("JOIN member m ON m.id = p.member_id")

	if f != nil && f.Search != "" {
		pattern := "%" + tool.EscapeLike(f.Search) + "%"
		q = q.Where("m.name ILIKE ? OR p.id::text ILIKE ?", pattern, pattern)
	}
	if f != nil && f.Status != "" {
		q = q.Where("p.status = ?", f.Status)
	}

	var records []*PaymentRecord
	if err := q.Order("p.payment_date DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return records, nil
}

// TotalRevenue sums paid amounts with payment dates inside the inclusive
// window. Returns 0 when no payments match.
func (s *Service) TotalRevenue(ctx context.Context, start, end time.Time) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&models.Payment{}).
		Select("COALESCE(SUM(amount_cents), 0)").
		Where("status = ? AND payment_date BETWEEN ? AND ?", types.PaymentStatusPaid, tool.DateOf(start), tool.DateOf(end)).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return total, nil
}

// RevenueByMethod groups paid amounts in the window by payment method.
func (s *Service) RevenueByMethod(ctx context.Context, start, end time.Time) (map[types.PaymentMethod]int64, error) {
	var rows []struct {
		Method types.PaymentMethod `gorm:"column:method"`
		Total  int64               `gorm:"column:total"`
	}
	err := s.db.WithContext(ctx).Model(&models.Payment{}).
		Select("method, SUM(amount_cents) AS total").
		Where("status = ? AND payment_date BETWEEN ? AND ?", types.PaymentStatusPaid, tool.DateOf(start), tool.DateOf(end)).
		Group("method").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group revenue: %w", err)
	}

	result := make(map[types.PaymentMethod]int64, len(rows))
	for _, r := range rows {
		result[r.Method] = r.Total
	}
	return result, nil
}

// filtersAnd combines multiple CommonFilter into a single clause.Expression.
type filtersAnd struct{ filters []*types.CommonFilter }

func (w filtersAnd) Build(builder clause.Builder) {
	if len(w.filters) == 0 {
		builder.WriteString("1=1")
		return
	}
	exprs := make([]clause.Expression, 0, len(w.filters))
	for _, f := range w.filters {
		exprs = append(exprs, f)
	}
	clause.And(exprs...).Build(builder)
}

type ScanPaymentsRequest struct {
	Filters   []*types.CommonFilter `json:"filters"`
	From      int                   `json:"from"`
	Size      int                   `json:"size"`
	SortBy    string                `json:"sort_by"`
	SortOrder string                `json:"sort_order"`
}

type ScanPaymentsResponse struct {
	Items []*models.Payment `json:"items"`
	Total int64             `json:"total"`
}

// Scan implements paginated admin listing with filters.
func (s *Service) Scan(ctx context.Context, req *ScanPaymentsRequest) (*ScanPaymentsResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}
	if req.Size <= 0 {
		req.Size = 10
	}
	if req.From < 0 {
		req.From = 0
	}

	tx := s.db.WithContext(ctx).Model(&models.Payment{})
	if len(req.Filters) > 0 {
		tx = tx.Where(clause.Where{Exprs: []clause.Expression{filtersAnd{filters: req.Filters}}})
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count payments: %w", err)
	}

	q := tx.Limit(req.Size)
	if req.From > 0 {
		q = q.Offset(req.From)
	}
	if req.SortBy != "" {
		q = q.Order(clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: req.SortBy}, Desc: req.SortOrder != "asc"}}})
	}

	var rows []*models.Payment
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return &ScanPaymentsResponse{Items: rows, Total: total}, nil
}
