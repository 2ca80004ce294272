package member

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fitpro/gym/internal/models"
	"github.com/fitpro/gym/pkg/config"
	"github.com/fitpro/gym/pkg/logctx"
	"github.com/fitpro/gym/pkg/tool"
	"github.com/fitpro/gym/pkg/types"
)

// Service owns member rows: registration, edits, status derivation,
// payment-driven expiry extension and cascade deletion.
type Service struct {
	db  *gorm.DB
	cfg *config.Config
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, cfg *config.Config, log *zap.SugaredLogger) *Service {
	return &Service{db: db, cfg: cfg, log: log}
}

type RegisterRequest struct {
	Name           string
	Gender         types.Gender
	DateOfBirth    *time.Time
	Phone          string
	Email          string
	Address        string
	MembershipType string
	JoinDate       time.Time
}

type UpdateRequest struct {
	Name           string
	Gender         types.Gender
	DateOfBirth    *time.Time
	Phone          string
	Email          string
	Address        string
	MembershipType string
	JoinDate       time.Time
	// ExpiryDate optionally overrides the stored expiry. Ignored when the
	// membership type or join date changed, in which case expiry is
	// recomputed from the plan (edit-wins over any payment extension).
	ExpiryDate *time.Time
	// Status optionally overrides the stored status. When omitted, an edit
	// that changed the expiry re-derives it and any other edit keeps the
	// stored value.
	Status types.MemberStatus
}

type ListFilter struct {
	Search string
	Status types.MemberStatus
}

// Register validates the request, computes expiry from the membership plan
// and persists the member together with its change-log entry.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*models.Member, error) {
	if err := validateRequired(req.Name, req.Phone); err != nil {
		return nil, err
	}
	plan := s.cfg.GetMembershipPlan(req.MembershipType)
	if plan == nil {
		return nil, invalidField("membership_type", fmt.Sprintf("unknown plan %q", req.MembershipType))
	}

	now := time.Now()
	expiry := ComputeExpiry(req.JoinDate, plan)
	m := &models.Member{
		ID:             tool.GenerateUUIDV7(),
		Name:           req.Name,
		Gender:         req.Gender,
		DateOfBirth:    req.DateOfBirth,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		MembershipType: req.MembershipType,
		JoinDate:       tool.DateOf(req.JoinDate),
		ExpiryDate:     expiry,
		Status:         DeriveStatus(expiry, now),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return fmt.Errorf("failed to create member: %w", err)
		}
		return s.writeLog(ctx, tx, m.ID, types.MemberChangeReasonRegistered, nil, m, nil)
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("member registered",
		"member_id", m.ID, "membership_type", m.MembershipType, "expiry_date", m.ExpiryDate.Format(time.DateOnly))
	return m, nil
}

// Update edits a member. Changing the membership type or join date recomputes
// the expiry date from the plan, overwriting any prior payment extension.
func (s *Service) Update(ctx context.Context, id string, req *UpdateRequest) (*models.Member, error) {
	if err := validateRequired(req.Name, req.Phone); err != nil {
		return nil, err
	}
	plan := s.cfg.GetMembershipPlan(req.MembershipType)
	if plan == nil {
		return nil, invalidField("membership_type", fmt.Sprintf("unknown plan %q", req.MembershipType))
	}
	if req.Status != "" && !req.Status.Valid() {
		return nil, invalidField("status", fmt.Sprintf("unknown status %q", req.Status))
	}

	var updated *models.Member
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := getByID(ctx, tx, id)
		if err != nil {
			return err
		}
		before := *m

		planChanged := req.MembershipType != m.MembershipType || !tool.SameDate(req.JoinDate, m.JoinDate)

		m.Name = req.Name
		m.Gender = req.Gender
		m.DateOfBirth = req.DateOfBirth
		m.Phone = req.Phone
		m.Email = req.Email
		m.Address = req.Address
		m.MembershipType = req.MembershipType
		m.JoinDate = tool.DateOf(req.JoinDate)

		expiryChanged := planChanged
		if planChanged {
			m.ExpiryDate = ComputeExpiry(m.JoinDate, plan)
		} else if req.ExpiryDate != nil {
			// Manual expiry edit, allowed to move in either direction.
			m.ExpiryDate = tool.DateOf(*req.ExpiryDate)
			expiryChanged = !m.ExpiryDate.Equal(before.ExpiryDate)
		}
		m.Status = resolveUpdateStatus(req.Status, before.Status, m.ExpiryDate, expiryChanged, time.Now())

		if err := tx.Save(m).Error; err != nil {
			return fmt.Errorf("failed to update member: %w", err)
		}
		if err := s.writeLog(ctx, tx, m.ID, types.MemberChangeReasonUpdated, &before, m, nil); err != nil {
			return err
		}
		updated = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Get loads a single member, re-deriving the cached status for display.
func (s *Service) Get(ctx context.Context, id string) (*models.Member, error) {
	m, err := getByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	m.Status = DeriveStatus(m.ExpiryDate, time.Now())
	return m, nil
}

// List returns members matching the filter, ordered by name. Search matches
// name or phone as a case-insensitive substring.
func (s *Service) List(ctx context.Context, f *ListFilter) ([]*models.Member, error) {
	q := s.db.WithContext(ctx).Model(&models.Member{})
	if f != nil && f.Search != "" {
		pattern := "%" + tool.EscapeLike(f.Search) + "%"
		q = q.Where("name ILIKE ? OR phone ILIKE ?", pattern, pattern)
	}
	if f != nil && f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var members []*models.Member
	if err := q.Order("name asc").Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// Delete removes a member and cascades to all of their attendance sessions
// and payments in one transaction. The change log survives deletion.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := getByID(ctx, tx, id)
		if err != nil {
			return err
		}
		for _, record := range memberCascade() {
			if err := tx.Where("member_id = ?", id).Delete(record).Error; err != nil {
				return fmt.Errorf("failed to delete member records: %w", err)
			}
		}
		if err := s.writeLog(ctx, tx, id, types.MemberChangeReasonDeleted, m, nil, nil); err != nil {
			return err
		}
		if err := tx.Delete(&models.Member{ID: id}).Error; err != nil {
			return fmt.Errorf("failed to delete member: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	logctx.FromCtx(ctx, s.log).Infow("member deleted", "member_id", id)
	return nil
}

// ExtendExpiryFromPayment raises the member's expiry date to dueDate when
// dueDate is later; earlier or equal due dates leave it untouched. Runs on
// the caller's transaction so the payment row and the extension commit
// together.
func (s *Service) ExtendExpiryFromPayment(ctx context.Context, tx *gorm.DB, memberID string, dueDate time.Time, paymentID string) error {
	m, err := getByID(ctx, tx, memberID)
	if err != nil {
		return err
	}
	extended, changed := ratchetExpiry(m.ExpiryDate, dueDate)
	if !changed {
		return nil
	}

	before := *m
	m.ExpiryDate = extended
	m.Status = DeriveStatus(extended, time.Now())
	if err := tx.Save(m).Error; err != nil {
		return fmt.Errorf("failed to extend expiry: %w", err)
	}
	extra := datatypes.JSONMap{"payment_id": paymentID}
	return s.writeLog(ctx, tx, memberID, types.MemberChangeReasonPaymentExtension, &before, m, extra)
}

// RefreshStatuses re-derives the cached status column for every member whose
// expiry has passed (or been extended) since the last evaluation. Invoked at
// startup and available to the API for the daily rollover.
func (s *Service) RefreshStatuses(ctx context.Context, today time.Time) (int64, error) {
	day := tool.DateOf(today)
	var changed int64

	res := s.db.WithContext(ctx).Model(&models.Member{}).
		Where("expiry_date < ? AND status <> ?", day, types.MemberStatusExpired).
		Update("status", types.MemberStatusExpired)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to expire members: %w", res.Error)
	}
	changed += res.RowsAffected

	res = s.db.WithContext(ctx).Model(&models.Member{}).
		Where("expiry_date >= ? AND status <> ?", day, types.MemberStatusActive).
		Update("status", types.MemberStatusActive)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to activate members: %w", res.Error)
	}
	changed += res.RowsAffected

	if changed > 0 {
		logctx.FromCtx(ctx, s.log).Infow("member statuses refreshed", "changed", changed)
	}
	return changed, nil
}

func (s *Service) writeLog(ctx context.Context, tx *gorm.DB, memberID string, reason types.MemberChangeReason, before, after *models.Member, extra datatypes.JSONMap) error {
	if extra == nil {
		extra = datatypes.JSONMap{}
	}
	entry := &models.MemberLog{
		ID:       tool.GenerateUUIDV7(),
		MemberID: memberID,
		Reason:   reason,
		Before:   datatypes.NewJSONType(before),
		After:    datatypes.NewJSONType(after),
		Extra:    extra,
	}
	if err := tx.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to write member log: %w", err)
	}
	return nil
}

// memberCascade lists the per-member child records removed before the member
// row itself; the change log is not member-scoped and survives.
func memberCascade() []any {
	return []any{&models.AttendanceSession{}, &models.Payment{}}
}

func getByID(ctx context.Context, tx *gorm.DB, id string) (*models.Member, error) {
	var m models.Member
	if err := tx.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load member: %w", err)
	}
	return &m, nil
}

func validateRequired(name, phone string) error {
	if strings.TrimSpace(name) == "" {
		return invalidField("name", "required")
	}
	if strings.TrimSpace(phone) == "" {
		return invalidField("phone", "required")
	}
	return nil
}
