package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fitpro/gym/internal/app/service/member"
	"github.com/fitpro/gym/internal/models"
	"github.com/fitpro/gym/pkg/logctx"
	"github.com/fitpro/gym/pkg/tool"
)

// Service tracks check-in/check-out sessions. Per (member, day) the session
// state machine is NoSession -> Open -> Closed; any number of closed
// sessions may accumulate per day but only one may be open at a time.
type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

// SessionRecord is a session joined with its member's name, as shown on the
// attendance page.
type SessionRecord struct {
	models.AttendanceSession
	MemberName string `gorm:"column:member_name" json:"member_name"`
}

// CheckIn opens a new session. Fails with ErrAlreadyCheckedIn while an open
// session exists for the member on that day.
func (s *Service) CheckIn(ctx context.Context, memberID string, day, at time.Time) (*models.AttendanceSession, error) {
	session := &models.AttendanceSession{
		ID:          tool.GenerateUUIDV7(),
		MemberID:    memberID,
		Date:        tool.DateOf(day),
		CheckedInAt: at,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := memberExists(ctx, tx, memberID); err != nil {
			return err
		}
		var open int64
		if err := tx.Model(&models.AttendanceSession{}).
			Where("member_id = ? AND date = ? AND checked_out_at IS NULL", memberID, session.Date).
			Count(&open).Error; err != nil {
			return fmt.Errorf("failed to check open sessions: %w", err)
		}
		if err := checkInGate(open); err != nil {
			return err
		}
		if err := tx.Create(session).Error; err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("member checked in",
		"member_id", memberID, "session_id", session.ID, "date", session.Date.Format(time.DateOnly))
	return session, nil
}

// CheckOut closes the member's most recent open session for the day,
// selected by check-in time descending with session id as tie-break. Fails
// with ErrNoOpenSession when none is open.
func (s *Service) CheckOut(ctx context.Context, memberID string, day, at time.Time) (*models.AttendanceSession, error) {
	var session models.AttendanceSession
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("member_id = ? AND date = ? AND checked_out_at IS NULL", memberID, tool.DateOf(day)).
			Order("checked_in_at DESC").Order("id DESC").
			First(&session).Error
		if err != nil {
			return openLookupErr(err)
		}
		return closeSession(tx, &session, at)
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("member checked out",
		"member_id", memberID, "session_id", session.ID, "duration", DurationLabel(&session))
	return &session, nil
}

// CheckOutByID closes a specific session. An unknown id and an already
// closed session both fail with ErrNotFound.
func (s *Service) CheckOutByID(ctx context.Context, sessionID string, at time.Time) (*models.AttendanceSession, error) {
	var session models.AttendanceSession
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", sessionID).First(&session).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load session: %w", err)
		}
		if err := closeGate(&session); err != nil {
			return err
		}
		return closeSession(tx, &session, at)
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ListForDate returns the day's sessions with member names, newest check-in
// first.
func (s *Service) ListForDate(ctx context.Context, day time.Time) ([]*SessionRecord, error) {
	var records []*SessionRecord
	err := s.db.WithContext(ctx).
		Table("attendance_session AS a").
		Select("a.*, m.name AS member_name").
		Joins("JOIN member m ON m.id = a.member_id").
		Where("a.date = ?", tool.DateOf(day)).
		Order("a.checked_in_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return records, nil
}

// ListForMember returns a member's visit history, newest check-in first.
func (s *Service) ListForMember(ctx context.Context, memberID string) ([]*models.AttendanceSession, error) {
	var sessions []*models.AttendanceSession
	err := s.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("checked_in_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list member sessions: %w", err)
	}
	return sessions, nil
}

func closeSession(tx *gorm.DB, session *models.AttendanceSession, at time.Time) error {
	session.CheckedOutAt = &at
	if err := tx.Model(session).Update("checked_out_at", at).Error; err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	return nil
}

func memberExists(ctx context.Context, tx *gorm.DB, memberID string) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&models.Member{}).Where("id = ?", memberID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to look up member: %w", err)
	}
	if count == 0 {
		return member.ErrNotFound
	}
	return nil
}
