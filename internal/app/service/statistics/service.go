package statistics

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/fitpro/gym/internal/app/service/attendance"
	"github.com/fitpro/gym/internal/app/service/payment"
	"github.com/fitpro/gym/internal/models"
	"github.com/fitpro/gym/pkg/tool"
	"github.com/fitpro/gym/pkg/types"
)

// Service is the read-only reporting engine. Every report is recomputed from
// the store per call over an inclusive [start, end] date window; nothing here
// mutates state.
type Service struct {
	db       *gorm.DB
	payments *payment.Service
	sessions *attendance.Service
}

func NewService(db *gorm.DB, payments *payment.Service, sessions *attendance.Service) *Service {
	return &Service{db: db, payments: payments, sessions: sessions}
}

// GetAttendanceSummary reports visit totals and the daily breakdown.
func (s *Service) GetAttendanceSummary(ctx context.Context, start, end time.Time) (*AttendanceSummary, error) {
	startDay, endDay := tool.DateOf(start), tool.DateOf(end)

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.AttendanceSession{}).
		Where("date BETWEEN ? AND ?", startDay, endDay).
		Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count visits: %w", err)
	}

	var unique int64
	if err := s.db.WithContext(ctx).Model(&models.AttendanceSession{}).
		Where("date BETWEEN ? AND ?", startDay, endDay).
		Distinct("member_id").
		Count(&unique).Error; err != nil {
		return nil, fmt.Errorf("failed to count unique visitors: %w", err)
	}

	var daily []DailyCount
	err := s.db.WithContext(ctx).Model(&models.AttendanceSession{}).
		Select("TO_CHAR(date, 'YYYY-MM-DD') AS date, COUNT(*) AS count").
		Where("date BETWEEN ? AND ?", startDay, endDay).
		Group("TO_CHAR(date, 'YYYY-MM-DD')").
		Order("date").
		Find(&daily).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build daily breakdown: %w", err)
	}

	return &AttendanceSummary{
		TotalVisits:        total,
		UniqueMembers:      unique,
		AvgVisitsPerMember: averageVisits(total, unique),
		Daily:              daily,
	}, nil
}

// GetMembershipDistribution reports member counts and percentage share per
// membership type.
func (s *Service) GetMembershipDistribution(ctx context.Context) ([]MembershipTypeCount, error) {
	var counts []MembershipTypeCount
	err := s.db.WithContext(ctx).Model(&models.Member{}).
		Select("membership_type, COUNT(*) AS count").
		Group("membership_type").
		Order("count DESC").
		Find(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group membership types: %w", err)
	}
	return applyPercentages(counts), nil
}

// GetRevenueAnalysis reports total revenue, the split by payment method and
// the monthly trend in chronological order.
func (s *Service) GetRevenueAnalysis(ctx context.Context, start, end time.Time) (*RevenueAnalysis, error) {
	total, err := s.payments.TotalRevenue(ctx, start, end)
	if err != nil {
		return nil, err
	}
	byMethod, err := s.payments.RevenueByMethod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	var monthly []MonthlyAmount
	err = s.db.WithContext(ctx).Model(&models.Payment{}).
		Select("TO_CHAR(payment_date, 'YYYY-MM') AS month, SUM(amount_cents) AS amount_cents").
		Where("status = ? AND payment_date BETWEEN ? AND ?", types.PaymentStatusPaid, tool.DateOf(start), tool.DateOf(end)).
		Group("TO_CHAR(payment_date, 'YYYY-MM')").
		Order("month").
		Find(&monthly).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build monthly revenue: %w", err)
	}

	return &RevenueAnalysis{TotalCents: total, ByMethod: byMethod, Monthly: monthly}, nil
}

// GetGrowthAnalysis reports new members joining in the window against
// memberships expiring in it, with the monthly series merged over the union
// of months present in either.
func (s *Service) GetGrowthAnalysis(ctx context.Context, start, end time.Time) (*GrowthAnalysis, error) {
	startDay, endDay := tool.DateOf(start), tool.DateOf(end)

	var newMembers int64
	if err := s.db.WithContext(ctx).Model(&models.Member{}).
		Where("join_date BETWEEN ? AND ?", startDay, endDay).
		Count(&newMembers).Error; err != nil {
		return nil, fmt.Errorf("failed to count new members: %w", err)
	}

	var expired int64
	if err := s.db.WithContext(ctx).Model(&models.Member{}).
		Where("status = ? AND expiry_date BETWEEN ? AND ?", types.MemberStatusExpired, startDay, endDay).
		Count(&expired).Error; err != nil {
		return nil, fmt.Errorf("failed to count expired members: %w", err)
	}

	var joins []DailyCount
	err := s.db.WithContext(ctx).Model(&models.Member{}).
		Select("TO_CHAR(join_date, 'YYYY-MM') AS date, COUNT(*) AS count").
		Where("join_date BETWEEN ? AND ?", startDay, endDay).
		Group("TO_CHAR(join_date, 'YYYY-MM')").
		Find(&joins).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build monthly joins: %w", err)
	}

	var expires []DailyCount
	err = s.db.WithContext(ctx).Model(&models.Member{}).
		Select("TO_CHAR(expiry_date, 'YYYY-MM') AS date, COUNT(*) AS count").
		Where("status = ? AND expiry_date BETWEEN ? AND ?", types.MemberStatusExpired, startDay, endDay).
		Group("TO_CHAR(expiry_date, 'YYYY-MM')").
		Find(&expires).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build monthly expiries: %w", err)
	}

	return &GrowthAnalysis{
		NewMembers:     newMembers,
		ExpiredMembers: expired,
		NetGrowth:      newMembers - expired,
		Monthly:        mergeGrowthSeries(joins, expires),
	}, nil
}

const recentSessionLimit = 5

// GetDashboard reports the landing-page counters and the day's most recent
// sessions.
func (s *Service) GetDashboard(ctx context.Context, now time.Time) (*Dashboard, error) {
	d := &Dashboard{}

	if err := s.db.WithContext(ctx).Model(&models.Member{}).Count(&d.TotalMembers).Error; err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&models.Member{}).
		Where("status = ?", types.MemberStatusActive).
		Count(&d.ActiveMembers).Error; err != nil {
		return nil, fmt.Errorf("failed to count active members: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&models.Member{}).
		Where("status = ?", types.MemberStatusExpired).
		Count(&d.ExpiredMembers).Error; err != nil {
		return nil, fmt.Errorf("failed to count expired members: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&models.AttendanceSession{}).
		Where("date = ?", tool.DateOf(now)).
		Count(&d.TodayVisits).Error; err != nil {
		return nil, fmt.Errorf("failed to count today's visits: %w", err)
	}

	sessions, err := s.sessions.ListForDate(ctx, now)
	if err != nil {
		return nil, err
	}
	if len(sessions) > recentSessionLimit {
		sessions = sessions[:recentSessionLimit]
	}
	d.RecentSessions = sessions
	return d, nil
}
