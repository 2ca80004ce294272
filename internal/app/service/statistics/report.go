package statistics

import (
	"sort"

	"github.com/samber/lo"

	"github.com/fitpro/gym/internal/app/service/attendance"
	"github.com/fitpro/gym/pkg/types"
)

type DailyCount struct {
	Date  string `gorm:"column:date" json:"date"`
	Count int64  `gorm:"column:count" json:"count"`
}

type AttendanceSummary struct {
	TotalVisits        int64        `json:"total_visits"`
	UniqueMembers      int64        `json:"unique_members"`
	AvgVisitsPerMember float64      `json:"avg_visits_per_member"`
	Daily              []DailyCount `json:"daily"`
}

type MembershipTypeCount struct {
	MembershipType string  `gorm:"column:membership_type" json:"membership_type"`
	Count          int64   `gorm:"column:count" json:"count"`
	Percent        float64 `gorm:"-" json:"percent"`
}

type MonthlyAmount struct {
	Month       string `gorm:"column:month" json:"month"`
	AmountCents int64  `gorm:"column:amount_cents" json:"amount_cents"`
}

type RevenueAnalysis struct {
	TotalCents int64                         `json:"total_cents"`
	ByMethod   map[types.PaymentMethod]int64 `json:"by_method"`
	Monthly    []MonthlyAmount               `json:"monthly"`
}

type MonthlyGrowth struct {
	Month   string `json:"month"`
	Joins   int64  `json:"joins"`
	Expires int64  `json:"expires"`
	Net     int64  `json:"net"`
}

type GrowthAnalysis struct {
	NewMembers     int64           `json:"new_members"`
	ExpiredMembers int64           `json:"expired_members"`
	NetGrowth      int64           `json:"net_growth"`
	Monthly        []MonthlyGrowth `json:"monthly"`
}

type Dashboard struct {
	TotalMembers   int64                       `json:"total_members"`
	ActiveMembers  int64                       `json:"active_members"`
	ExpiredMembers int64                       `json:"expired_members"`
	TodayVisits    int64                       `json:"today_visits"`
	RecentSessions []*attendance.SessionRecord `json:"recent_sessions"`
}

// averageVisits is total visits per distinct visitor; 0 when nobody visited.
func averageVisits(total, unique int64) float64 {
	if unique <= 0 {
		return 0
	}
	return float64(total) / float64(unique)
}

// applyPercentages fills the Percent field of each category as its share of
// the overall member count. Every category is returned; any display cap on
// the number of rendered categories belongs to the presentation layer.
func applyPercentages(counts []MembershipTypeCount) []MembershipTypeCount {
	total := lo.SumBy(counts, func(c MembershipTypeCount) int64 { return c.Count })
	for i := range counts {
		if total > 0 {
			counts[i].Percent = float64(counts[i].Count) * 100 / float64(total)
		} else {
			counts[i].Percent = 0
		}
	}
	return counts
}

// mergeGrowthSeries merges per-month join and expiry counts over the sorted
// union of months present in either series; months absent from one series
// count as zero there.
func mergeGrowthSeries(joins, expires []DailyCount) []MonthlyGrowth {
	joinByMonth := lo.SliceToMap(joins, func(c DailyCount) (string, int64) { return c.Date, c.Count })
	expireByMonth := lo.SliceToMap(expires, func(c DailyCount) (string, int64) { return c.Date, c.Count })

	months := lo.Uniq(append(lo.Keys(joinByMonth), lo.Keys(expireByMonth)...))
	sort.Strings(months)

	result := make([]MonthlyGrowth, 0, len(months))
	for _, month := range months {
		j := joinByMonth[month]
		e := expireByMonth[month]
		result = append(result, MonthlyGrowth{Month: month, Joins: j, Expires: e, Net: j - e})
	}
	return result
}
