package models

import (
	"time"
)

// AttendanceSession is one check-in/check-out visit. A session with a nil
// CheckedOutAt is open; at most one open session may exist per member per
// day. Sessions are assumed to close the same day they open.
type AttendanceSession struct {
	ID       string    `gorm:"column:id;type:uuid;primary_key" json:"id"`
	MemberID string    `gorm:"column:member_id;type:uuid;not null;index:idx_member_date,priority:1" json:"member_id"`
	Date     time.Time `gorm:"column:date;type:date;not null;index:idx_member_date,priority:2" json:"date"`
	// CheckedInAt carries the wall-clock check-in time.
	CheckedInAt time.Time `gorm:"column:checked_in_at;not null" json:"checked_in_at"`
	// CheckedOutAt is set exactly once, at check-out.
	CheckedOutAt *time.Time `gorm:"column:checked_out_at;default:null" json:"checked_out_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (AttendanceSession) TableName() string {
	return "attendance_session"
}

// Open reports whether the session is still in progress.
func (s *AttendanceSession) Open() bool {
	return s != nil && s.CheckedOutAt == nil
}

// Duration returns the session length when closed. The second return is
// false while the session is open.
func (s *AttendanceSession) Duration() (time.Duration, bool) {
	if s == nil || s.CheckedOutAt == nil {
		return 0, false
	}
	return s.CheckedOutAt.Sub(s.CheckedInAt), true
}
