package models

import (
	"time"

	"github.com/fitpro/gym/pkg/tool"
	"github.com/fitpro/gym/pkg/types"
)

// Member is the root entity of the system. AttendanceSession and Payment
// rows reference it and are removed with it (cascade handled by the member
// service, not the store).
type Member struct {
	ID          string       `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Name        string       `gorm:"column:name;type:varchar(255);not null;index" json:"name"`
	Gender      types.Gender `gorm:"column:gender;type:varchar(16)" json:"gender"`
	DateOfBirth *time.Time   `gorm:"column:dob;type:date;default:null" json:"date_of_birth"`
	Phone       string       `gorm:"column:phone;type:varchar(32);not null" json:"phone"`
	Email       string       `gorm:"column:email;type:varchar(255)" json:"email"`
	Address     string       `gorm:"column:address;type:varchar(512)" json:"address"`
	// MembershipType names a configured membership plan (Basic/Standard/...).
	MembershipType string    `gorm:"column:membership_type;type:varchar(64);not null" json:"membership_type"`
	JoinDate       time.Time `gorm:"column:join_date;type:date;not null" json:"join_date"`
	// ExpiryDate = JoinDate + plan duration at registration; payments ratchet
	// it forward, edits may overwrite it.
	ExpiryDate time.Time `gorm:"column:expiry_date;type:date;not null" json:"expiry_date"`
	// Status is a display cache of Active(today); re-derived at read time but
	// also directly settable through the edit path.
	Status    types.MemberStatus `gorm:"column:status;type:varchar(16);not null" json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func (Member) TableName() string {
	return "member"
}

// Active reports whether the membership is unexpired as of the given day:
// expiry date on or after that day.
func (m *Member) Active(today time.Time) bool {
	return m != nil && !m.ExpiryDate.Before(tool.DateOf(today))
}
