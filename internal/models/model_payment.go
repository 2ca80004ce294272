package models

import (
	"time"

	"github.com/fitpro/gym/pkg/types"
)

// Payment is a ledger entry. Rows are immutable once written; a recorded
// payment with a due date past the member's expiry extends the membership.
type Payment struct {
	ID       string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	MemberID string `gorm:"column:member_id;type:uuid;not null;index" json:"member_id"`
	// AmountCents stores the amount in cents to avoid float rounding.
	AmountCents int64     `gorm:"column:amount_cents;type:bigint;not null" json:"amount_cents"`
	PaymentDate time.Time `gorm:"column:payment_date;type:date;not null;index" json:"payment_date"`
	// DueDate is the day the paid period runs to.
	DueDate   time.Time           `gorm:"column:due_date;type:date;not null" json:"due_date"`
	Method    types.PaymentMethod `gorm:"column:method;type:varchar(32);not null" json:"method"`
	Status    types.PaymentStatus `gorm:"column:status;type:varchar(16);not null" json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}

func (Payment) TableName() string {
	return "payment"
}
