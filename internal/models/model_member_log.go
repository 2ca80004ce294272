package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/fitpro/gym/pkg/types"
)

// MemberLog records changes to member rows.
// Use case: troubleshooting and front-desk dispute resolution.
type MemberLog struct {
	ID       string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	MemberID string `gorm:"column:member_id;type:uuid;index:idx_member_id_id,priority:1;not null"`
	// Reason is the change reason.
	Reason types.MemberChangeReason `gorm:"column:reason;type:varchar(64);not null"`
	// Before stores the member row before the change in JSON format.
	Before datatypes.JSONType[*Member] `gorm:"column:before;type:jsonb;default:'null'"`
	// After stores the member row after the change in JSON format.
	After datatypes.JSONType[*Member] `gorm:"column:after;type:jsonb;default:'null'"`
	// Extra stores additional context such as the triggering payment id.
	Extra     datatypes.JSONMap `gorm:"column:extra;type:jsonb;default:'{}'"`
	CreatedAt time.Time
}

func (MemberLog) TableName() string {
	return "member_log"
}
