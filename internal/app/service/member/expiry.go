package member

import (
	"time"

	"github.com/fitpro/gym/pkg/tool"
	"github.com/fitpro/gym/pkg/types"
)

// ComputeExpiry derives the expiry date from a join date and plan duration:
// join date plus the plan's calendar months, clamped to month end.
func ComputeExpiry(joinDate time.Time, plan *types.MembershipPlan) time.Time {
	return tool.AddMonths(tool.DateOf(joinDate), plan.DurationMonths)
}

// DeriveStatus is the authoritative status rule: active iff the expiry date
// is on or after today. The stored Status column is a display cache of this.
func DeriveStatus(expiryDate, today time.Time) types.MemberStatus {
	if tool.DateOf(expiryDate).Before(tool.DateOf(today)) {
		return types.MemberStatusExpired
	}
	return types.MemberStatusActive
}

// ratchetExpiry moves an expiry date forward to the paid-through date. The
// ratchet only turns one way: a due date on or before the current expiry
// leaves it untouched.
func ratchetExpiry(current, due time.Time) (time.Time, bool) {
	d := tool.DateOf(due)
	if !d.After(tool.DateOf(current)) {
		return current, false
	}
	return d, true
}

// resolveUpdateStatus picks the status persisted by an edit: an explicit
// value wins; when the edit changed the expiry date the status is re-derived
// from it; otherwise the stored value is kept.
func resolveUpdateStatus(requested, stored types.MemberStatus, expiry time.Time, expiryChanged bool, now time.Time) types.MemberStatus {
	if requested != "" {
		return requested
	}
	if expiryChanged {
		return DeriveStatus(expiry, now)
	}
	return stored
}
