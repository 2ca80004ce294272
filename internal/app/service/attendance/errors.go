package attendance

import "errors"

var (
	// ErrAlreadyCheckedIn means the member has an open session for that day
	// and must check out before checking in again.
	ErrAlreadyCheckedIn = errors.New("member is already checked in")
	// ErrNoOpenSession means a check-out was requested with no open session
	// for that member and day.
	ErrNoOpenSession = errors.New("no open session for member")
	// ErrNotFound is returned for unknown session ids, and for sessions that
	// are already closed (closing twice is rejected, not idempotent).
	ErrNotFound = errors.New("attendance session not found")
)
