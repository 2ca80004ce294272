package attendance

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fitpro/gym/internal/models"
)

// The per-(member, day) state machine is NoSession -> Open -> Closed. These
// gates hold the transition rules; the service wraps them in transactions.

// checkInGate rejects opening a session while another one is still open for
// the same member and day.
func checkInGate(openCount int64) error {
	if openCount > 0 {
		return ErrAlreadyCheckedIn
	}
	return nil
}

// closeGate rejects closing a session that is not open anymore.
func closeGate(s *models.AttendanceSession) error {
	if !s.Open() {
		return fmt.Errorf("%w: session already closed", ErrNotFound)
	}
	return nil
}

// openLookupErr maps a failed open-session lookup onto ErrNoOpenSession.
func openLookupErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoOpenSession
	}
	return fmt.Errorf("failed to find open session: %w", err)
}
