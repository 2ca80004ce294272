package attendance

import (
	"fmt"
	"time"

	"github.com/fitpro/gym/internal/models"
)

// InProgress is the display sentinel for sessions without a check-out yet.
const InProgress = "In Progress"

// FormatDuration renders a session length as "2h 30m". Seconds are truncated.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d / time.Hour)
	m := int(d/time.Minute) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}

// DurationLabel is what the attendance page shows in the duration column.
func DurationLabel(s *models.AttendanceSession) string {
	d, closed := s.Duration()
	if !closed {
		return InProgress
	}
	return FormatDuration(d)
}
