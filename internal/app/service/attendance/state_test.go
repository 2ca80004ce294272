package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fitpro/gym/internal/models"
)

func TestCheckInGate(t *testing.T) {
	require.NoError(t, checkInGate(0))
	require.ErrorIs(t, checkInGate(1), ErrAlreadyCheckedIn)
	require.ErrorIs(t, checkInGate(3), ErrAlreadyCheckedIn)
}

func TestCloseGate(t *testing.T) {
	in := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	out := in.Add(time.Hour)

	open := &models.AttendanceSession{CheckedInAt: in}
	require.NoError(t, closeGate(open))

	closed := &models.AttendanceSession{CheckedInAt: in, CheckedOutAt: &out}
	err := closeGate(closed)
	require.ErrorIs(t, err, ErrNotFound)
	require.NotErrorIs(t, err, ErrNoOpenSession)
}

func TestOpenLookupErr(t *testing.T) {
	require.ErrorIs(t, openLookupErr(gorm.ErrRecordNotFound), ErrNoOpenSession)

	err := openLookupErr(errors.New("connection reset"))
	require.NotErrorIs(t, err, ErrNoOpenSession)
	require.ErrorContains(t, err, "connection reset")
}

// A full day of transitions for one member: check in, reject the second
// check-in, close, reject closing again, then a fresh session may open.
func TestSessionStateMachine_OneOpenSessionPerDay(t *testing.T) {
	in := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	session := &models.AttendanceSession{CheckedInAt: in}

	var open int64
	require.NoError(t, checkInGate(open))
	open++

	require.ErrorIs(t, checkInGate(open), ErrAlreadyCheckedIn)

	require.NoError(t, closeGate(session))
	out := in.Add(2 * time.Hour)
	session.CheckedOutAt = &out
	open--

	require.ErrorIs(t, closeGate(session), ErrNotFound)
	require.NoError(t, checkInGate(open))
}
