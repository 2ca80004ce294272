package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fitpro/gym/internal/models"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{2*time.Hour + 30*time.Minute, "2h 30m"},
		{45 * time.Minute, "0h 45m"},
		{26 * time.Hour, "26h 0m"},
		{90 * time.Second, "0h 1m"},
		{0, "0h 0m"},
		{-time.Minute, "0h 0m"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FormatDuration(tc.d))
	}
}

func TestDurationLabel(t *testing.T) {
	in := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	out := in.Add(2*time.Hour + 30*time.Minute)

	open := &models.AttendanceSession{CheckedInAt: in}
	require.Equal(t, InProgress, DurationLabel(open))

	closed := &models.AttendanceSession{CheckedInAt: in, CheckedOutAt: &out}
	require.Equal(t, "2h 30m", DurationLabel(closed))
}
