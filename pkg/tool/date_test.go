package tool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	cases := []struct {
		name   string
		in     time.Time
		months int
		want   time.Time
	}{
		{"one month", date(2024, time.January, 1), 1, date(2024, time.February, 1)},
		{"three months", date(2024, time.March, 15), 3, date(2024, time.June, 15)},
		{"twelve months", date(2024, time.June, 10), 12, date(2025, time.June, 10)},
		{"clamps to leap february", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"clamps to short february", date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{"clamps thirty-one to thirty", date(2024, time.May, 31), 1, date(2024, time.June, 30)},
		{"year rollover", date(2024, time.November, 30), 3, date(2025, time.February, 28)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, AddMonths(tc.in, tc.months))
		})
	}
}

func TestDateOf_DropsClock(t *testing.T) {
	in := time.Date(2024, time.July, 4, 18, 30, 12, 999, time.UTC)
	require.Equal(t, date(2024, time.July, 4), DateOf(in))
}

func TestSameDate(t *testing.T) {
	a := time.Date(2024, time.July, 4, 1, 0, 0, 0, time.UTC)
	b := time.Date(2024, time.July, 4, 23, 59, 59, 0, time.UTC)
	require.True(t, SameDate(a, b))
	require.False(t, SameDate(a, b.AddDate(0, 0, 1)))
}

func TestYearMonth(t *testing.T) {
	require.Equal(t, "2024-07", YearMonth(date(2024, time.July, 31)))
}
