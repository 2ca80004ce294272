package tool

import "time"

// AddMonths advances a calendar date by whole months, clamping to the last
// day of the target month: Jan 31 + 1 month = Feb 28 (29 in leap years).
// time.Time.AddDate normalizes overflow into the next month instead, which
// is the wrong behavior for membership expiry math.
func AddMonths(d time.Time, months int) time.Time {
	y, m, day := d.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, d.Location())
	target := first.AddDate(0, months, 0)
	if last := daysIn(target.Year(), target.Month()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, d.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateOf truncates a timestamp to its calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDate reports whether two timestamps fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// YearMonth formats a date as "YYYY-MM" for monthly report buckets.
func YearMonth(t time.Time) string {
	return t.Format("2006-01")
}
