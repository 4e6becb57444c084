package store

import "time"

// MonthRange returns the closed interval covering one calendar month: the
// first instant of the month through the last day at 23:59:59.999. month is
// zero-based (0 = January). The arithmetic goes through time.Date so month
// lengths, leap years and the December rollover resolve by the calendar
// rather than fixed day counts.
func MonthRange(year, month int) (start, end time.Time) {
	start = time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}
