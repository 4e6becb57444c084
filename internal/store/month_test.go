package store

import (
	"testing"
	"time"
)

func TestMonthRange(t *testing.T) {
	cases := []struct {
		name        string
		year, month int
		wantStart   time.Time
		wantEnd     time.Time
	}{
		{
			"january", 2024, 0,
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 31, 23, 59, 59, 999e6, time.UTC),
		},
		{
			"february leap year", 2024, 1,
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 29, 23, 59, 59, 999e6, time.UTC),
		},
		{
			"february non-leap", 2023, 1,
			time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2023, 2, 28, 23, 59, 59, 999e6, time.UTC),
		},
		{
			"december rollover", 2024, 11,
			time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 12, 31, 23, 59, 59, 999e6, time.UTC),
		},
		{
			"thirty day month", 2024, 3,
			time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 4, 30, 23, 59, 59, 999e6, time.UTC),
		},
	}
	for _, tc := range cases {
		start, end := MonthRange(tc.year, tc.month)
		if !start.Equal(tc.wantStart) {
			t.Fatalf("%s: start = %v, want %v", tc.name, start, tc.wantStart)
		}
		if !end.Equal(tc.wantEnd) {
			t.Fatalf("%s: end = %v, want %v", tc.name, end, tc.wantEnd)
		}
	}
}

func TestMonthRangeBoundariesAreExclusiveOfNextMonth(t *testing.T) {
	_, end := MonthRange(2024, 0)
	nextStart, _ := MonthRange(2024, 1)
	if !end.Before(nextStart) {
		t.Fatalf("january end %v not before february start %v", end, nextStart)
	}
	// The gap is exactly the sub-millisecond slice the stores never produce.
	if nextStart.Sub(end) != time.Millisecond {
		t.Fatalf("unexpected gap: %v", nextStart.Sub(end))
	}
}
