package analytics

import (
	"errors"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestBusinessDaysBetween(t *testing.T) {
	// 2025-03-17 is a Monday
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same weekday", day(2025, 3, 17), day(2025, 3, 17), 0},
		{"same weekend day", day(2025, 3, 22), day(2025, 3, 22), 0},
		{"monday to friday", day(2025, 3, 17), day(2025, 3, 21), 4},
		{"friday to monday", day(2025, 3, 21), day(2025, 3, 24), 1},
		{"saturday to sunday", day(2025, 3, 22), day(2025, 3, 23), 0},
		{"monday to next monday", day(2025, 3, 17), day(2025, 3, 24), 5},
		{"across month", day(2025, 2, 22), day(2025, 3, 19), 17},
		{"time of day ignored", time.Date(2025, 3, 17, 23, 59, 0, 0, time.UTC), time.Date(2025, 3, 18, 0, 1, 0, 0, time.UTC), 1},
	}
	for _, tc := range cases {
		got, err := BusinessDaysBetween(tc.start, tc.end)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestBusinessDaysBetweenAnomalies(t *testing.T) {
	if _, err := BusinessDaysBetween(time.Time{}, day(2025, 3, 17)); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := BusinessDaysBetween(day(2025, 3, 18), day(2025, 3, 17)); !errors.Is(err, ErrNegativeRange) {
		t.Fatalf("expected ErrNegativeRange, got %v", err)
	}
}

func TestCalendarDaysBetween(t *testing.T) {
	got, err := CalendarDaysBetween(day(2025, 3, 9), day(2025, 3, 14))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}

	santiago, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// spans the April DST change in Chile
	start := time.Date(2025, 4, 1, 9, 0, 0, 0, santiago)
	end := time.Date(2025, 4, 11, 9, 0, 0, 0, santiago)
	got, err = CalendarDaysBetween(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 10 {
		t.Fatalf("expected 10 across DST, got %d", got)
	}

	if _, err := CalendarDaysBetween(end, start); !errors.Is(err, ErrNegativeRange) {
		t.Fatalf("expected ErrNegativeRange, got %v", err)
	}
}
