package analytics

import "time"

// LegalDeadlineBusinessDays is the number of business days a junta has to
// answer a complaint.
const LegalDeadlineBusinessDays = 20

// BusinessDaysBetween counts the weekdays in the inclusive range between the
// calendar dates of start and end, minus one. A same-day range yields 0.
// Holidays are not considered.
func BusinessDaysBetween(start, end time.Time) (int, error) {
	if start.IsZero() || end.IsZero() {
		return 0, ErrInvalidDate
	}
	s := truncateDay(start)
	e := truncateDay(end.In(start.Location()))
	if e.Before(s) {
		return 0, ErrNegativeRange
	}

	days := calendarDays(s, e) + 1
	weeks := days / 7
	count := weeks * 5
	// walk the leftover partial week
	d := s.AddDate(0, 0, weeks*7)
	for i := 0; i < days%7; i++ {
		if isWeekday(d.Weekday()) {
			count++
		}
		d = d.AddDate(0, 0, 1)
	}
	if count == 0 {
		return 0, nil
	}
	return count - 1, nil
}

// CalendarDaysBetween returns the number of whole calendar days from start to end.
func CalendarDaysBetween(start, end time.Time) (int, error) {
	if start.IsZero() || end.IsZero() {
		return 0, ErrInvalidDate
	}
	s := truncateDay(start)
	e := truncateDay(end.In(start.Location()))
	if e.Before(s) {
		return 0, ErrNegativeRange
	}
	return calendarDays(s, e), nil
}

// calendarDays counts days between two midnights. Dates are rebuilt in UTC so
// DST transitions don't shorten a day.
func calendarDays(s, e time.Time) int {
	su := time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, time.UTC)
	eu := time.Date(e.Year(), e.Month(), e.Day(), 0, 0, 0, 0, time.UTC)
	return int(eu.Sub(su).Hours() / 24)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func isWeekday(d time.Weekday) bool {
	return d != time.Saturday && d != time.Sunday
}
