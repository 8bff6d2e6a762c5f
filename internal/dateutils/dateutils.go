// Package dateutils resolves relative and absolute date phrases against an
// anchor date. It supplies the arithmetic only; deciding which clause of a
// message a date phrase governs is a language-understanding task and is
// handled by the model instruction, not here.
package dateutils

import (
	"fmt"
	"regexp"
	"time"
)

// WireLayout is the canonical dd/mm/yyyy wire format for dates.
const WireLayout = "02/01/2006"

var wirePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// Format renders a date in the canonical wire format.
func Format(t time.Time) string {
	return t.Format(WireLayout)
}

// Parse parses a strict dd/mm/yyyy date string. Anything that does not match
// the two-digit/two-digit/four-digit pattern is rejected.
func Parse(s string) (time.Time, error) {
	if !wirePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("date '%s' does not match dd/mm/yyyy", s)
	}
	t, err := time.Parse(WireLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s': %w", s, err)
	}
	return t, nil
}

// Truncate drops the time-of-day component, keeping year/month/day in UTC.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Yesterday returns the day before the anchor.
func Yesterday(anchor time.Time) time.Time {
	return DaysAgo(anchor, 1)
}

// DaysAgo returns the anchor minus n days ("3 days ago", "2 days back").
func DaysAgo(anchor time.Time, n int) time.Time {
	return Truncate(anchor).AddDate(0, 0, -n)
}

// WeekAgo returns the anchor minus seven days ("a week ago", "last week").
func WeekAgo(anchor time.Time) time.Time {
	return DaysAgo(anchor, 7)
}

// LastWeekday returns the most recent occurrence of the given weekday
// strictly before the anchor date.
func LastWeekday(anchor time.Time, day time.Weekday) time.Time {
	diff := int(anchor.Weekday() - day)
	if diff <= 0 {
		diff += 7
	}
	return DaysAgo(anchor, diff)
}

// DayOfMonth returns the given day number in the anchor's month and year
// ("the 15th"). The day must exist in that month.
func DayOfMonth(anchor time.Time, day int) (time.Time, error) {
	return DayAndMonth(anchor, day, anchor.Month())
}

// DayAndMonth returns the given day in the named month of the anchor's year
// ("15th January").
func DayAndMonth(anchor time.Time, day int, month time.Month) (time.Time, error) {
	if day < 1 || day > daysIn(month, anchor.Year()) {
		return time.Time{}, fmt.Errorf("day %d does not exist in %s %d", day, month, anchor.Year())
	}
	return time.Date(anchor.Year(), month, day, 0, 0, 0, 0, time.UTC), nil
}

// IsFuture reports whether a resolved date falls after the anchor date.
// Future-dated transactions are never accepted.
func IsFuture(date, anchor time.Time) bool {
	return Truncate(date).After(Truncate(anchor))
}

func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
