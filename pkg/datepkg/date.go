// Package datepkg provides the calendar utility the engine consumes: parsing
// of DD/MM/YYYY dates, range verification and day-count intervals.
package datepkg

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Layout is the wire format for user-supplied calendar dates.
const Layout = "02/01/2006"

// MinYear is the lowest year accepted for user-supplied dates.
const MinYear = 2000

// ErrMalformedDate indicates input that does not have the DD/MM/YYYY
// structure at all. Range violations are verdicts, not errors.
var ErrMalformedDate = errors.New("malformed date, expected DD/MM/YYYY")

// ErrDateOutOfRange indicates a structurally sound date whose components
// fall outside the calendar bounds.
var ErrDateOutOfRange = errors.New("date out of range")

func components(s string) (day, month, year int, err error) {
	if !strings.Contains(s, "/") {
		return 0, 0, 0, ErrMalformedDate
	}

	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return 0, 0, 0, ErrMalformedDate
	}

	nums := make([]int, 3)

	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil || n <= 0 {
			return 0, 0, 0, ErrMalformedDate
		}

		nums[i] = n
	}

	return nums[0], nums[1], nums[2], nil
}

// Verify checks a candidate date. Structural failures (missing separators,
// non-numeric or non-positive components) are errors; a well-formed date
// whose day, month or year falls outside bounds yields a false verdict.
func Verify(s string) (bool, error) {
	day, month, year, err := components(s)
	if err != nil {
		return false, err
	}

	if day > 31 || month > 12 || year < MinYear {
		return false, nil
	}

	return true, nil
}

// Parse returns the calendar date for a candidate string, rejecting both
// malformed input and out-of-range components.
func Parse(s string) (time.Time, error) {
	ok, err := Verify(s)
	if err != nil {
		return time.Time{}, err
	}

	if !ok {
		return time.Time{}, ErrDateOutOfRange
	}

	t, err := time.Parse(Layout, s)
	if err != nil {
		// Structurally valid but impossible dates, e.g. 31/02/2024.
		return time.Time{}, ErrDateOutOfRange
	}

	return t, nil
}

// Format renders a calendar date in the wire format.
func Format(t time.Time) string {
	return t.Format(Layout)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysPastDue returns the number of whole days now is past due, or zero when
// due is today or in the future.
func DaysPastDue(due, now time.Time) int {
	days := int(truncateToDay(now).Sub(truncateToDay(due.In(now.Location()))).Hours() / 24)
	if days < 0 {
		return 0
	}

	return days
}

// Auto-debit scheduling window: day of month 1 through 10.
const (
	autoDebitDayMin = 1
	autoDebitDayMax = 10
)

// ValidAutoDebitDay reports whether the candidate day of month is usable for
// automatic debit scheduling. Non-numeric input is simply invalid.
func ValidAutoDebitDay(s string) bool {
	day, err := strconv.Atoi(s)
	if err != nil {
		return false
	}

	return day >= autoDebitDayMin && day <= autoDebitDayMax
}
