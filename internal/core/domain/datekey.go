package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/thoughtlog_backend/internal/apperrors"
)

// DateKey identifies one calendar day in the journal's time zone, in the
// canonical zero-padded "YYYY-MM-DD" form. Lexicographic comparison of two
// keys matches chronological order, so the ordinary string operators are used
// directly for day comparisons.
type DateKey string

const dateKeyLayout = "2006-01-02"

// NewDateKey builds the canonical key for a (year, month, day) triple.
func NewDateKey(year int, month time.Month, day int) DateKey {
	return DateKey(fmt.Sprintf("%04d-%02d-%02d", year, int(month), day))
}

// DateKeyFromTime derives the key from the instant's calendar date in loc.
func DateKeyFromTime(t time.Time, loc *time.Location) DateKey {
	return DateKey(t.In(loc).Format(dateKeyLayout))
}

// TodayKey returns the key for the current day in loc.
func TodayKey(loc *time.Location) DateKey {
	return DateKeyFromTime(time.Now(), loc)
}

// ParseDateKey validates an externally supplied day string. Only the exact
// zero-padded form naming a real calendar date is accepted; anything else is
// reported as a validation error.
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(dateKeyLayout, s)
	if err != nil || t.Format(dateKeyLayout) != s {
		return "", fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, s)
	}
	return DateKey(s), nil
}

// Date splits the key back into its (year, month, day) triple.
// Keys are only built through the constructors above, so a malformed key is a
// programmer error and panics rather than returning an error.
func (k DateKey) Date() (int, time.Month, int) {
	t, err := time.Parse(dateKeyLayout, string(k))
	if err != nil {
		panic(fmt.Sprintf("malformed DateKey %q: %v", string(k), err))
	}
	return t.Date()
}

// Time returns midnight at the start of the key's day in loc.
func (k DateKey) Time(loc *time.Location) time.Time {
	year, month, day := k.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// AddDays returns the key delta calendar days away. time.Date normalizes
// out-of-range day numbers, which handles month lengths and leap years.
func (k DateKey) AddDays(delta int) DateKey {
	year, month, day := k.Date()
	t := time.Date(year, month, day+delta, 0, 0, 0, 0, time.UTC)
	return DateKey(t.Format(dateKeyLayout))
}

func (k DateKey) String() string {
	return string(k)
}
