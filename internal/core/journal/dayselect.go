package journal

import (
	"time"

	"github.com/SscSPs/thoughtlog_backend/internal/core/domain"
)

// DaySelection tracks the day a user is currently viewing and composing into.
// It starts at today and is only moved by explicit transitions, so a new
// session always opens on the current day.
type DaySelection struct {
	selected domain.DateKey
	loc      *time.Location
}

// NewDaySelection starts a selection at today's key in loc.
func NewDaySelection(loc *time.Location) *DaySelection {
	return &DaySelection{selected: domain.TodayKey(loc), loc: loc}
}

// NewDaySelectionAt starts a selection at an explicit day, as when a request
// carries the day the client is already looking at.
func NewDaySelectionAt(key domain.DateKey, loc *time.Location) *DaySelection {
	return &DaySelection{selected: key, loc: loc}
}

// Selected returns the currently viewed day.
func (s *DaySelection) Selected() domain.DateKey {
	return s.selected
}

// PrevDay moves one day back. There is no lower bound.
func (s *DaySelection) PrevDay() domain.DateKey {
	s.selected = s.selected.AddDays(-1)
	return s.selected
}

// NextDay moves one day forward unless that would pass today, in which case
// the selection is unchanged and false is returned.
func (s *DaySelection) NextDay() (domain.DateKey, bool) {
	candidate := s.selected.AddDays(1)
	if candidate > domain.TodayKey(s.loc) {
		return s.selected, false
	}
	s.selected = candidate
	return s.selected, true
}

// JumpTo selects a day unconditionally. The calendar picker may restrict
// future days itself; the selection does not.
func (s *DaySelection) JumpTo(key domain.DateKey) {
	s.selected = key
}

// OnEntryCreated moves the selection to the day a freshly saved entry belongs
// to, so posting an entry always lands the view on that day.
func (s *DaySelection) OnEntryCreated(e domain.Entry) domain.DateKey {
	s.selected = ResolveDayAttribution(e, s.loc).Key
	return s.selected
}
