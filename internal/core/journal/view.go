package journal

import (
	"time"

	"github.com/SscSPs/thoughtlog_backend/internal/core/domain"
)

// DayViewEntry is one entry prepared for rendering within a day.
type DayViewEntry struct {
	domain.Entry
	Backfilled bool
}

// DayView is everything needed to render one journal day: the bucketed
// entries plus the navigation targets around the selected day.
type DayView struct {
	Day     domain.DateKey
	PrevDay domain.DateKey
	NextDay *domain.DateKey // nil when forward navigation would pass today
	Entries []DayViewEntry
}

// BuildDayView assembles the view for one selected day from the full entry
// collection. The forward navigation target honors the future-day guard.
func BuildDayView(entries []domain.Entry, day domain.DateKey, loc *time.Location) DayView {
	view := DayView{
		Day:     day,
		PrevDay: day.AddDays(-1),
	}

	sel := NewDaySelectionAt(day, loc)
	if next, ok := sel.NextDay(); ok {
		view.NextDay = &next
	}

	bucket := BucketByDay(entries, loc)[day]
	view.Entries = make([]DayViewEntry, len(bucket))
	for i, e := range bucket {
		view.Entries[i] = DayViewEntry{Entry: e, Backfilled: IsBackfilled(e, loc)}
	}
	return view
}

// MonthView is an annotated month grid plus the adjacent month coordinates
// for the picker's navigation.
type MonthView struct {
	Year      int
	Month     time.Month
	Weeks     [][]CalendarCell
	PrevYear  int
	PrevMonth time.Month
	NextYear  int
	NextMonth time.Month
}

// BuildMonthView assembles the calendar picker view for one month.
func BuildMonthView(entries []domain.Entry, year int, month time.Month, selected domain.DateKey, loc *time.Location) MonthView {
	view := MonthView{
		Year:  year,
		Month: month,
		Weeks: MonthGrid(year, month, DistinctDays(entries, loc), selected),
	}
	view.PrevYear, view.PrevMonth = ChangeMonth(year, month, -1)
	view.NextYear, view.NextMonth = ChangeMonth(year, month, 1)
	return view
}
