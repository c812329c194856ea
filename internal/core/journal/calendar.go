package journal

import (
	"time"

	"github.com/SscSPs/thoughtlog_backend/internal/core/domain"
)

// CalendarCell is one slot in a month grid. Day is zero for the placeholder
// cells before the 1st and after the last day of the month.
type CalendarCell struct {
	Day        int
	Key        domain.DateKey
	HasEntries bool
	Selected   bool
}

const (
	calendarRows = 6
	calendarCols = 7
)

// MonthGrid builds a 6x7 calendar for the given month, aligned so each row
// starts on Sunday. Day cells are annotated against the set of days with
// entries and the currently selected day.
func MonthGrid(year int, month time.Month, daysWithEntries map[domain.DateKey]struct{}, selected domain.DateKey) [][]CalendarCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	leading := int(first.Weekday())
	// Day zero of the following month is the last day of this one.
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	grid := make([][]CalendarCell, calendarRows)
	day := 1 - leading
	for row := 0; row < calendarRows; row++ {
		cells := make([]CalendarCell, calendarCols)
		for col := 0; col < calendarCols; col++ {
			if day >= 1 && day <= daysInMonth {
				key := domain.NewDateKey(year, month, day)
				_, hasEntries := daysWithEntries[key]
				cells[col] = CalendarCell{
					Day:        day,
					Key:        key,
					HasEntries: hasEntries,
					Selected:   key == selected,
				}
			}
			day++
		}
		grid[row] = cells
	}
	return grid
}

// ChangeMonth moves delta months from (year, month), rolling across year
// boundaries in either direction.
func ChangeMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}
