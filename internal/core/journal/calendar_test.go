package journal_test

import (
	"testing"
	"time"

	"github.com/SscSPs/thoughtlog_backend/internal/core/domain"
	"github.com/SscSPs/thoughtlog_backend/internal/core/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthGrid_Shape(t *testing.T) {
	grid := journal.MonthGrid(2024, time.May, nil, "")
	require.Len(t, grid, 6)
	for _, row := range grid {
		assert.Len(t, row, 7)
	}
}

func TestMonthGrid_LeadingEmptyCells(t *testing.T) {
	// May 2024 begins on a Wednesday: Sunday-aligned rows leave three
	// placeholders before the 1st.
	grid := journal.MonthGrid(2024, time.May, nil, "")

	for col := 0; col < 3; col++ {
		assert.Zero(t, grid[0][col].Day, "cell %d should be empty", col)
	}
	assert.Equal(t, 1, grid[0][3].Day)
	assert.Equal(t, domain.DateKey("2024-05-01"), grid[0][3].Key)
}

func TestMonthGrid_TrailingEmptyCells(t *testing.T) {
	grid := journal.MonthGrid(2024, time.May, nil, "")

	var lastDay, filled int
	for _, row := range grid {
		for _, cell := range row {
			if cell.Day != 0 {
				filled++
				if cell.Day > lastDay {
					lastDay = cell.Day
				}
			}
		}
	}
	assert.Equal(t, 31, lastDay)
	assert.Equal(t, 31, filled)
}

func TestMonthGrid_Annotations(t *testing.T) {
	days := map[domain.DateKey]struct{}{
		"2024-05-03": {},
		"2024-05-17": {},
	}
	grid := journal.MonthGrid(2024, time.May, days, "2024-05-17")

	var marked, selected int
	for _, row := range grid {
		for _, cell := range row {
			if cell.HasEntries {
				marked++
			}
			if cell.Selected {
				selected++
				assert.Equal(t, 17, cell.Day)
				assert.True(t, cell.HasEntries)
			}
		}
	}
	assert.Equal(t, 2, marked)
	assert.Equal(t, 1, selected)
}

func TestMonthGrid_FebruaryLeapYear(t *testing.T) {
	grid := journal.MonthGrid(2024, time.February, nil, "")

	var lastKey domain.DateKey
	for _, row := range grid {
		for _, cell := range row {
			if cell.Day != 0 {
				lastKey = cell.Key
			}
		}
	}
	assert.Equal(t, domain.DateKey("2024-02-29"), lastKey)
}

func TestChangeMonth(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		delta     int
		wantYear  int
		wantMonth time.Month
	}{
		{name: "forward within year", year: 2024, month: time.May, delta: 1, wantYear: 2024, wantMonth: time.June},
		{name: "back within year", year: 2024, month: time.May, delta: -1, wantYear: 2024, wantMonth: time.April},
		{name: "forward across year", year: 2024, month: time.December, delta: 1, wantYear: 2025, wantMonth: time.January},
		{name: "back across year", year: 2024, month: time.January, delta: -1, wantYear: 2023, wantMonth: time.December},
		{name: "several months back", year: 2024, month: time.February, delta: -3, wantYear: 2023, wantMonth: time.November},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month := journal.ChangeMonth(tt.year, tt.month, tt.delta)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantMonth, month)
		})
	}
}
