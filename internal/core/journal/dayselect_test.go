package journal_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/thoughtlog_backend/internal/core/domain"
	"github.com/SscSPs/thoughtlog_backend/internal/core/journal"
	"github.com/stretchr/testify/assert"
)

func TestNewDaySelection_StartsToday(t *testing.T) {
	sel := journal.NewDaySelection(time.UTC)
	assert.Equal(t, domain.TodayKey(time.UTC), sel.Selected())
}

func TestDaySelection_PrevDayRepeated(t *testing.T) {
	start := domain.DateKey("2024-05-15")
	sel := journal.NewDaySelectionAt(start, time.UTC)

	for n := 1; n <= 40; n++ {
		got := sel.PrevDay()
		assert.Equal(t, start.AddDays(-n), got, "after %d steps back", n)
	}
}

func TestDaySelection_NextDayGuard(t *testing.T) {
	sel := journal.NewDaySelection(time.UTC)
	today := sel.Selected()

	// Moving forward from today is rejected and leaves the state unchanged.
	got, moved := sel.NextDay()
	assert.False(t, moved)
	assert.Equal(t, today, got)
	assert.Equal(t, today, sel.Selected())

	// From the past, forward navigation works up to today and no further.
	sel.JumpTo(today.AddDays(-2))
	got, moved = sel.NextDay()
	assert.True(t, moved)
	assert.Equal(t, today.AddDays(-1), got)

	got, moved = sel.NextDay()
	assert.True(t, moved)
	assert.Equal(t, today, got)

	_, moved = sel.NextDay()
	assert.False(t, moved)
	assert.Equal(t, today, sel.Selected())
}

func TestDaySelection_JumpToIsUnconditional(t *testing.T) {
	sel := journal.NewDaySelection(time.UTC)
	future := domain.TodayKey(time.UTC).AddDays(30)

	sel.JumpTo(future)
	assert.Equal(t, future, sel.Selected())
}

func TestDaySelection_OnEntryCreated(t *testing.T) {
	sel := journal.NewDaySelection(time.UTC)

	entry := domain.Entry{
		Text:        "catching up on last week",
		JournalDate: domain.DateKey("2024-05-02").Time(time.UTC),
		CreatedAt:   time.Date(2024, time.May, 9, 10, 0, 0, 0, time.UTC),
	}

	got := sel.OnEntryCreated(entry)
	assert.Equal(t, domain.DateKey("2024-05-02"), got)
	assert.Equal(t, domain.DateKey("2024-05-02"), sel.Selected())
}

func ExampleDaySelection_PrevDay() {
	sel := journal.NewDaySelectionAt("2024-03-01", time.UTC)
	fmt.Println(sel.PrevDay())
	// Output: 2024-02-29
}
