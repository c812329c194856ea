package journal

import (
	"strings"
	"time"

	"github.com/SscSPs/thoughtlog_backend/internal/core/domain"
)

// ComputeStats derives the aggregate counters for one account's full entry
// collection. The result depends only on the multiset of entries, never on
// their order, and an empty collection yields all-zero Stats. Premium gating
// of the stats endpoint is a handler concern; this computes unconditionally.
func ComputeStats(entries []domain.Entry, loc *time.Location) domain.Stats {
	stats := domain.Stats{TotalEntries: len(entries)}
	for _, e := range entries {
		stats.TotalWords += len(strings.Fields(e.Text))
	}

	days := SortedDistinctDays(entries, loc)
	stats.DaysWithEntries = len(days)
	stats.LongestStreak = longestStreak(days)
	return stats
}

// longestStreak returns the length of the longest run of consecutive calendar
// days in an ascending-sorted day list. The running counter resets to 1 on
// the first day and whenever the gap to the previous day is not exactly one.
func longestStreak(sortedDays []domain.DateKey) int {
	longest := 0
	run := 0
	for i, day := range sortedDays {
		if i > 0 && sortedDays[i-1].AddDays(1) == day {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
