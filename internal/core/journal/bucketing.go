// Package journal holds the pure day-bucketing, statistics, calendar and
// day-selection logic the HTTP layer builds on. Everything here is a plain
// function or an in-memory state transition; persistence and transport live
// elsewhere.
package journal

import (
	"sort"
	"time"

	"github.com/SscSPs/thoughtlog_backend/internal/core/domain"
)

// AttributionSource says which entry field supplied its day key.
type AttributionSource int

const (
	SourceJournalDate AttributionSource = iota
	SourceCreatedAt
)

// DayAttribution is the resolved day assignment of a single entry. Resolving
// the journal-date-else-created-at fallback exactly once keeps every read path
// bucketing the same entry onto the same day.
type DayAttribution struct {
	Key    domain.DateKey
	Source AttributionSource
}

// ResolveDayAttribution decides which day an entry belongs to. An entry with a
// zero JournalDate falls back to its creation instant.
func ResolveDayAttribution(e domain.Entry, loc *time.Location) DayAttribution {
	if e.JournalDate.IsZero() {
		return DayAttribution{Key: domain.DateKeyFromTime(e.CreatedAt, loc), Source: SourceCreatedAt}
	}
	return DayAttribution{Key: domain.DateKeyFromTime(e.JournalDate, loc), Source: SourceJournalDate}
}

// BucketByDay groups entries by their resolved day. Entries within a bucket
// are ordered by ascending CreatedAt so a day renders as a chronological
// conversation regardless of input order.
func BucketByDay(entries []domain.Entry, loc *time.Location) map[domain.DateKey][]domain.Entry {
	buckets := make(map[domain.DateKey][]domain.Entry)
	for _, e := range entries {
		key := ResolveDayAttribution(e, loc).Key
		buckets[key] = append(buckets[key], e)
	}
	for _, bucket := range buckets {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].CreatedAt.Before(bucket[j].CreatedAt)
		})
	}
	return buckets
}

// DistinctDays returns the set of days that have at least one entry.
func DistinctDays(entries []domain.Entry, loc *time.Location) map[domain.DateKey]struct{} {
	days := make(map[domain.DateKey]struct{}, len(entries))
	for _, e := range entries {
		days[ResolveDayAttribution(e, loc).Key] = struct{}{}
	}
	return days
}

// SortedDistinctDays returns the distinct days in ascending order.
func SortedDistinctDays(entries []domain.Entry, loc *time.Location) []domain.DateKey {
	set := DistinctDays(entries, loc)
	days := make([]domain.DateKey, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// IsBackfilled reports whether the entry was recorded on a later day than the
// day it is assigned to. Purely a presentation hint; backfilled entries live
// in the same bucket as everything else on their journal day.
func IsBackfilled(e domain.Entry, loc *time.Location) bool {
	return domain.DateKeyFromTime(e.CreatedAt, loc) > ResolveDayAttribution(e, loc).Key
}
