package domain

// Stats aggregates one account's journal activity. It is derived on demand
// from the full entry collection and never persisted.
type Stats struct {
	TotalEntries    int `json:"totalEntries"`
	TotalWords      int `json:"totalWords"`
	DaysWithEntries int `json:"daysWithEntries"`
	LongestStreak   int `json:"longestStreak"`
}
