package domain

import "time"

// Entry is one immutable journal message belonging to a single account.
// Entries are never edited or deleted once saved.
type Entry struct {
	EntryID     string    `json:"entryID"` // Primary Key (UUID)
	OwnerID     string    `json:"ownerID"` // UserID reference
	Text        string    `json:"text"`    // trimmed and HTML-escaped at creation
	JournalDate time.Time `json:"journalDate"`
	CreatedAt   time.Time `json:"createdAt"` // set by the store, not the caller
}
