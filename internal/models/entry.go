package models

import "time"

// JournalEntry is the database representation of one journal entry. Rows are
// insert-only; there are no update or delete paths.
type JournalEntry struct {
	EntryID     string    `db:"entry_id"`
	OwnerID     string    `db:"owner_id"`
	Text        string    `db:"entry_text"`
	JournalDate time.Time `db:"journal_date"`
	CreatedAt   time.Time `db:"created_at"`
}
