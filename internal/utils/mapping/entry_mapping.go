package mapping

import (
	"github.com/SscSPs/thoughtlog_backend/internal/core/domain"
	"github.com/SscSPs/thoughtlog_backend/internal/models"
)

// ToModelEntry converts a domain.Entry to its database representation.
func ToModelEntry(d domain.Entry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.EntryID,
		OwnerID:     d.OwnerID,
		Text:        d.Text,
		JournalDate: d.JournalDate,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainEntry converts a models.JournalEntry to its domain representation.
func ToDomainEntry(m models.JournalEntry) domain.Entry {
	return domain.Entry{
		EntryID:     m.EntryID,
		OwnerID:     m.OwnerID,
		Text:        m.Text,
		JournalDate: m.JournalDate,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainEntrySlice converts a slice of persisted entries.
func ToDomainEntrySlice(ms []models.JournalEntry) []domain.Entry {
	ds := make([]domain.Entry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntry(m)
	}
	return ds
}
