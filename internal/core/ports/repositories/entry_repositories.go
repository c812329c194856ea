package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/thoughtlog_backend/internal/core/domain"
)

// EntryReader defines read operations for journal entries.
type EntryReader interface {
	// FindEntriesByOwner retrieves all entries belonging to an account,
	// ordered by ascending creation time.
	FindEntriesByOwner(ctx context.Context, ownerID string) ([]domain.Entry, error)

	// FindEntriesByOwnerAfter retrieves up to limit entries positioned
	// strictly after (after, afterID), ordered by creation time with the
	// entry ID breaking ties. A zero instant starts from the beginning.
	FindEntriesByOwnerAfter(ctx context.Context, ownerID string, after time.Time, afterID string, limit int) ([]domain.Entry, error)
}

// EntryWriter defines write operations for journal entries. Entries are
// immutable, so saving is the only mutation.
type EntryWriter interface {
	// SaveEntry persists a new entry.
	SaveEntry(ctx context.Context, entry domain.Entry) error
}

// EntryRepositoryFacade combines all entry repository interfaces.
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
