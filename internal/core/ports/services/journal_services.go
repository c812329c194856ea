package services

import (
	"context"
	"time"

	"github.com/SscSPs/thoughtlog_backend/internal/core/domain"
	"github.com/SscSPs/thoughtlog_backend/internal/core/journal"
	"github.com/SscSPs/thoughtlog_backend/internal/dto"
)

// JournalReaderSvc defines read operations over one account's journal.
type JournalReaderSvc interface {
	// ListEntries retrieves the account's entries in ascending creation
	// order. When params carries a page size or token the result is a single
	// page and the second return is the token for the next one ("" at the end).
	ListEntries(ctx context.Context, ownerID string, params dto.ListEntriesParams) ([]domain.Entry, string, error)

	// GetDayView assembles the bucketed view of one selected day.
	GetDayView(ctx context.Context, ownerID string, day domain.DateKey) (*journal.DayView, error)

	// GetCalendarMonth assembles the annotated month grid for the picker.
	GetCalendarMonth(ctx context.Context, ownerID string, year int, month time.Month, selected domain.DateKey) (*journal.MonthView, error)

	// GetStats computes the account's aggregate journal statistics.
	GetStats(ctx context.Context, ownerID string) (*domain.Stats, error)
}

// JournalWriterSvc defines write operations over one account's journal.
type JournalWriterSvc interface {
	// CreateEntry validates and persists a new entry for the given day key,
	// returning the saved entry and the day the view should move to.
	CreateEntry(ctx context.Context, ownerID string, req dto.CreateEntryRequest) (*domain.Entry, domain.DateKey, error)
}

// JournalSvcFacade combines all journal-related service interfaces.
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
