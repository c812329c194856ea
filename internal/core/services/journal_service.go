package services

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/thoughtlog_backend/internal/apperrors"
	"github.com/SscSPs/thoughtlog_backend/internal/core/domain"
	"github.com/SscSPs/thoughtlog_backend/internal/core/journal"
	portsrepo "github.com/SscSPs/thoughtlog_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/thoughtlog_backend/internal/core/ports/services"
	"github.com/SscSPs/thoughtlog_backend/internal/dto"
	"github.com/SscSPs/thoughtlog_backend/internal/utils/pagination"
	"github.com/google/uuid"
)

const defaultListLimit = 100

// journalService implements portssvc.JournalSvcFacade. All day math runs in
// the configured journal time zone so every caller sees the same buckets.
type journalService struct {
	BaseService
	entryRepo portsrepo.EntryRepositoryFacade
	loc       *time.Location
}

// NewJournalService creates a new journal service.
func NewJournalService(entryRepo portsrepo.EntryRepositoryFacade, loc *time.Location) portssvc.JournalSvcFacade {
	if loc == nil {
		loc = time.UTC
	}
	return &journalService{entryRepo: entryRepo, loc: loc}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateEntry persists a new immutable entry and returns it together with
// the day the caller's selection should move to.
func (s *journalService) CreateEntry(ctx context.Context, ownerID string, req dto.CreateEntryRequest) (*domain.Entry, domain.DateKey, error) {
	text := html.EscapeString(strings.TrimSpace(req.Text))
	if text == "" {
		return nil, "", fmt.Errorf("%w: entry text cannot be empty", apperrors.ErrValidation)
	}

	key, err := domain.ParseDateKey(req.JournalDateKey)
	if err != nil {
		return nil, "", err
	}
	if key > domain.TodayKey(s.loc) {
		return nil, "", fmt.Errorf("%w: cannot create an entry for a future date", apperrors.ErrValidation)
	}

	entry := domain.Entry{
		EntryID:     uuid.NewString(),
		OwnerID:     ownerID,
		Text:        text,
		JournalDate: key.Time(s.loc),
		CreatedAt:   time.Now(),
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		return nil, "", fmt.Errorf("failed to save entry: %w", err)
	}
	s.LogDebug(ctx, "Entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("day", string(key)),
	)

	sel := journal.NewDaySelection(s.loc)
	sel.OnEntryCreated(entry)
	return &entry, sel.Selected(), nil
}

// ListEntries returns entries in creation order. Without a page size or
// token it returns the full collection; otherwise it returns one page and an
// opaque token for the next, empty at the end.
func (s *journalService) ListEntries(ctx context.Context, ownerID string, params dto.ListEntriesParams) ([]domain.Entry, string, error) {
	if params.Limit <= 0 && params.NextToken == "" {
		entries, err := s.entryRepo.FindEntriesByOwner(ctx, ownerID)
		if err != nil {
			return nil, "", fmt.Errorf("failed to list entries: %w", err)
		}
		return entries, "", nil
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	var after time.Time
	var afterID string
	if params.NextToken != "" {
		var err error
		after, afterID, err = pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
	}

	// Fetch one extra row to learn whether another page exists.
	entries, err := s.entryRepo.FindEntriesByOwnerAfter(ctx, ownerID, after, afterID, limit+1)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list entries: %w", err)
	}

	nextToken := ""
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		nextToken = pagination.EncodeToken(last.CreatedAt, last.EntryID)
	}
	return entries, nextToken, nil
}

// GetDayView assembles the entries and navigation state for one day.
func (s *journalService) GetDayView(ctx context.Context, ownerID string, day domain.DateKey) (*journal.DayView, error) {
	entries, err := s.entryRepo.FindEntriesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for day view: %w", err)
	}
	view := journal.BuildDayView(entries, day, s.loc)
	return &view, nil
}

// GetCalendarMonth builds the month grid for the given year and month.
func (s *journalService) GetCalendarMonth(ctx context.Context, ownerID string, year int, month time.Month, selected domain.DateKey) (*journal.MonthView, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month out of range", apperrors.ErrValidation)
	}
	entries, err := s.entryRepo.FindEntriesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for calendar: %w", err)
	}
	view := journal.BuildMonthView(entries, year, month, selected, s.loc)
	return &view, nil
}

// GetStats computes totals and the longest streak over all of the owner's
// entries.
func (s *journalService) GetStats(ctx context.Context, ownerID string) (*domain.Stats, error) {
	entries, err := s.entryRepo.FindEntriesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for stats: %w", err)
	}
	stats := journal.ComputeStats(entries, s.loc)
	return &stats, nil
}
