package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/thoughtlog_backend/internal/apperrors"
	"github.com/SscSPs/thoughtlog_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/thoughtlog_backend/internal/core/ports/repositories"
	"github.com/SscSPs/thoughtlog_backend/internal/models"
	"github.com/SscSPs/thoughtlog_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEntryRepository struct {
	db *pgxpool.Pool
}

func newPgxEntryRepository(db *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{db: db}
}

// Ensure PgxEntryRepository implements portsrepo.EntryRepositoryFacade
var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

// SaveEntry inserts a new journal entry. Entries are immutable, so there is
// no conflict clause: a duplicate ID is an error, not an upsert.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	m := mapping.ToModelEntry(entry)
	query := `
        INSERT INTO journal_entries (entry_id, owner_id, entry_text, journal_date, created_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		m.EntryID,
		m.OwnerID,
		m.Text,
		m.JournalDate,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save entry: %w", err)
	}
	return nil
}

func (r *PgxEntryRepository) FindEntriesByOwner(ctx context.Context, ownerID string) ([]domain.Entry, error) {
	query := `
        SELECT entry_id, owner_id, entry_text, journal_date, created_at
        FROM journal_entries
        WHERE owner_id = $1
        ORDER BY created_at ASC;
    `
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// FindEntriesByOwnerAfter pages through an owner's entries. The row
// comparison on (created_at, entry_id) keeps entries sharing a creation
// timestamp from being skipped across page boundaries.
func (r *PgxEntryRepository) FindEntriesByOwnerAfter(ctx context.Context, ownerID string, after time.Time, afterID string, limit int) ([]domain.Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
        SELECT entry_id, owner_id, entry_text, journal_date, created_at
        FROM journal_entries
        WHERE owner_id = $1 AND (created_at, entry_id) > ($2, $3)
        ORDER BY created_at ASC, entry_id ASC
        LIMIT $4;
    `
	rows, err := r.db.Query(ctx, query, ownerID, after, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query entry page for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]domain.Entry, error) {
	modelEntries := []models.JournalEntry{}
	for rows.Next() {
		var m models.JournalEntry
		err := rows.Scan(
			&m.EntryID,
			&m.OwnerID,
			&m.Text,
			&m.JournalDate,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}
	return mapping.ToDomainEntrySlice(modelEntries), nil
}
