package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ronaldocristover/arisan-backend/internal/apperrors"
	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	portsrepo "github.com/ronaldocristover/arisan-backend/internal/core/ports/repositories"
	"github.com/ronaldocristover/arisan-backend/internal/models"
	"github.com/ronaldocristover/arisan-backend/internal/utils/mapping"
)

const noteColumns = `note_id, title, content, note_type, priority, status, member_id, period_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxNoteRepository struct {
	BaseRepository
}

// newPgxNoteRepository creates a new repository for note data.
func newPgxNoteRepository(pool *pgxpool.Pool) portsrepo.NoteRepositoryFacade {
	return &PgxNoteRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.NoteRepositoryFacade = (*PgxNoteRepository)(nil)

func scanNote(row pgx.CollectableRow) (models.Note, error) {
	var n models.Note
	err := row.Scan(
		&n.NoteID,
		&n.Title,
		&n.Content,
		&n.Type,
		&n.Priority,
		&n.Status,
		&n.MemberID,
		&n.PeriodID,
		&n.CreatedAt,
		&n.CreatedBy,
		&n.LastUpdatedAt,
		&n.LastUpdatedBy,
	)
	return n, err
}

func (r *PgxNoteRepository) FindNoteByID(ctx context.Context, noteID string) (*domain.Note, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+noteColumns+` FROM notes WHERE note_id = $1;`, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query note: %w", err)
	}

	modelNote, err := pgx.CollectOneRow(rows, scanNote)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan note: %w", err)
	}

	domainNote := mapping.ToDomainNote(modelNote)
	return &domainNote, nil
}

func (r *PgxNoteRepository) ListNotes(ctx context.Context, filter portsrepo.NoteFilter) ([]domain.Note, int64, error) {
	conditions := []string{"1=1"}
	args := []any{}
	argPos := 1

	if filter.Type != "" {
		conditions = append(conditions, fmt.Sprintf("note_type = $%d", argPos))
		args = append(args, filter.Type)
		argPos++
	}
	if filter.Priority != "" {
		conditions = append(conditions, fmt.Sprintf("priority = $%d", argPos))
		args = append(args, filter.Priority)
		argPos++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}
	if filter.MemberID != "" {
		conditions = append(conditions, fmt.Sprintf("member_id = $%d", argPos))
		args = append(args, filter.MemberID)
		argPos++
	}
	if filter.PeriodID != "" {
		conditions = append(conditions, fmt.Sprintf("period_id = $%d", argPos))
		args = append(args, filter.PeriodID)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR content ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM notes WHERE `+where+`;`, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notes: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM notes WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d;`,
		noteColumns, where, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query notes: %w", err)
	}

	modelNotes, err := pgx.CollectRows(rows, scanNote)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan notes: %w", err)
	}

	return mapping.ToDomainNoteSlice(modelNotes), total, nil
}

func (r *PgxNoteRepository) SaveNote(ctx context.Context, note domain.Note) error {
	n := mapping.ToModelNote(note)

	query := `
		INSERT INTO notes (` + noteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`

	_, err := r.Pool.Exec(ctx, query,
		n.NoteID, n.Title, n.Content, n.Type, n.Priority, n.Status, n.MemberID, n.PeriodID,
		n.CreatedAt, n.CreatedBy, n.LastUpdatedAt, n.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save note %s: %w", n.NoteID, translateConstraintError(err))
	}
	return nil
}

func (r *PgxNoteRepository) UpdateNote(ctx context.Context, note domain.Note) error {
	n := mapping.ToModelNote(note)

	query := `
		UPDATE notes SET
			title = $2,
			content = $3,
			note_type = $4,
			priority = $5,
			status = $6,
			member_id = $7,
			period_id = $8,
			last_updated_at = $9,
			last_updated_by = $10
		WHERE note_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		n.NoteID, n.Title, n.Content, n.Type, n.Priority, n.Status, n.MemberID, n.PeriodID,
		n.LastUpdatedAt, n.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update note %s: %w", n.NoteID, translateConstraintError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxNoteRepository) DeleteNote(ctx context.Context, noteID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM notes WHERE note_id = $1;`, noteID)
	if err != nil {
		return fmt.Errorf("failed to delete note %s: %w", noteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
