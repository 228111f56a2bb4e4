package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
	"github.com/godiehurtado/nearsy-app-sub000/pkg/e"
)

const recordColumns = `id, email, phone, visible, lat, lng, last_seen_at,
	   blocked_contacts, is_demo, is_reviewer, created_at`

type RecordRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewRecordRepo(pool *pgxpool.Pool, logger *slog.Logger) *RecordRepo {
	return &RecordRepo{pool: pool, logger: logger}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*domain.UserLocationRecord, error) {
	var (
		rec      domain.UserLocationRecord
		lat, lng *float64
		lastSeen *time.Time
	)
	if err := row.Scan(
		&rec.ID,
		&rec.Email,
		&rec.Phone,
		&rec.Visible,
		&lat,
		&lng,
		&lastSeen,
		&rec.BlockedContacts,
		&rec.IsDemoUser,
		&rec.IsReviewer,
		&rec.CreatedAt,
	); err != nil {
		return nil, err
	}
	if lat != nil && lng != nil {
		rec.Coordinates = &domain.Coordinates{Lat: *lat, Lng: *lng}
	}
	if lastSeen != nil {
		rec.LastSeenAt = *lastSeen
	}
	return &rec, nil
}

func (p *RecordRepo) GetRecord(ctx context.Context, id uuid.UUID) (*domain.UserLocationRecord, error) {
	const op = "postgres.Record.Get"

	query := fmt.Sprintf(`
		SELECT %s
		FROM user_records
		WHERE id = $1 AND deleted_at IS NULL
	`, recordColumns)

	rec, err := scanRecord(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return rec, nil
}

// ListCandidates returns the bounded candidate batch a single query is
// evaluated against. Demo accounts ride along regardless of visibility
// so reviewer-mode queries work off the same snapshot.
func (p *RecordRepo) ListCandidates(ctx context.Context, limit int) ([]domain.UserLocationRecord, error) {
	const op = "postgres.Record.ListCandidates"

	if limit <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM user_records
		WHERE deleted_at IS NULL
		  AND (visible = TRUE OR is_demo = TRUE)
		ORDER BY last_seen_at DESC NULLS LAST, created_at DESC
		LIMIT $1
	`, recordColumns)

	rows, err := p.pool.Query(ctx, query, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	records := make([]domain.UserLocationRecord, 0, limit)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return records, nil
}

func (p *RecordRepo) SaveLocation(ctx context.Context, id uuid.UUID, lat, lng float64) error {
	const op = "postgres.Record.SaveLocation"

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	const query = `
		UPDATE user_records
		SET lat = $2, lng = $3, last_seen_at = $4
		WHERE id = $1 AND deleted_at IS NULL
	`

	cmd, err := p.pool.Exec(ctx, query, id, lat, lng, time.Now().UTC())
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *RecordRepo) SetVisibility(ctx context.Context, id uuid.UUID, visible bool) error {
	const op = "postgres.Record.SetVisibility"

	const query = `
		UPDATE user_records
		SET visible = $2
		WHERE id = $1 AND deleted_at IS NULL
	`

	cmd, err := p.pool.Exec(ctx, query, id, visible)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// AddBlockedContact appends a normalized identifier to the block list.
// remove-then-append keeps the write idempotent.
func (p *RecordRepo) AddBlockedContact(ctx context.Context, id uuid.UUID, identifier string) error {
	const op = "postgres.Record.AddBlockedContact"

	if identifier == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		UPDATE user_records
		SET blocked_contacts = array_append(array_remove(blocked_contacts, $2), $2)
		WHERE id = $1 AND deleted_at IS NULL
	`

	cmd, err := p.pool.Exec(ctx, query, id, identifier)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *RecordRepo) RemoveBlockedContact(ctx context.Context, id uuid.UUID, identifier string) error {
	const op = "postgres.Record.RemoveBlockedContact"

	if identifier == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		UPDATE user_records
		SET blocked_contacts = array_remove(blocked_contacts, $2)
		WHERE id = $1 AND deleted_at IS NULL
	`

	cmd, err := p.pool.Exec(ctx, query, id, identifier)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}
