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

type AccountRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAccountRepo(pool *pgxpool.Pool, logger *slog.Logger) *AccountRepo {
	return &AccountRepo{pool: pool, logger: logger}
}

func coordsParts(rec *domain.UserLocationRecord) (lat, lng *float64) {
	if rec.Coordinates != nil {
		lat = &rec.Coordinates.Lat
		lng = &rec.Coordinates.Lng
	}
	return lat, lng
}

func lastSeenPart(rec *domain.UserLocationRecord) *time.Time {
	if rec.LastSeenAt.IsZero() {
		return nil
	}
	t := rec.LastSeenAt
	return &t
}

func (p *AccountRepo) Create(ctx context.Context, rec *domain.UserLocationRecord) error {
	const op = "postgres.Account.Create"

	const query = `
		INSERT INTO user_records
			(id, email, phone, visible, lat, lng, last_seen_at,
			 blocked_contacts, is_demo, is_reviewer, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if rec.BlockedContacts == nil {
		rec.BlockedContacts = []string{}
	}

	lat, lng := coordsParts(rec)

	_, err := p.pool.Exec(ctx, query,
		rec.ID,
		rec.Email,
		rec.Phone,
		rec.Visible,
		lat,
		lng,
		lastSeenPart(rec),
		rec.BlockedContacts,
		rec.IsDemoUser,
		rec.IsReviewer,
		rec.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *AccountRepo) List(ctx context.Context, page, limit int) ([]domain.UserLocationRecord, int64, error) {
	const op = "postgres.Account.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	const countQuery = `SELECT COUNT(*) FROM user_records WHERE deleted_at IS NULL`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	listQuery := fmt.Sprintf(`
		SELECT %s
		FROM user_records
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, recordColumns)

	rows, err := p.pool.Query(ctx, listQuery, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var records []domain.UserLocationRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return records, total, nil
}

func (p *AccountRepo) Get(ctx context.Context, id uuid.UUID) (*domain.UserLocationRecord, error) {
	const op = "postgres.Account.Get"

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

func (p *AccountRepo) Update(ctx context.Context, rec *domain.UserLocationRecord) error {
	const op = "postgres.Account.Update"

	const query = `
		UPDATE user_records
		SET email        = $2,
			phone        = $3,
			visible      = $4,
			lat          = $5,
			lng          = $6,
			last_seen_at = $7,
			is_demo      = $8,
			is_reviewer  = $9
		WHERE id = $1 AND deleted_at IS NULL
	`

	lat, lng := coordsParts(rec)

	cmd, err := p.pool.Exec(ctx, query,
		rec.ID,
		rec.Email,
		rec.Phone,
		rec.Visible,
		lat,
		lng,
		lastSeenPart(rec),
		rec.IsDemoUser,
		rec.IsReviewer,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", rec.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *AccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Account.Delete"

	const query = `
		UPDATE user_records
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	cmd, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}
