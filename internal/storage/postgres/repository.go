package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
)

// AccountRepository is the admin-facing CRUD surface over user records,
// including demo/reviewer account provisioning.
type AccountRepository interface {
	Create(ctx context.Context, rec *domain.UserLocationRecord) error
	List(ctx context.Context, page, limit int) ([]domain.UserLocationRecord, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.UserLocationRecord, error)
	Update(ctx context.Context, rec *domain.UserLocationRecord) error
	Delete(ctx context.Context, id uuid.UUID) error // soft delete
}

// RecordRepository serves the matching reads and the client-owned writes
// (location reports, visibility toggle, block list).
type RecordRepository interface {
	GetRecord(ctx context.Context, id uuid.UUID) (*domain.UserLocationRecord, error)
	ListCandidates(ctx context.Context, limit int) ([]domain.UserLocationRecord, error)
	SaveLocation(ctx context.Context, id uuid.UUID, lat, lng float64) error
	SetVisibility(ctx context.Context, id uuid.UUID, visible bool) error
	AddBlockedContact(ctx context.Context, id uuid.UUID, identifier string) error
	RemoveBlockedContact(ctx context.Context, id uuid.UUID, identifier string) error
}

type StatsRepository interface {
	SaveCheck(ctx context.Context, check *domain.NearbyCheck) error
	CountUniqueRequesters(ctx context.Context, minutes int) (int64, error)
}

func (p *Postgres) Accounts() AccountRepository { return p.Account }
func (p *Postgres) Records() RecordRepository   { return p.Record }
func (p *Postgres) Stats() StatsRepository      { return p.Stat }
