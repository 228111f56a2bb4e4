package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// NearbyService answers the two discovery queries: the ranked nearby
// list and the pending-alert count (same pipeline, shorter staleness).
type NearbyService interface {
	FindNearby(ctx context.Context, req domain.NearbySearchRequest) (domain.NearbySearchResponse, error)
	CountAlerts(ctx context.Context, req domain.AlertCountRequest) (domain.AlertCountResponse, error)
}

// ProfileService owns the subject-user writes.
type ProfileService interface {
	ReportLocation(ctx context.Context, userID string, req domain.ReportLocationRequest) error
	SetVisibility(ctx context.Context, userID string, req domain.SetVisibilityRequest) error
	BlockContact(ctx context.Context, userID string, req domain.BlockContactRequest) error
	UnblockContact(ctx context.Context, userID string, req domain.BlockContactRequest) error
}

// AdminAccountService provisions and manages user records, including
// the synthetic demo accounts used for app-store review.
type AdminAccountService interface {
	Create(ctx context.Context, req domain.CreateAccountRequest) (uuid.UUID, error)
	List(ctx context.Context, page, limit int) ([]domain.UserLocationRecord, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.UserLocationRecord, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateAccountRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.NearbyStats, error)
}

// Collaborator surfaces consumed by the services.

type RecordStore interface {
	GetRecord(ctx context.Context, id uuid.UUID) (*domain.UserLocationRecord, error)
	ListCandidates(ctx context.Context, limit int) ([]domain.UserLocationRecord, error)
	SaveLocation(ctx context.Context, id uuid.UUID, lat, lng float64) error
	SetVisibility(ctx context.Context, id uuid.UUID, visible bool) error
	AddBlockedContact(ctx context.Context, id uuid.UUID, identifier string) error
	RemoveBlockedContact(ctx context.Context, id uuid.UUID, identifier string) error
}

type AccountStore interface {
	Create(ctx context.Context, rec *domain.UserLocationRecord) error
	List(ctx context.Context, page, limit int) ([]domain.UserLocationRecord, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.UserLocationRecord, error)
	Update(ctx context.Context, rec *domain.UserLocationRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CandidateCache returns (nil, nil) on a miss.
type CandidateCache interface {
	GetSnapshot(ctx context.Context) ([]domain.UserLocationRecord, error)
}

type CheckStore interface {
	SaveCheck(ctx context.Context, check *domain.NearbyCheck) error
	CountUniqueRequesters(ctx context.Context, minutes int) (int64, error)
}

type AlertQueue interface {
	Enqueue(ctx context.Context, payload domain.AlertPayload) error
}

type ctxKey string

type Service struct {
	NearbyService       NearbyService
	ProfileService      ProfileService
	AdminAccountService AdminAccountService
	StatsService        StatsService
}

func NewService(
	nearbyService NearbyService,
	profileService ProfileService,
	adminAccountService AdminAccountService,
	statsService StatsService,
) *Service {
	return &Service{
		NearbyService:       nearbyService,
		ProfileService:      profileService,
		AdminAccountService: adminAccountService,
		StatsService:        statsService,
	}
}
