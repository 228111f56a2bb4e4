package service

import (
	"context"
	"errors"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/godiehurtado/nearsy-app-sub000/internal/config"
	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
	"github.com/godiehurtado/nearsy-app-sub000/internal/match"
	"github.com/godiehurtado/nearsy-app-sub000/pkg/e"
)

type nearbyService struct {
	records RecordStore
	cache   CandidateCache
	checks  CheckStore
	alerts  AlertQueue
	logger  *slog.Logger
	cfg     config.MatchingConfig
}

func NewNearbyService(
	records RecordStore,
	cache CandidateCache,
	checks CheckStore,
	alerts AlertQueue,
	logger *slog.Logger,
	cfg config.MatchingConfig,
) NearbyService {
	if cfg.RadiusMeters <= 0 {
		cfg.RadiusMeters = match.DefaultRadiusMeters
	}
	if cfg.SearchStaleness <= 0 {
		cfg.SearchStaleness = match.DefaultStaleness
	}
	if cfg.AlertStaleness <= 0 {
		cfg.AlertStaleness = match.AlertStaleness
	}
	if cfg.CandidateCap <= 0 {
		cfg.CandidateCap = match.DefaultCandidateCap
	}
	return &nearbyService{
		records: records,
		cache:   cache,
		checks:  checks,
		alerts:  alerts,
		logger:  logger,
		cfg:     cfg,
	}
}

func (s *nearbyService) FindNearby(ctx context.Context, req domain.NearbySearchRequest) (domain.NearbySearchResponse, error) {
	radius := s.cfg.RadiusMeters
	if req.RadiusM != nil {
		radius = *req.RadiusM
	}
	staleness := s.cfg.SearchStaleness
	if req.StalenessMS != nil {
		staleness = time.Duration(*req.StalenessMS) * time.Millisecond
	}

	matches, err := s.rank(ctx, req.UserID, req.Lat, req.Lng, radius, staleness)
	if err != nil {
		return domain.NearbySearchResponse{}, err
	}

	return domain.NearbySearchResponse{Matches: matches}, nil
}

func (s *nearbyService) CountAlerts(ctx context.Context, req domain.AlertCountRequest) (domain.AlertCountResponse, error) {
	matches, err := s.rank(ctx, req.UserID, req.Lat, req.Lng, s.cfg.RadiusMeters, s.cfg.AlertStaleness)
	if err != nil {
		return domain.AlertCountResponse{}, err
	}

	count := len(matches)
	if count > 0 {
		payload := domain.AlertPayload{
			UserID:    req.UserID,
			Count:     count,
			CheckedAt: time.Now().UTC(),
		}
		if err := s.alerts.Enqueue(ctx, payload); err != nil {
			s.logger.Error("alert enqueue failed", slog.Any("error", err), slog.String("user_id", req.UserID))
		} else {
			s.logger.Info("alert enqueued", slog.String("user_id", req.UserID), slog.Int("count", count))
		}
	}

	return domain.AlertCountResponse{Count: count}, nil
}

func (s *nearbyService) rank(ctx context.Context, userID string, lat, lng *float64, radius float64, staleness time.Duration) ([]domain.NearbyMatch, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, e.ErrInvalidUserID
	}

	requester, err := s.records.GetRecord(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.ErrUnknownRequester
		}
		s.logger.Error("requester lookup failed", slog.Any("error", err), slog.String("user_id", userID))
		return nil, err
	}

	// The client's own fix, when supplied, beats the stored position.
	if lat != nil && lng != nil {
		if *lat < -90 || *lat > 90 || *lng < -180 || *lng > 180 {
			return nil, e.ErrInvalidCoordinates
		}
		requester.Coordinates = &domain.Coordinates{Lat: *lat, Lng: *lng}
	}

	pool, err := s.candidates(ctx)
	if err != nil {
		return nil, err
	}

	opts := match.Options{
		Now:          time.Now().UTC(),
		RadiusMeters: radius,
		Staleness:    staleness,
		Mode:         match.ModeFor(requester),
	}

	matches, err := match.Rank(requester, pool, opts)
	if err != nil {
		return nil, err
	}

	s.logger.Info("nearby ranked",
		slog.String("user_id", userID),
		slog.Int("pool", len(pool)),
		slog.Int("matches", len(matches)),
	)

	// audit write is best effort, a failed insert never fails the query
	check := &domain.NearbyCheck{
		UserID:     id,
		Lat:        lat,
		Lng:        lng,
		MatchCount: len(matches),
		CheckedAt:  opts.Now,
	}
	if err := s.checks.SaveCheck(ctx, check); err != nil {
		s.logger.Error("check audit save failed", slog.Any("error", err), slog.String("user_id", userID))
	}

	return matches, nil
}

func (s *nearbyService) candidates(ctx context.Context) ([]domain.UserLocationRecord, error) {
	pool, err := s.cache.GetSnapshot(ctx)
	if err != nil {
		s.logger.Warn("candidate cache read failed, falling back to store", slog.Any("error", err))
	}
	if pool != nil {
		if len(pool) > s.cfg.CandidateCap {
			pool = pool[:s.cfg.CandidateCap]
		}
		return pool, nil
	}

	pool, err = s.records.ListCandidates(ctx, s.cfg.CandidateCap)
	if err != nil {
		s.logger.Error("candidate list failed", slog.Any("error", err))
		return nil, err
	}
	return pool, nil
}
