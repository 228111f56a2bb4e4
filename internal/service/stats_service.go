package service

import (
	"context"

	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
)

type statsService struct {
	checks CheckStore
}

func NewStatsService(checks CheckStore) StatsService {
	return &statsService{checks: checks}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.NearbyStats, error) {
	cnt, err := s.checks.CountUniqueRequesters(ctx, req.Minutes)
	if err != nil {
		return nil, err
	}
	return &domain.NearbyStats{UserCount: cnt}, nil
}
