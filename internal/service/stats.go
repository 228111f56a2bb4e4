package service

import (
	"context"

	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
)

func (s *Service) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.NearbyStats, error) {
	return s.StatsService.GetStats(ctx, req)
}
