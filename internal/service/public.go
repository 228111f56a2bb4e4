package service

import (
	"context"

	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
)

func (s *Service) FindNearby(ctx context.Context, req domain.NearbySearchRequest) (domain.NearbySearchResponse, error) {
	return s.NearbyService.FindNearby(ctx, req)
}

func (s *Service) CountAlerts(ctx context.Context, req domain.AlertCountRequest) (domain.AlertCountResponse, error) {
	return s.NearbyService.CountAlerts(ctx, req)
}
