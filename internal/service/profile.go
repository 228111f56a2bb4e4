package service

import (
	"context"

	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
)

func (s *Service) ReportLocation(ctx context.Context, userID string, req domain.ReportLocationRequest) error {
	return s.ProfileService.ReportLocation(ctx, userID, req)
}

func (s *Service) SetVisibility(ctx context.Context, userID string, req domain.SetVisibilityRequest) error {
	return s.ProfileService.SetVisibility(ctx, userID, req)
}

func (s *Service) BlockContact(ctx context.Context, userID string, req domain.BlockContactRequest) error {
	return s.ProfileService.BlockContact(ctx, userID, req)
}

func (s *Service) UnblockContact(ctx context.Context, userID string, req domain.BlockContactRequest) error {
	return s.ProfileService.UnblockContact(ctx, userID, req)
}
