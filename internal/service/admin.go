package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
)

func (s *Service) Create(ctx context.Context, req domain.CreateAccountRequest) (uuid.UUID, error) {
	return s.AdminAccountService.Create(ctx, req)
}

func (s *Service) List(ctx context.Context, page, limit int) ([]domain.UserLocationRecord, int64, error) {
	return s.AdminAccountService.List(ctx, page, limit)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.UserLocationRecord, error) {
	return s.AdminAccountService.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req domain.UpdateAccountRequest) error {
	return s.AdminAccountService.Update(ctx, id, req)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.AdminAccountService.Delete(ctx, id)
}
