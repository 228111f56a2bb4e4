package service

import (
	"context"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
	"github.com/godiehurtado/nearsy-app-sub000/internal/match"
)

type adminAccountService struct {
	accounts AccountStore
	logger   *slog.Logger
}

func NewAdminAccountService(accounts AccountStore, logger *slog.Logger) AdminAccountService {
	return &adminAccountService{accounts: accounts, logger: logger}
}

func (s *adminAccountService) Create(ctx context.Context, req domain.CreateAccountRequest) (uuid.UUID, error) {
	rec := &domain.UserLocationRecord{
		ID:              uuid.New(),
		Email:           match.NormalizeIdentifier(req.Email),
		Phone:           normalizePhone(req.Phone),
		Visible:         req.Visible,
		BlockedContacts: []string{},
		IsDemoUser:      req.IsDemoUser,
		IsReviewer:      req.IsReviewer,
		CreatedAt:       time.Now().UTC(),
	}
	if req.Lat != nil && req.Lng != nil {
		rec.Coordinates = &domain.Coordinates{Lat: *req.Lat, Lng: *req.Lng}
		rec.LastSeenAt = rec.CreatedAt
	}

	if err := s.accounts.Create(ctx, rec); err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("account created",
		slog.String("id", rec.ID.String()),
		slog.Bool("demo", rec.IsDemoUser),
		slog.Bool("reviewer", rec.IsReviewer),
	)
	return rec.ID, nil
}

func (s *adminAccountService) List(ctx context.Context, page, limit int) ([]domain.UserLocationRecord, int64, error) {
	return s.accounts.List(ctx, page, limit)
}

func (s *adminAccountService) Get(ctx context.Context, id uuid.UUID) (*domain.UserLocationRecord, error) {
	return s.accounts.Get(ctx, id)
}

func (s *adminAccountService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateAccountRequest) error {
	rec, err := s.accounts.Get(ctx, id)
	if err != nil {
		return err
	}

	if req.Email != nil {
		rec.Email = match.NormalizeIdentifier(*req.Email)
	}
	if req.Phone != nil {
		rec.Phone = normalizePhone(*req.Phone)
	}
	if req.Visible != nil {
		rec.Visible = *req.Visible
	}
	if req.Lat != nil && req.Lng != nil {
		rec.Coordinates = &domain.Coordinates{Lat: *req.Lat, Lng: *req.Lng}
		rec.LastSeenAt = time.Now().UTC()
	}
	if req.IsDemoUser != nil {
		rec.IsDemoUser = *req.IsDemoUser
	}
	if req.IsReviewer != nil {
		rec.IsReviewer = *req.IsReviewer
	}

	return s.accounts.Update(ctx, rec)
}

func (s *adminAccountService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.accounts.Delete(ctx, id)
}
