package service

import (
	"context"
	"strings"
	"unicode"

	"log/slog"

	"github.com/google/uuid"

	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
	"github.com/godiehurtado/nearsy-app-sub000/internal/match"
	"github.com/godiehurtado/nearsy-app-sub000/pkg/e"
)

type profileService struct {
	records RecordStore
	logger  *slog.Logger
}

func NewProfileService(records RecordStore, logger *slog.Logger) ProfileService {
	return &profileService{records: records, logger: logger}
}

func (s *profileService) ReportLocation(ctx context.Context, userID string, req domain.ReportLocationRequest) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return e.ErrInvalidUserID
	}
	if req.Lat == nil || req.Lng == nil {
		return e.ErrInvalidCoordinates
	}

	if err := s.records.SaveLocation(ctx, id, *req.Lat, *req.Lng); err != nil {
		return err
	}

	s.logger.Debug("location reported",
		slog.String("user_id", userID),
		slog.Float64("lat", *req.Lat),
		slog.Float64("lng", *req.Lng),
	)
	return nil
}

func (s *profileService) SetVisibility(ctx context.Context, userID string, req domain.SetVisibilityRequest) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return e.ErrInvalidUserID
	}
	if req.Visible == nil {
		return e.ErrInvalidInput
	}

	if err := s.records.SetVisibility(ctx, id, *req.Visible); err != nil {
		return err
	}

	s.logger.Info("visibility toggled", slog.String("user_id", userID), slog.Bool("visible", *req.Visible))
	return nil
}

// BlockContact stores the identifier normalized, the same form the
// block resolver compares against on the read path.
func (s *profileService) BlockContact(ctx context.Context, userID string, req domain.BlockContactRequest) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return e.ErrInvalidUserID
	}

	identifier := match.NormalizeIdentifier(req.Identifier)
	if identifier == "" {
		return e.ErrInvalidInput
	}

	if err := s.records.AddBlockedContact(ctx, id, identifier); err != nil {
		return err
	}

	s.logger.Info("contact blocked", slog.String("user_id", userID))
	return nil
}

func (s *profileService) UnblockContact(ctx context.Context, userID string, req domain.BlockContactRequest) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return e.ErrInvalidUserID
	}

	identifier := match.NormalizeIdentifier(req.Identifier)
	if identifier == "" {
		return e.ErrInvalidInput
	}

	if err := s.records.RemoveBlockedContact(ctx, id, identifier); err != nil {
		return err
	}

	s.logger.Info("contact unblocked", slog.String("user_id", userID))
	return nil
}

// normalizePhone keeps digits only, matching how the mobile client
// hashes synced contacts.
func normalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
