package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"log/slog"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
	mock_service "github.com/godiehurtado/nearsy-app-sub000/internal/service/mocks"
	"github.com/godiehurtado/nearsy-app-sub000/pkg/e"
)

func newProfileFixture(t *testing.T) (*mock_service.MockRecordStore, ProfileService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	records := mock_service.NewMockRecordStore(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return records, NewProfileService(records, logger)
}

func TestReportLocation(t *testing.T) {
	records, svc := newProfileFixture(t)

	id := uuid.New()
	lat, lng := 55.75, 37.62
	records.EXPECT().SaveLocation(gomock.Any(), id, lat, lng).Return(nil)

	err := svc.ReportLocation(context.Background(), id.String(), domain.ReportLocationRequest{Lat: &lat, Lng: &lng})
	if err != nil {
		t.Fatalf("ReportLocation: %v", err)
	}
}

func TestReportLocation_MissingCoordinates(t *testing.T) {
	_, svc := newProfileFixture(t)

	lat := 55.75
	err := svc.ReportLocation(context.Background(), uuid.NewString(), domain.ReportLocationRequest{Lat: &lat})
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("got %v, want ErrInvalidCoordinates", err)
	}
}

func TestSetVisibility(t *testing.T) {
	records, svc := newProfileFixture(t)

	id := uuid.New()
	visible := false
	records.EXPECT().SetVisibility(gomock.Any(), id, false).Return(nil)

	err := svc.SetVisibility(context.Background(), id.String(), domain.SetVisibilityRequest{Visible: &visible})
	if err != nil {
		t.Fatalf("SetVisibility: %v", err)
	}
}

func TestBlockContact_NormalizesIdentifier(t *testing.T) {
	records, svc := newProfileFixture(t)

	id := uuid.New()
	records.EXPECT().AddBlockedContact(gomock.Any(), id, "alice@example.com").Return(nil)

	err := svc.BlockContact(context.Background(), id.String(), domain.BlockContactRequest{Identifier: "  Alice@Example.COM "})
	if err != nil {
		t.Fatalf("BlockContact: %v", err)
	}
}

func TestBlockContact_EmptyIdentifier(t *testing.T) {
	_, svc := newProfileFixture(t)

	err := svc.BlockContact(context.Background(), uuid.NewString(), domain.BlockContactRequest{Identifier: "   "})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

func TestUnblockContact(t *testing.T) {
	records, svc := newProfileFixture(t)

	id := uuid.New()
	records.EXPECT().RemoveBlockedContact(gomock.Any(), id, "79990001122").Return(nil)

	err := svc.UnblockContact(context.Background(), id.String(), domain.BlockContactRequest{Identifier: "79990001122"})
	if err != nil {
		t.Fatalf("UnblockContact: %v", err)
	}
}

func TestProfile_InvalidUserID(t *testing.T) {
	_, svc := newProfileFixture(t)

	visible := true
	if err := svc.SetVisibility(context.Background(), "nope", domain.SetVisibilityRequest{Visible: &visible}); !errors.Is(err, e.ErrInvalidUserID) {
		t.Fatalf("got %v, want ErrInvalidUserID", err)
	}
}
