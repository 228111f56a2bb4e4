package profile_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/godiehurtado/nearsy-app-sub000/internal/api/handlers/http/profile"
	mock_profile "github.com/godiehurtado/nearsy-app-sub000/internal/api/handlers/http/profile/mocks"
	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
	"github.com/godiehurtado/nearsy-app-sub000/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestProfileReportLocation_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_profile.NewMockProfileWriter(ctrl)
	h := profile.NewHandler(newTestLogger(), svc)

	userID := uuid.NewString()
	reqBody := `{"lat":55.75,"lng":37.61}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/users/"+userID+"/location", bytes.NewBufferString(reqBody))
	req = addChiURLParam(req, "id", userID)
	rr := httptest.NewRecorder()

	lat, lng := 55.75, 37.61
	svc.EXPECT().
		ReportLocation(gomock.Any(), userID, domain.ReportLocationRequest{Lat: &lat, Lng: &lng}).
		Return(nil).
		Times(1)

	h.ProfileReportLocation(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestProfileReportLocation_OutOfRangeLat_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_profile.NewMockProfileWriter(ctrl)
	h := profile.NewHandler(newTestLogger(), svc)

	userID := uuid.NewString()
	reqBody := `{"lat":95.0,"lng":37.61}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/users/"+userID+"/location", bytes.NewBufferString(reqBody))
	req = addChiURLParam(req, "id", userID)
	rr := httptest.NewRecorder()

	h.ProfileReportLocation(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestProfileSetVisibility_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_profile.NewMockProfileWriter(ctrl)
	h := profile.NewHandler(newTestLogger(), svc)

	userID := uuid.NewString()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/users/"+userID+"/visibility", bytes.NewBufferString(`{"visible":false}`))
	req = addChiURLParam(req, "id", userID)
	rr := httptest.NewRecorder()

	visible := false
	svc.EXPECT().
		SetVisibility(gomock.Any(), userID, domain.SetVisibilityRequest{Visible: &visible}).
		Return(nil).
		Times(1)

	h.ProfileSetVisibility(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestProfileBlockContact_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_profile.NewMockProfileWriter(ctrl)
	h := profile.NewHandler(newTestLogger(), svc)

	userID := uuid.NewString()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/"+userID+"/blocks", bytes.NewBufferString(`{"identifier":"alice@example.com"}`))
	req = addChiURLParam(req, "id", userID)
	rr := httptest.NewRecorder()

	svc.EXPECT().
		BlockContact(gomock.Any(), userID, domain.BlockContactRequest{Identifier: "alice@example.com"}).
		Return(nil).
		Times(1)

	h.ProfileBlockContact(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestProfileBlockContact_UnknownUser_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_profile.NewMockProfileWriter(ctrl)
	h := profile.NewHandler(newTestLogger(), svc)

	userID := uuid.NewString()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/"+userID+"/blocks", bytes.NewBufferString(`{"identifier":"alice@example.com"}`))
	req = addChiURLParam(req, "id", userID)
	rr := httptest.NewRecorder()

	svc.EXPECT().
		BlockContact(gomock.Any(), userID, gomock.Any()).
		Return(e.ErrNotFound)

	h.ProfileBlockContact(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestProfileUnblockContact_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_profile.NewMockProfileWriter(ctrl)
	h := profile.NewHandler(newTestLogger(), svc)

	userID := uuid.NewString()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/"+userID+"/blocks", bytes.NewBufferString(`{"identifier":"79990001122"}`))
	req = addChiURLParam(req, "id", userID)
	rr := httptest.NewRecorder()

	svc.EXPECT().
		UnblockContact(gomock.Any(), userID, domain.BlockContactRequest{Identifier: "79990001122"}).
		Return(nil).
		Times(1)

	h.ProfileUnblockContact(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}
