package public_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"log/slog"

	"github.com/golang/mock/gomock"

	"github.com/godiehurtado/nearsy-app-sub000/internal/api/handlers/http/public"
	mock_public "github.com/godiehurtado/nearsy-app-sub000/internal/api/handlers/http/public/mocks"
	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
	"github.com/godiehurtado/nearsy-app-sub000/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestPublicNearbySearch_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockNearbyFinder(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	reqBody := `{"user_id":"00000000-0000-0000-0000-000000000001","lat":55.75,"lng":37.61}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/nearby/search", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	lat, lng := 55.75, 37.61
	wantReq := domain.NearbySearchRequest{
		UserID: "00000000-0000-0000-0000-000000000001",
		Lat:    &lat,
		Lng:    &lng,
	}
	dist := 4.2
	wantResp := domain.NearbySearchResponse{
		Matches: []domain.NearbyMatch{
			{UserID: "11111111-1111-1111-1111-111111111111", DistanceM: &dist},
		},
	}

	svc.EXPECT().
		FindNearby(gomock.Any(), wantReq).
		Return(wantResp, nil).
		Times(1)

	h.PublicNearbySearch(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.NearbySearchResponse](t, rr)
	if !reflect.DeepEqual(got, wantResp) {
		t.Fatalf("unexpected response: got=%+v want=%+v", got, wantResp)
	}
}

func TestPublicNearbySearch_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockNearbyFinder(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/nearby/search", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()

	h.PublicNearbySearch(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestPublicNearbySearch_UnknownField_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockNearbyFinder(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	reqBody := `{"user_id":"00000000-0000-0000-0000-000000000001","surprise":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/nearby/search", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.PublicNearbySearch(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestPublicNearbySearch_TrailingData_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockNearbyFinder(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	reqBody := `{"user_id":"00000000-0000-0000-0000-000000000001"}{"again":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/nearby/search", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.PublicNearbySearch(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestPublicNearbySearch_BadUserID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockNearbyFinder(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	// fails the uuid validate tag before the service is reached
	reqBody := `{"user_id":"not-a-uuid"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/nearby/search", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.PublicNearbySearch(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestPublicNearbySearch_UnknownRequester_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockNearbyFinder(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	reqBody := `{"user_id":"00000000-0000-0000-0000-000000000001"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/nearby/search", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	svc.EXPECT().
		FindNearby(gomock.Any(), gomock.Any()).
		Return(domain.NearbySearchResponse{}, e.ErrUnknownRequester)

	h.PublicNearbySearch(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestPublicAlertCount_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_public.NewMockNearbyFinder(ctrl)
	h := public.NewHandler(newTestLogger(), svc)

	reqBody := `{"user_id":"00000000-0000-0000-0000-000000000001"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/nearby/alerts/count", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	svc.EXPECT().
		CountAlerts(gomock.Any(), domain.AlertCountRequest{UserID: "00000000-0000-0000-0000-000000000001"}).
		Return(domain.AlertCountResponse{Count: 3}, nil)

	h.PublicAlertCount(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.AlertCountResponse](t, rr)
	if got.Count != 3 {
		t.Fatalf("count = %d, want 3", got.Count)
	}
}
