//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
	"github.com/godiehurtado/nearsy-app-sub000/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS user_records (
			id uuid PRIMARY KEY,
			email text NOT NULL DEFAULT '',
			phone text NOT NULL DEFAULT '',
			visible boolean NOT NULL DEFAULT false,
			lat double precision,
			lng double precision,
			last_seen_at timestamptz,
			blocked_contacts text[] NOT NULL DEFAULT '{}',
			is_demo boolean NOT NULL DEFAULT false,
			is_reviewer boolean NOT NULL DEFAULT false,
			created_at timestamptz NOT NULL,
			deleted_at timestamptz
		);

		CREATE TABLE IF NOT EXISTS nearby_checks (
			id uuid PRIMARY KEY,
			user_id uuid NOT NULL,
			lat double precision,
			lng double precision,
			match_count integer NOT NULL,
			checked_at timestamptz NOT NULL
		);
	`)
	return err
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `TRUNCATE TABLE user_records, nearby_checks`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func TestAccountRepo_Create_RoundTrip(t *testing.T) {
	truncateAll(t)

	repo := NewAccountRepo(testPool, testLogger())

	rec := &domain.UserLocationRecord{
		Email:       "alice@example.com",
		Phone:       "79990001122",
		Visible:     true,
		Coordinates: &domain.Coordinates{Lat: 55.75, Lng: 37.61},
		LastSeenAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.ID == uuid.Nil {
		t.Fatal("expected generated ID")
	}
	if rec.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt set")
	}

	got, err := repo.Get(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Email != rec.Email || got.Phone != rec.Phone || !got.Visible {
		t.Fatalf("unexpected row: %+v", got)
	}
	if got.Coordinates == nil || got.Coordinates.Lat != 55.75 || got.Coordinates.Lng != 37.61 {
		t.Fatalf("coordinates mismatch: %+v", got.Coordinates)
	}
	if !got.LastSeenAt.Equal(rec.LastSeenAt) {
		t.Fatalf("last_seen_at mismatch got=%v want=%v", got.LastSeenAt, rec.LastSeenAt)
	}
}

func TestAccountRepo_Create_NoCoordinates(t *testing.T) {
	truncateAll(t)

	repo := NewAccountRepo(testPool, testLogger())

	rec := &domain.UserLocationRecord{Visible: true}
	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Coordinates != nil {
		t.Fatalf("expected nil coordinates, got %+v", got.Coordinates)
	}
	if !got.LastSeenAt.IsZero() {
		t.Fatalf("expected zero last_seen_at, got %v", got.LastSeenAt)
	}
}

func TestAccountRepo_List_Pagination(t *testing.T) {
	truncateAll(t)

	repo := NewAccountRepo(testPool, testLogger())

	for i := 0; i < 3; i++ {
		rec := &domain.UserLocationRecord{
			Visible:   true,
			CreatedAt: time.Date(2025, 1, 1, 0, 0, i, 0, time.UTC),
		}
		if err := repo.Create(context.Background(), rec); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	list1, total, err := repo.List(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total=3 got=%d", total)
	}
	if len(list1) != 2 {
		t.Fatalf("expected len=2 got=%d", len(list1))
	}
	if list1[0].CreatedAt.Before(list1[1].CreatedAt) {
		t.Fatal("expected DESC order by created_at")
	}

	list2, _, err := repo.List(context.Background(), 2, 2)
	if err != nil {
		t.Fatalf("List page2: %v", err)
	}
	if len(list2) != 1 {
		t.Fatalf("expected len=1 got=%d", len(list2))
	}
}

func TestAccountRepo_Delete_Soft(t *testing.T) {
	truncateAll(t)

	repo := NewAccountRepo(testPool, testLogger())

	rec := &domain.UserLocationRecord{Visible: true}
	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(context.Background(), rec.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repo.Get(context.Background(), rec.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got: %v", err)
	}

	if err := repo.Delete(context.Background(), rec.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got: %v", err)
	}
}

func TestRecordRepo_SaveLocation_BumpsLastSeen(t *testing.T) {
	truncateAll(t)

	accounts := NewAccountRepo(testPool, testLogger())
	records := NewRecordRepo(testPool, testLogger())

	rec := &domain.UserLocationRecord{Visible: true}
	if err := accounts.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := records.SaveLocation(context.Background(), rec.ID, 48.85, 2.35); err != nil {
		t.Fatalf("SaveLocation: %v", err)
	}

	got, err := records.GetRecord(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if got.Coordinates == nil || got.Coordinates.Lat != 48.85 || got.Coordinates.Lng != 2.35 {
		t.Fatalf("coordinates mismatch: %+v", got.Coordinates)
	}
	if got.LastSeenAt.IsZero() {
		t.Fatal("expected last_seen_at to be set")
	}
}

func TestRecordRepo_SaveLocation_RejectsOutOfRange(t *testing.T) {
	truncateAll(t)

	records := NewRecordRepo(testPool, testLogger())

	err := records.SaveLocation(context.Background(), uuid.New(), 91, 0)
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got: %v", err)
	}
}

func TestRecordRepo_BlockedContacts_Idempotent(t *testing.T) {
	truncateAll(t)

	accounts := NewAccountRepo(testPool, testLogger())
	records := NewRecordRepo(testPool, testLogger())

	rec := &domain.UserLocationRecord{Visible: true}
	if err := accounts.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := records.AddBlockedContact(context.Background(), rec.ID, "bob@example.com"); err != nil {
			t.Fatalf("AddBlockedContact: %v", err)
		}
	}

	got, err := records.GetRecord(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if len(got.BlockedContacts) != 1 || got.BlockedContacts[0] != "bob@example.com" {
		t.Fatalf("expected single blocked contact, got %v", got.BlockedContacts)
	}

	if err := records.RemoveBlockedContact(context.Background(), rec.ID, "bob@example.com"); err != nil {
		t.Fatalf("RemoveBlockedContact: %v", err)
	}

	got, err = records.GetRecord(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if len(got.BlockedContacts) != 0 {
		t.Fatalf("expected empty block list, got %v", got.BlockedContacts)
	}
}

func TestRecordRepo_ListCandidates_VisibleOrDemo(t *testing.T) {
	truncateAll(t)

	accounts := NewAccountRepo(testPool, testLogger())
	records := NewRecordRepo(testPool, testLogger())

	visible := &domain.UserLocationRecord{Visible: true}
	hidden := &domain.UserLocationRecord{Visible: false}
	demoHidden := &domain.UserLocationRecord{Visible: false, IsDemoUser: true}

	for _, rec := range []*domain.UserLocationRecord{visible, hidden, demoHidden} {
		if err := accounts.Create(context.Background(), rec); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := records.ListCandidates(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListCandidates: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates (visible + hidden demo), got %d", len(got))
	}
	for _, rec := range got {
		if rec.ID == hidden.ID {
			t.Fatal("hidden non-demo record must not be listed")
		}
	}
}

func TestStatsRepo_CountUniqueRequesters(t *testing.T) {
	truncateAll(t)

	stats := NewStats(testPool, testLogger())

	userA := uuid.New()
	userB := uuid.New()

	for _, uid := range []uuid.UUID{userA, userA, userB} {
		check := &domain.NearbyCheck{
			UserID:     uid,
			MatchCount: 1,
			CheckedAt:  time.Now().UTC(),
		}
		if err := stats.SaveCheck(context.Background(), check); err != nil {
			t.Fatalf("SaveCheck: %v", err)
		}
	}

	// one stale row outside any window we query
	old := &domain.NearbyCheck{
		UserID:     uuid.New(),
		MatchCount: 0,
		CheckedAt:  time.Now().UTC().Add(-48 * time.Hour),
	}
	if err := stats.SaveCheck(context.Background(), old); err != nil {
		t.Fatalf("SaveCheck old: %v", err)
	}

	cnt, err := stats.CountUniqueRequesters(context.Background(), 60)
	if err != nil {
		t.Fatalf("CountUniqueRequesters: %v", err)
	}
	if cnt != 2 {
		t.Fatalf("expected 2 unique requesters, got %d", cnt)
	}
}
