package workers

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
)

type stubSource struct {
	records []domain.UserLocationRecord
	err     error
}

func (s *stubSource) ListCandidates(ctx context.Context, limit int) ([]domain.UserLocationRecord, error) {
	return s.records, s.err
}

type stubSink struct {
	got   []domain.UserLocationRecord
	ttl   time.Duration
	calls int
}

func (s *stubSink) SetSnapshot(ctx context.Context, records []domain.UserLocationRecord, ttl time.Duration) error {
	s.got = records
	s.ttl = ttl
	s.calls++
	return nil
}

func TestSnapshotRefresher_Refresh(t *testing.T) {
	source := &stubSource{records: []domain.UserLocationRecord{{ID: uuid.New(), Visible: true}}}
	sink := &stubSink{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	w := NewSnapshotRefresher(source, sink, logger, time.Minute, 45*time.Second, 300)
	w.refresh(context.Background())

	if sink.calls != 1 {
		t.Fatalf("sink called %d times, want 1", sink.calls)
	}
	if len(sink.got) != 1 {
		t.Fatalf("snapshot has %d records, want 1", len(sink.got))
	}
	if sink.ttl != 45*time.Second {
		t.Errorf("ttl = %v, want 45s", sink.ttl)
	}
}

func TestSnapshotRefresher_SourceErrorSkipsWrite(t *testing.T) {
	source := &stubSource{err: errors.New("pg down")}
	sink := &stubSink{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	w := NewSnapshotRefresher(source, sink, logger, time.Minute, time.Minute, 300)
	w.refresh(context.Background())

	if sink.calls != 0 {
		t.Fatalf("sink called %d times, want 0", sink.calls)
	}
}

func TestSnapshotRefresher_StopsOnContextCancel(t *testing.T) {
	source := &stubSource{}
	sink := &stubSink{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	w := NewSnapshotRefresher(source, sink, logger, 10*time.Millisecond, time.Minute, 300)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	time.Sleep(25 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop after cancel")
	}

	if sink.calls == 0 {
		t.Fatal("expected at least the warm-up refresh")
	}
}
