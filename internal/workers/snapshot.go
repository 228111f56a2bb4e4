package workers

import (
	"context"
	"time"

	"log/slog"

	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
)

type CandidateSource interface {
	ListCandidates(ctx context.Context, limit int) ([]domain.UserLocationRecord, error)
}

type SnapshotSink interface {
	SetSnapshot(ctx context.Context, records []domain.UserLocationRecord, ttl time.Duration) error
}

// SnapshotRefresher keeps the candidate snapshot in redis warm so the
// nearby queries stay off postgres on the hot path.
type SnapshotRefresher struct {
	source   CandidateSource
	sink     SnapshotSink
	logger   *slog.Logger
	interval time.Duration
	ttl      time.Duration
	limit    int
}

func NewSnapshotRefresher(source CandidateSource, sink SnapshotSink, logger *slog.Logger, interval, ttl time.Duration, limit int) *SnapshotRefresher {
	return &SnapshotRefresher{
		source:   source,
		sink:     sink,
		logger:   logger,
		interval: interval,
		ttl:      ttl,
		limit:    limit,
	}
}

func (w *SnapshotRefresher) Run(ctx context.Context) {
	// warm once on start, then on every tick
	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *SnapshotRefresher) refresh(ctx context.Context) {
	records, err := w.source.ListCandidates(ctx, w.limit)
	if err != nil {
		w.logger.Error("snapshot refresh: candidate list failed", slog.Any("error", err))
		return
	}

	if err := w.sink.SetSnapshot(ctx, records, w.ttl); err != nil {
		w.logger.Error("snapshot refresh: cache write failed", slog.Any("error", err))
		return
	}

	w.logger.Debug("snapshot refreshed", slog.Int("candidates", len(records)))
}
