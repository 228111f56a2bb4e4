package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"log/slog"

	"github.com/godiehurtado/nearsy-app-sub000/internal/config"
	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
	"github.com/godiehurtado/nearsy-app-sub000/internal/redis"
	"github.com/godiehurtado/nearsy-app-sub000/pkg/e"
)

// PushSender drains the alert queue and forwards payloads to the push
// notification gateway. Delivery is at-least-once with bounded retry.
type PushSender struct {
	logger *slog.Logger
	cfg    config.PushConfig
	queue  *redis.AlertQueue
	http   *http.Client
}

func NewPushSender(logger *slog.Logger, cfg config.PushConfig, q *redis.AlertQueue) *PushSender {
	return &PushSender{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *PushSender) Run(ctx context.Context) {
	s.logger.Info("push sender started", slog.String("url", s.cfg.GatewayURL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("push sender stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		payload, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrAlertQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			s.logger.Error("alert queue pop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.logger.Info("sending alert push", slog.String("user_id", payload.UserID), slog.Int("count", payload.Count))
		s.sendWithRetry(ctx, payload)
	}
}

func (s *PushSender) sendWithRetry(ctx context.Context, p domain.AlertPayload) {
	const maxRetries = 3

	body, err := json.Marshal(p)
	if err != nil {
		s.logger.Error("marshal alert payload failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.GatewayURL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create push request failed", slog.String("error", err.Error()))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("push delivery failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.GatewayURL),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}
}
