package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/godiehurtado/nearsy-app-sub000/internal/api/handlers/http/admin"
	"github.com/godiehurtado/nearsy-app-sub000/internal/api/handlers/http/profile"
	"github.com/godiehurtado/nearsy-app-sub000/internal/api/handlers/http/public"
	"github.com/godiehurtado/nearsy-app-sub000/internal/api/handlers/http/system"
	"github.com/godiehurtado/nearsy-app-sub000/internal/config"
	"github.com/godiehurtado/nearsy-app-sub000/internal/middleware"
	"github.com/godiehurtado/nearsy-app-sub000/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	adminHandler := admin.NewHandler(logger, svc.AdminAccountService, svc.StatsService)
	publicHandler := public.NewHandler(logger, svc.NearbyService)
	profileHandler := profile.NewHandler(logger, svc.ProfileService)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, adminHandler, publicHandler, profileHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	cfg *config.Config,
	adminHandler *admin.Handler,
	publicHandler *public.Handler,
	profileHandler *profile.Handler,
	systemHandler *system.Handler,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKey(cfg.APIKey, logger))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Get("/stats", adminHandler.AdminStats)

			ar.Route("/accounts", func(acc chi.Router) {
				acc.Post("/", adminHandler.AdminAccountCreate)
				acc.Get("/", adminHandler.AdminAccountList)

				acc.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", adminHandler.AdminAccountGet)
					rr.Put("/", adminHandler.AdminAccountUpdate)
					rr.Delete("/", adminHandler.AdminAccountDelete)
				})
			})
		})

		// PUBLIC
		api.Route("/nearby", func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			pr.Post("/search", publicHandler.PublicNearbySearch)
			pr.Post("/alerts/count", publicHandler.PublicAlertCount)
		})

		// PROFILE
		api.Route("/users/{id}", func(ur chi.Router) {
			ur.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			ur.Put("/location", profileHandler.ProfileReportLocation)
			ur.Put("/visibility", profileHandler.ProfileSetVisibility)
			ur.Post("/blocks", profileHandler.ProfileBlockContact)
			ur.Delete("/blocks", profileHandler.ProfileUnblockContact)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
