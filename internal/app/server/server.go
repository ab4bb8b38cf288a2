package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"scorecard/internal/domain/auth"
	"scorecard/internal/domain/notifications"
	"scorecard/internal/domain/peerfeedback"
	"scorecard/internal/domain/recognition"
	"scorecard/internal/domain/reports"
	"scorecard/internal/domain/scorecard"
	"scorecard/internal/domain/targets"
	"scorecard/internal/platform/cache"
	"scorecard/internal/platform/config"
	"scorecard/internal/platform/db"
	"scorecard/internal/platform/email"
	"scorecard/internal/platform/jobs"
	"scorecard/internal/platform/metrics"
	"scorecard/internal/transport/http/api"
	authhandler "scorecard/internal/transport/http/handlers/auth"
	notificationshandler "scorecard/internal/transport/http/handlers/notifications"
	peerfeedbackhandler "scorecard/internal/transport/http/handlers/peerfeedback"
	recognitionhandler "scorecard/internal/transport/http/handlers/recognition"
	reportshandler "scorecard/internal/transport/http/handlers/reports"
	reviewshandler "scorecard/internal/transport/http/handlers/reviews"
	scorecardhandler "scorecard/internal/transport/http/handlers/scorecards"
	targetshandler "scorecard/internal/transport/http/handlers/targets"
	"scorecard/internal/transport/http/middleware"
)

func Run(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	var store *cache.Cache
	if cfg.RedisEnabled {
		store, err = cache.New(ctx,
			cache.WithAddress(cfg.RedisAddr),
			cache.WithPassword(cfg.RedisPassword),
			cache.WithDB(cfg.RedisDB),
		)
		if err != nil {
			return fmt.Errorf("redis connect: %w", err)
		}
		defer func() { _ = store.Close() }()
	}

	rules := auth.Rules{}
	authService := auth.NewService(auth.NewStore(pool), cfg.JWTSecret)

	scorecardStore := scorecard.NewStore(pool)
	scorecardService := scorecard.NewService(scorecardStore)

	targetsService := targets.NewService(targets.NewStore(pool))

	notifyService := notifications.New(notifications.NewStore(pool), email.New(cfg), cfg.EmailFrom)

	var peerCache peerfeedback.CacheAPI
	var recognitionCache recognition.CacheAPI
	if store != nil {
		peerCache = store
		recognitionCache = store
	}
	peerService := peerfeedback.NewService(peerfeedback.NewStore(pool), peerCache)

	recognitionService := recognition.NewService(
		recognition.NewStore(pool), scorecardStore, peerService, notifyService, recognitionCache)

	reportsService := reports.NewService(scorecardStore, authService.Store)

	collector := metrics.New()

	scheduler := jobs.New(pool, cfg, notifyService, recognitionService)
	scheduler.Start(ctx)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	if cfg.MetricsEnabled {
		router.Use(middleware.Logger(collector))
	} else {
		router.Use(middleware.Logger(nil))
	}
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		loginLimit := middleware.LoginRateLimit(cfg.RateLimitPerMinute, time.Minute)
		authhandler.NewHandler(authService, loginLimit).RegisterRoutes(r)
		scorecardhandler.NewHandler(scorecardService, rules).RegisterRoutes(r)
		targetshandler.NewHandler(targetsService, rules).RegisterRoutes(r)
		peerfeedbackhandler.NewHandler(peerService, rules).RegisterRoutes(r)
		recognitionhandler.NewHandler(recognitionService, rules).RegisterRoutes(r)
		reviewshandler.NewHandler(scorecardService, rules).RegisterRoutes(r)
		reportshandler.NewHandler(reportsService, rules).RegisterRoutes(r)
		notificationshandler.NewHandler(notifyService, rules).RegisterRoutes(r)

		if cfg.MetricsEnabled {
			r.With(middleware.RequirePermission(auth.PermAdminMetrics, rules)).
				Get("/admin/metrics", func(w http.ResponseWriter, req *http.Request) {
					api.Success(w, collector.Snapshot(), middleware.GetRequestID(req.Context()))
				})
		}
	})

	slog.Info("scorecard server listening", "addr", cfg.Addr, "env", cfg.Environment)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
