package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	application "art-market/internal/applicationService"
	bidding "art-market/internal/biddingService"
	"art-market/internal/config"
	listing "art-market/internal/listingService"
	"art-market/internal/policy"
	"art-market/internal/repository"
	"art-market/internal/scheduler"
	"art-market/internal/seed"
	"art-market/internal/server"
	"art-market/internal/session"
	"art-market/internal/storage"
	"art-market/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}
	utils.SetLevel(cfg.LogLevel)
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo := repository.NewMemoryRepo()
	biddingSvc := bidding.NewBiddingService(repo)
	listingSvc := listing.NewListingService(repo, biddingSvc)
	applicationSvc := application.NewApplicationService(repo)

	if err := seed.Run(seed.Services{
		Bidding:      biddingSvc,
		Listings:     listingSvc,
		Applications: applicationSvc,
	}, biddingSvc.Now()); err != nil {
		utils.Warn("failed to seed demo data", map[string]any{"error": err.Error()})
	}

	sessions, closeSessions, err := buildSessions(ctx, cfg)
	if err != nil {
		utils.Fatal("failed to set up session storage", map[string]any{"backend": cfg.Session.Backend, "error": err.Error()})
	}
	defer closeSessions()

	sweeper, err := scheduler.NewCronService(cfg.SweepSchedule, biddingSvc)
	if err != nil {
		utils.Fatal("failed to schedule auction sweep", map[string]any{"error": err.Error()})
	}
	sweeper.Start()

	router := server.SetupRouter(sessions, server.Services{
		Bidding:      biddingSvc,
		Listings:     listingSvc,
		Applications: applicationSvc,
	})

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		})(router),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		utils.Info("starting art market server", map[string]any{
			"addr":            srv.Addr,
			"mode":            cfg.AppMode,
			"session_backend": cfg.Session.Backend,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Error("server stopped unexpectedly", map[string]any{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()
	utils.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("graceful shutdown failed", map[string]any{"error": err.Error()})
	}
	sweeper.Stop(shutdownCtx)
	utils.Info("server stopped", nil)
}

// buildSessions wires the configured session backend. Cookie sessions are
// per client; file and redis back one shared session restored in the
// background.
func buildSessions(ctx context.Context, cfg *config.Config) (server.SessionProvider, func(), error) {
	creds, err := session.DemoCredentials()
	if err != nil {
		return nil, nil, err
	}
	opts := session.Options{
		Credentials:  creds,
		DemoFallback: cfg.Session.DemoFallback,
	}
	if cfg.Session.DemoFallback {
		utils.Warn("demo login fallback is enabled; unknown credentials sign in as customers", nil)
	}

	var (
		st      storage.Storage
		cleanup = func() {}
	)
	switch cfg.Session.Backend {
	case config.BackendCookie:
		return server.CookieSessions{
			Codec: storage.CookieCodec{
				Name:   cfg.Session.Key,
				Secret: []byte(cfg.Session.Secret),
				TTL:    cfg.Session.TTL,
				Secure: cfg.Session.Secure,
			},
			Options: opts,
		}, cleanup, nil

	case config.BackendFile:
		f, err := storage.NewFile(cfg.Session.Dir, cfg.Session.Key)
		if err != nil {
			return nil, nil, err
		}
		st = f

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			utils.Warn("redis unreachable; session restore will come up empty", map[string]any{"addr": cfg.Redis.Addr, "error": err.Error()})
		}
		st = storage.NewRedis(client, cfg.Session.Key, cfg.Session.TTL)
		cleanup = func() { _ = client.Close() }
	}

	store := session.NewStore(st, nil, opts)
	go store.Restore(ctx, policy.RootPath)
	return server.SharedSessions{Store: store}, cleanup, nil
}
