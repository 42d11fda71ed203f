package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/erazemk/kampus/internal/api"
	"github.com/erazemk/kampus/internal/campus"
	"github.com/erazemk/kampus/internal/config"
	"github.com/erazemk/kampus/internal/db"
	"github.com/erazemk/kampus/internal/notify"
	"github.com/erazemk/kampus/internal/prefs"
	"github.com/erazemk/kampus/internal/seed"
	"github.com/erazemk/kampus/internal/store"
)

// purgeInterval is how often expired token revocations are dropped.
const purgeInterval = time.Hour

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Parse(os.Args[1:], os.Getenv, os.Stdout)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	closeLog, err := setupLogger(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg); err != nil {
		slog.Error("fatal", "error", err)
		closeLog()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()
	slog.Info("database ready", "path", cfg.DBPath)

	password, err := ensureAdmin(ctx, database, cfg.AdminUser)
	if err != nil {
		return err
	}
	if password != "" {
		printAdmin(cfg.DBPath, cfg.AdminUser, password)
	}

	jwtSecret, err := store.GetJWTSecret(ctx, database)
	if err != nil {
		return fmt.Errorf("loading JWT secret: %w", err)
	}

	provider, err := loadSeed(cfg.SeedPath)
	if err != nil {
		return err
	}

	prefStore, closePrefs := openPrefs(ctx, cfg, database)
	defer closePrefs()

	publisher, closePublisher := openPublisher(cfg)
	defer closePublisher()

	router := api.NewRouter(api.Deps{
		DB:        database,
		JWTSecret: jwtSecret,
		Sessions:  campus.NewRegistry(provider, cfg.Fallback),
		Prefs:     prefStore,
		Publisher: publisher,
	})

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.LoggingMiddleware(router),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go purgeRevokedTokens(ctx, database)

	go func() {
		<-ctx.Done()
		slog.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", cfg.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped, closing database")
	return nil
}

// loadSeed returns the catalogs every new session starts from.
func loadSeed(path string) (seed.Provider, error) {
	if path == "" {
		slog.Info("using built-in sample campus")
		return seed.Static(), nil
	}
	data, err := seed.LoadFile(path)
	if err != nil {
		return nil, err
	}
	slog.Info("campus catalogs loaded", "path", path)
	return data, nil
}

// openPrefs selects the onboarding flag backend. An unreachable Redis
// falls back to the settings table.
func openPrefs(ctx context.Context, cfg *config.Config, database *sql.DB) (prefs.Store, func()) {
	sqlStore := &prefs.SQL{DB: database}
	if cfg.RedisAddr == "" {
		return sqlStore, func() {}
	}

	r, err := prefs.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		slog.Warn("redis unavailable, keeping preferences in the database", "addr", cfg.RedisAddr, "error", err)
		return sqlStore, func() {}
	}
	slog.Info("preferences stored in redis", "addr", cfg.RedisAddr)
	return r, func() { r.Close() }
}

// openPublisher selects where lost-and-found events go.
func openPublisher(cfg *config.Config) (notify.Publisher, func()) {
	if cfg.AMQPURL == "" {
		return notify.Nop{}, func() {}
	}
	p := notify.NewAMQP(cfg.AMQPURL)
	slog.Info("publishing lost-and-found events to rabbitmq")
	return p, func() {
		if err := p.Close(); err != nil {
			slog.Warn("closing rabbitmq connection", "error", err)
		}
	}
}

// purgeRevokedTokens drops revocations of tokens that have expired anyway.
func purgeRevokedTokens(ctx context.Context, database *sql.DB) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for {
		n, err := store.PurgeExpiredTokens(ctx, database, time.Now())
		switch {
		case err != nil && ctx.Err() == nil:
			slog.Error("failed to purge revoked tokens", "error", err)
		case n > 0:
			slog.Info("purged expired token revocations", "count", n)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
