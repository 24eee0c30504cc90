package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-care/internal/adapters/auth/password"
	"pet-care/internal/adapters/auth/session"
	"pet-care/internal/adapters/storage/sqldb"
	"pet-care/internal/config"
	"pet-care/internal/platform/logger"
	"pet-care/internal/ports/auth"
	"pet-care/internal/router"

	"golang.org/x/crypto/bcrypt"
)

// @title Pet Care API
// @version 1.0
// @description Backend de cuidado de mascotas: usuarios, mascotas, turnos veterinarios y adopciones.
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	lg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	if sl, ok := lg.(*logger.SlogLogger); ok {
		slog.SetDefault(sl.Slog())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqldb.Open(ctx, cfg.DB)
	if err != nil {
		lg.Error("database open failed", map[string]any{"driver": cfg.DB.Driver, "error": err.Error()})
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	sessions, err := newSessions(cfg.Session)
	if err != nil {
		lg.Error("session setup failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	if cfg.Session.GeneratedSecret {
		lg.Warn("SESSION_SECRET not set; using an ephemeral secret, sessions will not survive a restart", nil)
	}

	h, err := router.NewRouter(router.Options{
		Logger:    lg,
		Sessions:  sessions,
		DB:        db,
		Hasher:    password.NewBcryptHasher(bcrypt.DefaultCost),
		Seed:      cfg.SeedOnStart,
		StaticDir: cfg.StaticDir,
	})
	if err != nil {
		lg.Error("router setup failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	lg.Info("starting server", map[string]any{
		"addr":         cfg.Addr(),
		"db_driver":    cfg.DB.Driver,
		"session_mode": cfg.Session.Mode,
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		lg.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	lg.Info("server stopped", nil)
}

func newSessions(cfg config.Session) (auth.SessionResolver, error) {
	if cfg.Mode == config.SessionShared {
		return session.NewSharedResolver(session.DemoUserID), nil
	}
	return session.NewTokenResolver(cfg.Secret, cfg.TTL)
}
