// initdb crea el schema y carga los datos demo, sin levantar el servidor.
package main

import (
	"context"
	"log"
	"os"

	"pet-care/internal/adapters/auth/password"
	"pet-care/internal/adapters/storage/sqldb"
	"pet-care/internal/config"
	"pet-care/internal/platform/logger"
	"pet-care/internal/seed"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	lg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App + "-initdb",
	})

	if cfg.DB.Driver == config.DriverMemory {
		lg.Warn("DB_DRIVER=memory has nothing to initialize", nil)
		return
	}

	ctx := context.Background()
	db, err := sqldb.Open(ctx, cfg.DB)
	if err != nil {
		lg.Error("database open failed", map[string]any{"driver": cfg.DB.Driver, "error": err.Error()})
		os.Exit(1)
	}
	defer db.Close()

	gw := sqldb.NewGateway(db)
	s := seed.New(seed.Repos{
		Users:     sqldb.NewUsersRepo(gw),
		Pets:      sqldb.NewPetsRepo(gw),
		Adoptions: sqldb.NewAdoptionsRepo(gw),
	}, password.NewBcryptHasher(bcrypt.DefaultCost), gw, lg)

	res, err := s.Run(ctx)
	if err != nil {
		lg.Error("seed failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	lg.Info("database ready", map[string]any{
		"driver":    cfg.DB.Driver,
		"users":     res.Users,
		"pets":      res.Pets,
		"adoptions": res.Adoptions,
	})
}
