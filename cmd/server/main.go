package main

import (
	"context"
	"fmt"
	"log/slog"

	log "github.com/charmbracelet/log"

	_ "github.com/geldtransfer/backoffice/cmd/server/swagger"
	"github.com/geldtransfer/backoffice/infra"
	"github.com/geldtransfer/backoffice/infra/seed"
	"github.com/geldtransfer/backoffice/pkg/app"
	"github.com/geldtransfer/backoffice/pkg/config"
	"github.com/geldtransfer/backoffice/webapi"
)

// @title Geldtransfer Back Office API
// @version 1.0.0
// @description Role-gated API for recording and auditing money transfers.
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.Default()
	cfg, err := config.Load(logger)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infra.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	uow := infra.NewUoW(db)
	if cfg.Seed.Enable {
		if err := seed.Run(context.Background(), uow, logger); err != nil {
			return fmt.Errorf("failed to seed accounts: %w", err)
		}
	}

	a := app.New(&app.Deps{Uow: uow, Logger: logger}, cfg)
	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)
	return fiberApp.Listen(addr)
}
