package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/csg33k/employee-admin/internal/adapters/fakeapi"
	sqliteadapter "github.com/csg33k/employee-admin/internal/adapters/sqlite"
	"github.com/csg33k/employee-admin/internal/config"
	"github.com/csg33k/employee-admin/internal/handlers"
	"github.com/csg33k/employee-admin/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := cfg.Logger(os.Stdout)
	slog.SetDefault(logger)

	repo, err := sqliteadapter.New(cfg.FakeAPI.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer repo.Close()

	api := fakeapi.New(repo, logger)
	root := handlers.RequestID(handlers.Logging(logger)(api.Routes()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("fake employee api running", "url", "http://localhost:"+cfg.FakeAPI.Port, "db", cfg.FakeAPI.DBPath)
	if err := server.Run(ctx, server.DefaultConfig(cfg.FakeAPI.Port), root, logger); err != nil {
		log.Fatal(err)
	}
}
