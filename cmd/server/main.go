package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/NYTimes/gziphandler"

	"github.com/csg33k/employee-admin/internal/adapters/alert"
	"github.com/csg33k/employee-admin/internal/adapters/apiclient"
	"github.com/csg33k/employee-admin/internal/adapters/pdf"
	"github.com/csg33k/employee-admin/internal/config"
	"github.com/csg33k/employee-admin/internal/handlers"
	"github.com/csg33k/employee-admin/internal/metrics"
	"github.com/csg33k/employee-admin/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := cfg.Logger(os.Stdout)
	slog.SetDefault(logger)

	m := metrics.NewDefault()
	api, err := apiclient.New(cfg.APIBaseURL, cfg.APITimeout, apiclient.WithObserver(m.ObserveAPI))
	if err != nil {
		log.Fatalf("failed to create api client: %v", err)
	}
	store := alert.NewCookieStore([]byte(cfg.SessionSecret), cfg.IsProduction())
	h := handlers.New(api, pdf.NewRoster("Employee Roster"), alert.NewCenter(store, logger), logger, cfg.BasePath)

	mux := http.NewServeMux()
	mux.Handle("GET "+cfg.MetricsPath, m.Handler())
	mux.Handle("/", m.Middleware(handlers.TrimTrailingSlash(h.Routes())))

	root := gziphandler.GzipHandler(handlers.RequestID(handlers.Logging(logger)(mux)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("employee admin running",
		"url", "http://localhost:"+cfg.Port+cfg.BasePath,
		"api", cfg.APIBaseURL,
		"env", cfg.Environment,
	)
	if err := server.Run(ctx, server.DefaultConfig(cfg.Port), root, logger); err != nil {
		log.Fatal(err)
	}
}
