package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sigma/internal/config"
	"sigma/internal/handlers"
	"sigma/internal/logger"
	"sigma/internal/metrics"
	"sigma/internal/repository"
	"sigma/internal/repository/db"
	"sigma/internal/seed"
	"sigma/internal/server"
	"sigma/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title                       SIGMA maintenance tracker API
// @version                     1.0
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.Log.Level)
	if cfg.Auth.SigningKey == "" {
		log.Fatalw("auth.signing_key is empty; set it in configs/config.yml or SIGMA_AUTH_SIGNING_KEY")
	}

	conn, err := openDB(cfg.DB.Path, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	metrics.Init()

	// wire dependencies
	repos := repository.NewRepository(repository.NewRecordSQLite(conn))
	services := service.NewService(repos, service.Options{
		Auth: service.AuthConfig{
			SigningKey: cfg.Auth.SigningKey,
			TokenTTL:   cfg.Auth.TokenTTL,
		},
		Policy: service.MaintenancePolicy{MarkCompleted: cfg.Maintenance.MarksCompleted},
		Log:    log,
	})
	apiHandler := handlers.NewHandler(services, log, handlers.WithStreamInterval(cfg.Stream.Interval))

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bootstrap(ctx, cfg, services, log)

	// apply a reset that came due while the process was down, then keep checking
	if _, err := services.CheckAndReset(ctx); err != nil {
		log.Errorw("semester_reset_failed", "err", err)
	}
	go services.Cycle.Run(ctx, cfg.Cycle.CheckInterval)

	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(cancel, srv, log)
}

func openDB(path string, log *logger.Logger) (*sql.DB, error) {
	if path == "" {
		log.Infow("db.path not set in config; using default file", "default", "sigma.db")
		path = "sigma.db"
	}
	return db.InitDB(path)
}

// bootstrap seeds the admin account and demo elements into an empty store.
func bootstrap(ctx context.Context, cfg config.Config, services *service.Service, log *logger.Logger) {
	if cfg.Auth.Admin.Matricula != "" {
		created, err := services.EnsureAdmin(ctx, service.AdminParams{
			Matricula: cfg.Auth.Admin.Matricula,
			Password:  cfg.Auth.Admin.Password,
			FullName:  cfg.Auth.Admin.FullName,
		})
		if err != nil {
			log.Fatalw("failed to seed admin", "err", err)
		}
		if created {
			log.Infow("admin_seeded", "matricula", cfg.Auth.Admin.Matricula)
		}
	}

	elements, err := seed.Load(cfg.Seed.Path)
	if err != nil {
		log.Errorw("seed_load_failed", "path", cfg.Seed.Path, "err", err)
		return
	}
	n, err := services.SeedIfEmpty(ctx, elements)
	if err != nil {
		log.Fatalw("failed to seed elements", "err", err)
	}
	if n > 0 {
		log.Infow("elements_seeded", "count", n, "path", cfg.Seed.Path)
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http_server_starting", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
