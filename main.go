package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/legitrack/cliparse"
	"github.com/danielhkuo/legitrack/db"
	"github.com/danielhkuo/legitrack/fixture"
	"github.com/danielhkuo/legitrack/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	driver := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	}
	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open database", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := conn.Ping(); err != nil {
		slog.Error("failed to connect to database", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}

	if err := db.CreateSchema(conn); err != nil {
		slog.Error("failed to create schema", "error", err)
		os.Exit(1)
	}

	if cfg.SeedFile != "" {
		seed, err := fixture.Load(cfg.SeedFile)
		if err != nil {
			slog.Error("failed to load seed file", "file", cfg.SeedFile, "error", err)
			os.Exit(1)
		}
		if err := fixture.Apply(conn, seed); err != nil {
			slog.Error("failed to apply seed file", "file", cfg.SeedFile, "error", err)
			os.Exit(1)
		}
		slog.Info("seed file applied", "file", cfg.SeedFile)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router.NewRouter(conn),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "port", cfg.Port, "database", cfg.DatabaseType)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}
}
