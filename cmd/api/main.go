// Package main is the entry point for the CSR assistant web server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql

	"github.com/pkordes/csr-assistant/internal/catalog"
	"github.com/pkordes/csr-assistant/internal/chat"
	"github.com/pkordes/csr-assistant/internal/config"
	"github.com/pkordes/csr-assistant/internal/handler"
	"github.com/pkordes/csr-assistant/internal/middleware"
	"github.com/pkordes/csr-assistant/internal/repo"
	"github.com/pkordes/csr-assistant/internal/service"
	"github.com/pkordes/csr-assistant/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))
	slog.SetDefault(logger)

	// --- Catalog ----------------------------------------------------------
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		slog.Error("failed to load catalog", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}
	slog.Info("catalog loaded",
		"services", len(cat.Services()),
		"zip_codes", len(cat.ZipCodes()),
		"technicians", len(cat.Technicians()),
	)

	// --- Ledger -----------------------------------------------------------
	appts, closeLedger, err := openLedger(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open appointment ledger", "error", err)
		os.Exit(1)
	}
	defer closeLedger()

	// --- Services ---------------------------------------------------------
	bookings := service.NewBookingService(cat, appts, logger)
	faq := service.NewFAQService(cat)
	sessions := chat.NewSessionStore(chat.NewBot(cat, bookings, faq), cfg.SessionTTL)
	srvHandlers := handler.NewServer(cat, bookings, faq, sessions, logger)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Mount("/", srvHandlers.Routes())

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openLedger returns the appointment ledger. Without a database URL the
// ledger lives in memory. With one, pending migrations are applied before
// the Postgres ledger is returned.
func openLedger(ctx context.Context, databaseURL string) (repo.AppointmentRepo, func(), error) {
	if databaseURL == "" {
		slog.Warn("DATABASE_URL not set; appointments are kept in memory")
		return repo.NewMemoryAppointmentRepo(), func() {}, nil
	}

	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	slog.Info("database connection established")

	// goose needs database/sql; it gets a short-lived handle of its own.
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	applied, err := migrations.Up(ctx, db)
	db.Close()
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	slog.Info("migrations applied", "count", applied)

	return repo.NewPostgresAppointmentRepo(pool), pool.Close, nil
}
