// Package main is the console front-end of the CSR assistant: a
// read-reply loop over stdin and stdout sharing the booking and FAQ logic
// with the web server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/pkordes/csr-assistant/internal/catalog"
	"github.com/pkordes/csr-assistant/internal/chat"
	"github.com/pkordes/csr-assistant/internal/config"
	"github.com/pkordes/csr-assistant/internal/repo"
	"github.com/pkordes/csr-assistant/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Stdout belongs to the conversation, so logs go to stderr and only
	// warnings and above are shown unless LOG_LEVEL asks for more.
	level := max(cfg.Level(), slog.LevelWarn)
	if cfg.LogLevel == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	bookings := service.NewBookingService(cat, repo.NewMemoryAppointmentRepo(), logger)
	bot := chat.NewBot(cat, bookings, service.NewFAQService(cat))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	var in chat.LineReader
	if term.IsTerminal(int(os.Stdin.Fd())) {
		in = &chat.PromptReader{Label: "You", Stdin: os.Stdin, Stdout: os.Stdout}
	} else {
		in = chat.NewScannerReader(os.Stdin)
	}

	return chat.RunConsole(ctx, bot, in, os.Stdout)
}
