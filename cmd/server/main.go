package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"

	"elective-hub/auth"
	"elective-hub/gateway"
	"elective-hub/internal"
	"elective-hub/repositories"
	"elective-hub/runtime"
	"elective-hub/runtime/workers"
	"elective-hub/services"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for the HTTP server and background workers.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := internal.NewLogger(config.LogLevel)

	// 2. Storage (BadgerDB + Bluge)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		// Defer ensures the database lock is released and buffers are flushed before the function returns.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 3. Repositories & Services
	rosterRepository := repositories.NewRosterRepository(db, logger)
	selectionRepository := repositories.NewSelectionRepository(db, logger, config.TxRetryCount)

	registry := runtime.NewRegistry(logger, config.MaxSubscriptions)
	selectionService := services.NewSelectionService(logger, rosterRepository, selectionRepository, registry)
	tokenService := auth.NewTokenService(config.AuthSecret, config.AuthTokenDuration)
	authService := services.NewAuthService(logger, rosterRepository, tokenService)
	catalogService := services.NewCatalogService(logger, blugeWriter)

	// 4. Gateway & Supervision
	manager := gateway.NewManager(logger)
	wsHandler := gateway.NewHandler(logger, tokenService, registry, manager, gateway.Config{
		BufferSize:      config.ConnectionBufferSize,
		DropThreshold:   config.DropDisconnectThreshold,
		IdentifyTimeout: config.IdentifyTimeout,
	})

	sup := workers.NewSupervisor(logger, config.RestartInterval)
	sup.Add(
		workers.NewBulkBroadcastWorker(logger, manager, selectionService, config.BulkInterval, config.BulkEnabled),
		workers.NewTelemetryWorker(logger, manager, config.TelemetryInterval),
	)

	// 5. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sup.Run(ctx)

	// 6. HTTP Server Setup
	mux := http.NewServeMux()
	mux.Handle("/ws", wsHandler)
	handlers := &api{
		log:        logger,
		selections: selectionService,
		occupancy:  selectionService,
		auth:       authService,
		verifier:   tokenService,
		catalog:    catalogService,
		sessions:   manager,
	}
	handlers.register(mux)

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := &http.Server{Addr: address, Handler: mux}

	// Use an error channel to capture Serve() issues asynchronously.
	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	// The execution blocks here until either a signal is received or the server crashes.
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 8. Final Cleanup (Graceful Shutdown)
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
	sup.Stop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}
