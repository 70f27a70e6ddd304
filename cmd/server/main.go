package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"neuroview/backend"
	"neuroview/chatguard"
	"neuroview/library"
	"neuroview/notify"
	"neuroview/results"
	"neuroview/session"
	"neuroview/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and owns the shutdown order, so all defers
// execute before main exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Search index (Bluge)
	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		log.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	index := library.NewIndex(blugeWriter, log)
	if err = index.IndexBundles(); err != nil {
		return fmt.Errorf("indexing reference articles failed: %w", err)
	}

	// 4. Domain services
	guard, err := chatguard.New(log)
	if err != nil {
		return fmt.Errorf("building chat guard failed: %w", err)
	}

	hub := notify.NewHub(log).Register(
		notify.LoggingSink(log),
		library.IndexingSink(index),
	)

	client := backend.NewHTTPClient(config.BackendURL, config.BackendTimeout, log)

	// 5. HTTP server
	server := web.NewServer(web.Deps{
		Log:            log,
		Backend:        client,
		Sessions:       session.NewStore(db, log, config.SessionTTL),
		Cookies:        session.NewCookieCodec(config.CookieSecret, config.SessionTTL),
		Results:        results.NewRepository(db, log),
		Guard:          guard,
		Library:        index,
		Hub:            hub,
		MaxUploadBytes: config.MaxUploadSize,
		SecureCookies:  config.CookieSecure,
	})

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Starting", "at", time.Now().UTC(), "backend", config.BackendURL)
	if err = server.Run(ctx, fmt.Sprintf("%s:%d", config.Host, config.Port)); err != nil {
		return err
	}

	log.Info("Program stopped cleanly")
	return nil
}
