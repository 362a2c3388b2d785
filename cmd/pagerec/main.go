package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/bnema/pagerec/config"
	"github.com/bnema/pagerec/internal/adapter/browser/chrome"
	natsbus "github.com/bnema/pagerec/internal/adapter/bus/nats"
	"github.com/bnema/pagerec/internal/adapter/encoder/ffmpeg"
	HTTPAdapter "github.com/bnema/pagerec/internal/adapter/http"
	"github.com/bnema/pagerec/internal/adapter/storage/jsonfile"
	sqlitestore "github.com/bnema/pagerec/internal/adapter/storage/sqlite"
	"github.com/bnema/pagerec/internal/domain"
	"github.com/bnema/pagerec/internal/infrastructure/logger"
	"github.com/bnema/pagerec/internal/port"
	"github.com/bnema/pagerec/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error.Printf("failed to load config: %v", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
		logger.Error.Printf("failed to create log directory: %v", err)
		os.Exit(1)
	}
	logCloser := logger.Setup(logger.Options{
		Dir:     cfg.LogDir,
		Console: !cfg.IsProduction(),
		Debug:   cfg.LogLevel == "debug",
	})
	defer func() { _ = logCloser.Close() }()

	logger.Info.Printf("starting pagerec on port %d (store=%s, output=%s)", cfg.Port, cfg.StoreDriver, cfg.OutputDir)

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		logger.Error.Printf("failed to create data directory: %v", err)
		os.Exit(1)
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		logger.Error.Printf("failed to create store: %v", err)
		os.Exit(1)
	}
	defer func() { _ = closeStore.Close() }()

	encoder := ffmpeg.NewEncoder(cfg.FFmpegPath)
	if err := encoder.CheckAvailable(context.Background()); err != nil {
		logger.Warn.Printf("%s (%v)", service.EncoderRemediation, err)
	}

	browser := chrome.NewBrowser(chrome.Options{
		ExecPath: cfg.ChromePath,
		Headless: cfg.BrowserHeadless,
		Display:  cfg.CaptureDisplay,
	})

	eventBus := service.NewEventBus()
	publishers := service.Publishers{eventBus}

	var natsPub *natsbus.Publisher
	if cfg.NATSURL != "" {
		natsPub, err = natsbus.Connect(cfg.NATSURL, cfg.NATSSubjectPrefix)
		if err != nil {
			logger.Error.Printf("failed to connect to nats: %v", err)
			os.Exit(1)
		}
		publishers = append(publishers, natsPub)
		logger.Info.Printf("publishing lifecycle events to nats subjects %s.*", cfg.NATSSubjectPrefix)
	}

	opts := service.DefaultRecorderOptions(cfg.OutputDir)
	opts.Backend = domain.CaptureBackendFor(domain.Platform(runtime.GOOS))
	if opts.Backend.Format == "x11grab" {
		opts.Backend = opts.Backend.WithTarget(cfg.CaptureDisplay)
	}
	opts.NavigationTimeout = cfg.NavigationTimeout
	opts.StopTimeout = cfg.StopTimeout
	opts.KillTimeout = cfg.KillTimeout

	recorder := service.NewRecorderService(store, browser, encoder, publishers, opts)

	server := HTTPAdapter.NewServer(recorder, store, encoder, eventBus, cfg.APIKeyHash)
	if cfg.APIKeyHash == "" {
		logger.Warn.Printf("API_KEY_HASH not set, the API is unauthenticated")
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
		// Start blocks for up to the navigation timeout.
		WriteTimeout: cfg.NavigationTimeout + time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	done := make(chan struct{})

	// Graceful shutdown
	go func() {
		defer close(done)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info.Printf("received %s, shutting down", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.StopTimeout+cfg.KillTimeout+30*time.Second)
		defer shutdownCancel()

		// Stop accepting new requests
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error.Printf("http shutdown error: %v", err)
		}

		// Finalize live recordings so their files stay playable
		if err := recorder.Shutdown(shutdownCtx); err != nil {
			logger.Error.Printf("recorder shutdown error: %v", err)
		}

		if natsPub != nil {
			natsPub.Close()
		}

		logger.Info.Printf("shutdown complete")
	}()

	logger.Info.Printf("server listening on %s", addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error.Printf("server failed: %v", err)
		os.Exit(1)
	}
	<-done
}

func openStore(cfg *config.Config) (port.RecordingStore, io.Closer, error) {
	switch cfg.StoreDriver {
	case config.StoreJSON:
		store, err := jsonfile.NewStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	default:
		store, err := sqlitestore.NewStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	}
}
