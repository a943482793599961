package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"souq-store/internal/backend"
	"souq-store/internal/cart"
	"souq-store/internal/catalog"
	"souq-store/internal/config"
	"souq-store/internal/database"
	"souq-store/internal/handler"
	"souq-store/internal/repository"
	"souq-store/internal/router"
	"souq-store/internal/service"

	bolt "go.etcd.io/bbolt"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting souq-store API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The storefront stays up when the database is unreachable: product
	// reads fall back through the resolver tiers, and only checkout
	// degrades to a service-unavailable answer.
	var productRepo repository.ProductRepository
	var categoryRepo repository.CategoryRepository
	var orderRepo repository.OrderRepository

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("database unavailable, serving catalogue from fallback tiers")
	} else {
		defer pool.Close()
		productRepo = repository.NewProductRepository(pool, logger)
		categoryRepo = repository.NewCategoryRepository(pool, logger)
		orderRepo = repository.NewOrderRepository(pool, logger)
	}

	// Open the embedded cart store
	if err := os.MkdirAll(filepath.Dir(cfg.Cart.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create cart data directory: %w", err)
	}
	cartDB, err := bolt.Open(cfg.Cart.Path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return fmt.Errorf("failed to open cart database: %w", err)
	}
	defer cartDB.Close()

	cartStore, err := cart.NewStore(cartDB, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize cart store: %w", err)
	}

	// Build the sample catalogue (final fallback tier), refreshing it from
	// S3 or the local file when configured
	samples := catalog.NewSampleCatalog()
	fileLoader := catalog.NewFileLoader(logger)

	var s3Loader catalog.Loader
	if cfg.Sample.S3Enabled {
		s3Loader, err = catalog.NewS3Loader(ctx, cfg.Sample.Bucket, cfg.Sample.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			s3Loader = nil
		}
	}

	sampleLoader := catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.Sample.Key, cfg.Sample.S3Enabled, logger)
	if data, err := sampleLoader.Load(ctx, cfg.Sample.LocalPath); err != nil {
		logger.Info().Err(err).Msg("using compiled-in sample catalogue")
	} else {
		samples.Replace(data)
		logger.Info().Int("products", samples.Size()).Msg("sample catalogue refreshed")
	}

	// Assemble the resolver tiers: database first, hosted backend second,
	// samples always last
	var sources []catalog.Source
	if productRepo != nil && categoryRepo != nil {
		sources = append(sources, catalog.NewDatabaseSource(productRepo, categoryRepo, logger))
	}
	if cfg.Backend.BaseURL != "" {
		sources = append(sources, backend.NewClient(cfg.Backend, logger))
	}

	resolver := catalog.NewResolver(samples, categoryRepo, logger, sources...)

	// Initialize services
	cartService := service.NewCartService(cartStore, resolver, logger)
	checkoutService := service.NewCheckoutService(orderRepo, productRepo, cartStore, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(resolver, logger)
	categoryHandler := handler.NewCategoryHandler(resolver, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, logger)

	// Initialize router
	mux := router.New(productHandler, categoryHandler, cartHandler, checkoutHandler, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
