package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"nanofloor/internal/assets"
	"nanofloor/internal/catalog"
	"nanofloor/internal/domain"
	"nanofloor/internal/genai"
	"nanofloor/internal/http/handlers"
	httpapi "nanofloor/internal/http/httpapi"
	"nanofloor/internal/infra"
	"nanofloor/internal/infra/geoip"
	"nanofloor/internal/middleware"
)

func main() {
	// Load .env (optional)
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	// DB pool is optional: without DATABASE_URL the service runs with the
	// in-memory catalog and no asset registry.
	var (
		presets   domain.PresetRepository
		materials domain.MaterialRepository
		registry  assets.Registry
	)
	if cfg.DatabaseURL != "" {
		dbpool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer dbpool.Close()
		presets = catalog.NewPresetRepository(dbpool)
		materials = catalog.NewMaterialRepository(dbpool)
		registry = assets.NewRegistryPG(dbpool)
	} else {
		logger.Warn().Msg("DATABASE_URL not set, using in-memory catalog")
		mem := catalog.NewMemory(nil, nil)
		presets = mem
		materials = mem.Materials()
	}

	// GeoIP resolver is optional too; without it locale detection relies on
	// headers only.
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.GeoIPDBPath).Msg("failed to open geoip database")
	}
	var lookup middleware.CountryLookup
	if resolver != nil {
		defer resolver.Close()
		lookup = resolver.CountryCode
	}

	renderer := genai.NewClient(genai.Options{
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.ActiveModel(),
		Logger:  &logger,
		Debug:   cfg.DebugLogging,
	})

	app := &handlers.App{
		Config:        cfg,
		Logger:        logger,
		Presets:       presets,
		Materials:     materials,
		Renderer:      renderer,
		Limiter:       middleware.NewRateLimiter(),
		Store:         assets.NewStore(cfg.StoragePath, cfg.StorageBaseURL, registry, logger),
		CountryLookup: lookup,
	}

	router := httpapi.NewRouter(app)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
