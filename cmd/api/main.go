package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"roomdesign/internal/adapter/repo"
	"roomdesign/internal/http/handlers"
	httpapi "roomdesign/internal/http/httpapi"
	"roomdesign/internal/imagegen"
	"roomdesign/internal/infra"
	"roomdesign/internal/infra/geoip"
	"roomdesign/internal/providers/gemini"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	if cfg.MigrateOnStart {
		if err := infra.RunMigrations(ctx, cfg.DatabaseURL, infra.MigrateUp); err != nil {
			logger.Fatal().Err(err).Msg("failed to run migrations")
		}
		logger.Info().Msg("migrations applied")
	}

	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()
	runner := infra.NewSQLRunner(dbpool, logger)

	store, err := newObjectStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("failed to init object storage")
	}
	defer store.Close()

	model, err := gemini.NewClient(ctx, gemini.Options{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiImageModel,
		Timeout: cfg.GenerationTimeout,
		Logger:  logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init gemini client")
	}

	countries, err := geoip.Open(cfg.GeoIPDBPath)
	if err != nil {
		// request logging works without countries
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	defer countries.Close()

	furniture := repo.NewFurnitureRepository(runner)
	designs := repo.NewRoomDesignRepository(runner)
	fetcher := imagegen.NewFetcher(&http.Client{}, cfg.FetchTimeout)

	pipeline := imagegen.NewService(imagegen.ServiceOptions{
		Resolver:          imagegen.NewResolver(furniture, fetcher, logger),
		Generator:         model,
		Persister:         imagegen.NewPersister(store, designs, cfg.RoomBucket, cfg.StorageTimeout, logger),
		Designs:           designs,
		Fetcher:           fetcher,
		MaxInputDimension: cfg.ModelInputMaxDimension,
		Logger:            logger,
	})

	app := &handlers.App{
		Furniture:       furniture,
		Designs:         designs,
		Store:           store,
		Images:          pipeline,
		FurnitureBucket: cfg.FurnitureBucket,
		RoomBucket:      cfg.RoomBucket,
		StorageTimeout:  cfg.StorageTimeout,
		DB:              dbpool,
		Logger:          logger,
	}

	opts := httpapi.Options{Logger: logger, StaticDir: store.staticDir}
	if countries != nil {
		opts.Countries = countries
	}
	router := httpapi.NewRouter(app, opts)

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("addr", server.Addr()).Str("storage", cfg.StorageDriver).Msg("API listening")
		if err := server.Start(); err != nil {
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
