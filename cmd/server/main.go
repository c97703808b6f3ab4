package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/exportbase/marketplace-api/internal/api"
	"github.com/exportbase/marketplace-api/internal/core/service"
	"github.com/exportbase/marketplace-api/internal/infrastructure/config"
	"github.com/exportbase/marketplace-api/internal/infrastructure/db/mongo"
	"github.com/exportbase/marketplace-api/internal/infrastructure/db/redis"
	"github.com/exportbase/marketplace-api/internal/infrastructure/fixtures"
	httphandlers "github.com/exportbase/marketplace-api/internal/infrastructure/http/handlers"
	"github.com/exportbase/marketplace-api/internal/infrastructure/queue"
	"github.com/exportbase/marketplace-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories, seeded fresh on every boot ---
	accountRepo := mongo.NewAccountRepository(db)
	productRepo := mongo.NewProductRepository(db)
	leadRepo := mongo.NewLeadRepository(db)

	if err := accountRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("account index creation failed")
	}
	if err := productRepo.Seed(ctx, fixtures.Products()); err != nil {
		log.Fatal().Err(err).Msg("product seeding failed")
	}
	if err := leadRepo.Seed(ctx, fixtures.Leads()); err != nil {
		log.Fatal().Err(err).Msg("lead seeding failed")
	}
	log.Info().Msg("catalog and lead fixtures seeded")

	// --- Lead notification pipeline ---
	dispatcher := queue.NewDispatcher(0, queue.NewLogNotifier(log), log)
	dispatcher.Start(ctx)

	// --- Core services ---
	sessions := service.NewSessionService(redis.NewSessionStore(rdb), cfg.JWTSecret, cfg.SessionTTL, log)
	sessions.Initialize(ctx)

	authService := service.NewAuthService(accountRepo, sessions, cfg.JWTSecret, cfg.LoginDelay, log)
	productService := service.NewProductService(productRepo, log)
	leadService := service.NewLeadService(leadRepo, productRepo, dispatcher, log)
	campaignService := service.NewCampaignService(fixtures.Campaigns())
	trainingService := service.NewTrainingService(fixtures.TrainingModules())
	directoryService := service.NewDirectoryService(fixtures.Factories())
	analyticsService := service.NewAnalyticsService(productRepo, leadRepo)

	e := api.NewRouter(api.Dependencies{
		Log:          log,
		AuthService:  authService,
		Sessions:     sessions,
		Products:     productService,
		Leads:        leadService,
		Campaigns:    campaignService,
		Training:     trainingService,
		Directory:    directoryService,
		Analytics:    analyticsService,
		Messages:     fixtures.Messages(),
		HealthChecks: httphandlers.NewHealthDependenciesHandler(db, rdb),
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
	log.Info().Msg("server stopped")
}
