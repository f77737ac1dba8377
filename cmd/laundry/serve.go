package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Renal37/laundry-service/internal/cache"
	"github.com/Renal37/laundry-service/internal/database"
	router "github.com/Renal37/laundry-service/internal/http"
	"github.com/Renal37/laundry-service/internal/logger"
	"github.com/Renal37/laundry-service/internal/metrics"
	"github.com/Renal37/laundry-service/internal/notify"
	"github.com/Renal37/laundry-service/internal/pricing"
	"github.com/Renal37/laundry-service/internal/services"
	"github.com/Renal37/laundry-service/internal/utils"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var config Config

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config.applyEnv()
			return runServe(cmd.Context(), config)
		},
	}
	config.bindServeFlags(cmd)

	return cmd
}

func runServe(parent context.Context, config Config) error {
	if err := logger.Initialize(config.logLevel, config.env); err != nil {
		return fmt.Errorf("logger wasn't initialized: %w", err)
	}
	defer func() { _ = logger.Log.Sync() }()

	if config.generatedSecret {
		logger.Log.Warn("AUTH_SECRET_KEY has to be defined for production environment")
	}

	rates, err := pricing.LoadRateTable(config.rateTablePath)
	if err != nil {
		logger.Log.Error("rate table rejected", zap.String("path", config.rateTablePath), zap.Error(err))
		return err
	}

	ctx, stop := utils.WithTermination(parent)
	defer stop()

	db, err := database.New(ctx, config.dsn)
	if err != nil {
		return fmt.Errorf("database wasn't initialized: %w", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		return fmt.Errorf("migrations weren't run: %w", err)
	}

	recorder := metrics.New()

	// The queue outlives ctx so that Shutdown can drain pending notifications.
	queueCtx, cancelQueue := context.WithCancel(context.Background())
	defer cancelQueue()
	jobQueueService := services.NewJobQueueService(queueCtx, config.jobQueueCapacity, config.jobWorkers)

	var sender notify.Sender = notify.LogSender{}
	if config.notifyWebhookURL != "" {
		sender = notify.NewWebhookSender(config.notifyWebhookURL, &http.Client{Timeout: config.notifyTimeout})
	}

	var statsCache cache.Cache
	if config.redisAddr != "" {
		redisCache := cache.NewRedisCache(config.redisAddr, "laundry")
		defer redisCache.Close()

		if err := redisCache.Ping(ctx); err != nil {
			logger.Log.Warn("stats cache is unreachable, stats will be read from the database", zap.Error(err))
		}
		statsCache = redisCache
	}

	pricingService := services.NewPricingService(rates, recorder)
	notificationService := services.NewNotificationService(jobQueueService, sender, config.notifyTimeout, recorder)

	r := router.New(
		router.Config{Endpoint: config.endpoint},
		services.NewAuthService(db),
		services.NewJWTService(config.authSecretKey),
		pricingService,
		services.NewOrderService(db, db, pricingService, notificationService, recorder),
		services.NewStatsService(db, statsCache, config.statsCacheTTL),
		recorder,
	)

	server := &http.Server{
		Addr:              r.Addr(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Log.Info("running server", zap.String("address", server.Addr))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		jobQueueService.Shutdown()
		logger.Log.Info("server stopped")

		return err
	})

	return g.Wait()
}
