package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/smilecare/whatsapp-assistant/internal/api/router"
	"github.com/smilecare/whatsapp-assistant/internal/appointments"
	"github.com/smilecare/whatsapp-assistant/internal/assistant"
	"github.com/smilecare/whatsapp-assistant/internal/channels/whatsapp"
	appconfig "github.com/smilecare/whatsapp-assistant/internal/config"
	"github.com/smilecare/whatsapp-assistant/internal/dedupe"
	"github.com/smilecare/whatsapp-assistant/internal/observability/metrics"
	"github.com/smilecare/whatsapp-assistant/pkg/logging"
)

func main() {
	// .env is optional outside local development.
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("starting whatsapp assistant",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(startupCtx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to create pgx pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	if err := pool.Ping(startupCtx); err != nil {
		logger.Error("database not reachable", "error", err)
		os.Exit(1)
	}

	gemini, err := assistant.NewGeminiClient(startupCtx, cfg.GeminiAPIKey, cfg.GeminiModelID)
	if err != nil {
		logger.Error("failed to create gemini client", "error", err)
		os.Exit(1)
	}
	defer func() { _ = gemini.Close() }()

	var dedupeStore *dedupe.Store
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := redisClient.Ping(startupCtx).Err(); err != nil {
			logger.Warn("redis not available, webhook dedupe disabled", "error", err)
		} else {
			dedupeStore = dedupe.NewStore(redisClient, cfg.DedupeTTL)
			defer func() { _ = redisClient.Close() }()
		}
	}

	registry := prometheus.NewRegistry()
	m := metrics.NewAssistantMetrics(registry)

	repo := appointments.NewRepository(pool)
	waClient := whatsapp.NewClient(cfg.WhatsAppToken, cfg.PhoneNumberID)
	if cfg.GraphAPIBase != "" {
		waClient.SetGraphAPIBase(cfg.GraphAPIBase)
	}

	extractor := assistant.NewExtractor(gemini, m, logger)
	dispatcher := assistant.NewDispatcher(repo, logger)
	svc := assistant.NewService(extractor, dispatcher, waClient, waClient, dedupeStore, m, logger)

	webhook := whatsapp.NewWebhookHandler(cfg.VerifyToken, cfg.WhatsAppAppSecret, func(msg whatsapp.ParsedInboundMessage) {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		svc.HandleMessage(ctx, msg)
	}, logger)

	r := router.New(&router.Config{
		Logger:         logger,
		Webhook:        webhook,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
