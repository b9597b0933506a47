package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	webhookcontrollers "github.com/angelmondragon/razorpay-go-client/api/controllers/webhooks"
	"github.com/angelmondragon/razorpay-go-client/api/routes"
	razorpaywebhook "github.com/angelmondragon/razorpay-go-client/internal/webhooks/razorpay"
	"github.com/angelmondragon/razorpay-go-client/pkg/config"
	"github.com/angelmondragon/razorpay-go-client/pkg/instance"
	"github.com/angelmondragon/razorpay-go-client/pkg/logger"
	"github.com/angelmondragon/razorpay-go-client/pkg/metrics"
	"github.com/angelmondragon/razorpay-go-client/pkg/razorpay"
	"github.com/angelmondragon/razorpay-go-client/pkg/redis"
)

const (
	serviceName       = "razorpay-webhook-listener"
	idempotencyScope  = "razorpay_webhook"
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

func main() {
	logg := logger.New(logger.Options{ServiceName: serviceName})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	client, err := razorpay.NewFromConfig(ctx, cfg.Razorpay, logg, metrics.NewClientMetrics(reg))
	if err != nil {
		logg.Error(ctx, "failed to create razorpay client", err)
		os.Exit(1)
	}

	var (
		store    redis.IdempotencyStore = razorpaywebhook.NewMemoryStore()
		pinger   redis.Pinger
		recorder webhookcontrollers.DeliveryRecorder
	)
	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			logg.Error(ctx, "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		store, pinger, recorder = redisClient, redisClient, redisClient
	} else {
		logg.Warn(ctx, "redis not configured, webhook deduplication is process-local")
	}

	guard, err := razorpaywebhook.NewIdempotencyGuard(store, cfg.Webhook.IdempotencyTTL, idempotencyScope)
	if err != nil {
		logg.Error(ctx, "failed to create idempotency guard", err)
		os.Exit(1)
	}

	service := razorpaywebhook.NewService(logg)
	razorpaywebhook.RegisterLogging(service, logg)
	razorpaywebhook.RegisterPaymentReconciler(service, client.Payments, logg)

	handler := routes.NewRouter(routes.Dependencies{
		Config:   cfg,
		Logger:   logg,
		Gatherer: reg,
		Store:    pinger,
		Webhook: webhookcontrollers.RazorpayWebhookParams{
			Service:  service,
			Guard:    guard,
			Secret:   cfg.Webhook.Secret,
			Metrics:  metrics.NewWebhookMetrics(reg),
			Recorder: recorder,
			TTL:      cfg.Webhook.IdempotencyTTL,
			Logger:   logg,
		},
	})

	addr := ":" + cfg.App.Port
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	runCtx := logg.WithFields(ctx, map[string]any{
		"addr":         addr,
		"webhook_path": cfg.Webhook.Path,
		"razorpay_env": cfg.Razorpay.Environment(),
		"instance":     instance.GetID(),
	})
	logg.Info(runCtx, "starting webhook listener")

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logg.Error(runCtx, "webhook listener stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logg.Info(runCtx, "shutting down webhook listener")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(runCtx, "graceful shutdown failed", err)
		}
	}
}
