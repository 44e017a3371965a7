package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"commerce-reconciler/config"
	"commerce-reconciler/internal/adapter/gateway/delhivery"
	"commerce-reconciler/internal/adapter/gateway/paypal"
	"commerce-reconciler/internal/adapter/gateway/phonepe"
	httpHandler "commerce-reconciler/internal/adapter/http/handler"
	"commerce-reconciler/internal/adapter/notify"
	"commerce-reconciler/internal/adapter/scheduler"
	pgStorage "commerce-reconciler/internal/adapter/storage/postgres"
	redisStorage "commerce-reconciler/internal/adapter/storage/redis"
	"commerce-reconciler/internal/core/ports"
	"commerce-reconciler/internal/service"
	"commerce-reconciler/pkg/logger"

	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("RCN_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting commerce reconciler")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Repositories
	paymentRepo := pgStorage.NewPaymentRepo(pool)
	orderRepo := pgStorage.NewOrderRepo(pool)
	shipmentRepo := pgStorage.NewShipmentRepo(pool)
	trackingRepo := pgStorage.NewTrackingEventRepo(pool)
	pickupRepo := pgStorage.NewPickupRepo(pool)
	inboundRepo := pgStorage.NewInboundEventRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Gateways
	var payments []ports.PaymentGateway
	if cfg.PhonePe.Configured() {
		payments = append(payments, phonepe.New(cfg.PhonePe, log))
	}
	if cfg.PayPal.Configured() {
		pp, err := paypal.New(cfg.PayPal, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize PayPal gateway")
		}
		payments = append(payments, pp)
	}
	if len(payments) == 0 {
		log.Warn().Msg("No payment gateway configured, checkout will be rejected")
	}
	orchestrator := service.NewPaymentOrchestrator(log, payments...)
	log.Info().Strs("providers", orchestrator.Providers()).Msg("Payment gateways registered")

	if cfg.Delhivery.Token == "" {
		log.Warn().Msg("Delhivery token not set, courier calls will fail")
	}
	courier := delhivery.New(cfg.Delhivery, redisStorage.NewWaybillPool(rdb), service.NewHMACSignatureService(), log)

	// Outbound notifications
	notifier := newNotifier(cfg.SMTP, log)
	alerter := newAlerter(ctx, cfg.Alert, log)

	// Business services
	paymentReconciler := service.NewPaymentReconciler(paymentRepo, orderRepo, inboundRepo, orchestrator, notifier, cfg.App, log)
	shipmentReconciler := service.NewShipmentReconciler(
		shipmentRepo, trackingRepo, orderRepo, pickupRepo, inboundRepo, transactor,
		courier, cfg.Delhivery, cfg.Pickup, log,
	)
	batcher, err := service.NewPickupBatcher(shipmentRepo, pickupRepo, transactor, courier, alerter, cfg.Delhivery.PickupLocation, cfg.Pickup, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize pickup batcher")
	}
	auditSvc := service.NewAuditService(auditRepo, log)

	var sched *scheduler.Scheduler
	if cfg.Pickup.Enabled {
		sched, err = scheduler.New(cfg.Pickup, batcher, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize scheduler")
		}
		sched.Start()
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Payments:       paymentReconciler,
		Shipments:      shipmentReconciler,
		PickupBatcher:  batcher,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		RateLimit:      cfg.RateLimit,
		HealthCheckers: []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)},
		AuditSvc:       auditSvc,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	if sched != nil {
		if err := sched.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Scheduler shutdown failed")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

func newNotifier(cfg config.SMTPConfig, log zerolog.Logger) ports.Notifier {
	if cfg.Host == "" {
		log.Warn().Msg("SMTP not configured, payment e-mails will only be logged")
		return notify.NewLogNotifier(log)
	}
	client, err := notify.NewSMTPClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize SMTP client")
	}
	return notify.NewMailNotifier(client, cfg, log)
}

func newAlerter(ctx context.Context, cfg config.AlertConfig, log zerolog.Logger) ports.Alerter {
	if cfg.SNSTopicARN == "" {
		return notify.NewLogAlerter(log)
	}
	client, err := notify.NewSNSClient(ctx, cfg.AWSRegion)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize SNS client")
	}
	return notify.NewSNSAlerter(client, cfg.SNSTopicARN, log)
}
