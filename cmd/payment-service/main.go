package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"github.com/zencommerce/trexle-payment-service/internal/config"
	delivery "github.com/zencommerce/trexle-payment-service/internal/delivery/http"
	"github.com/zencommerce/trexle-payment-service/internal/delivery/http/handlers"
	"github.com/zencommerce/trexle-payment-service/internal/delivery/http/middleware"
	"github.com/zencommerce/trexle-payment-service/internal/domain"
	publisher "github.com/zencommerce/trexle-payment-service/internal/infrastructure/kafka"
	"github.com/zencommerce/trexle-payment-service/internal/infrastructure/metrics"
	"github.com/zencommerce/trexle-payment-service/internal/infrastructure/migrate"
	"github.com/zencommerce/trexle-payment-service/internal/infrastructure/postgres"
	"github.com/zencommerce/trexle-payment-service/internal/infrastructure/postgres/repository"
	"github.com/zencommerce/trexle-payment-service/internal/infrastructure/session"
	"github.com/zencommerce/trexle-payment-service/internal/infrastructure/trexle"
	"github.com/zencommerce/trexle-payment-service/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg)
	// Init database
	db := postgres.MustInitDB(cfg)

	// explicit SQL migrations instead of the AutoMigrate baseline
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		path := "migrations"
		if len(os.Args) > 2 {
			path = os.Args[2]
		}
		if err := migrate.RunMigrations(db, path); err != nil {
			log.Fatalf("failed to run migrations: %v\n", err)
		}
		return
	}

	// Init repos
	txnRepo := repository.NewDefaultTransactionRepository(db)
	orderTokenRepo := repository.NewDefaultOrderTokenRepository(db)
	storedCardRepo := repository.NewDefaultStoredCardRepository(db)

	// Init gateway client
	gateway := trexle.NewClient(
		cfg.Trexle.APIBase,
		cfg.Trexle.SecretKey,
		time.Duration(cfg.Trexle.TimeoutSeconds)*time.Second,
	)

	// Init event publisher
	var pub domain.PublisherPort
	if cfg.Kafka.Enabled {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)}
		pub = publisher.NewDefaultKafkaPublisher(brokers)
	}

	// Init session store
	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	sessionStore := session.NewRedisStore(redisClient, time.Duration(cfg.Redis.SessionTTLMinutes)*time.Minute)

	paymentMetrics := metrics.NewPaymentMetrics()

	// Init payment usecase
	uc := usecase.NewDefaultPaymentUsecase(
		txnRepo,
		orderTokenRepo,
		storedCardRepo,
		gateway,
		pub,
		paymentMetrics,
		cfg.Kafka.Topic,
	)

	router := delivery.NewRouter(delivery.RouterDeps{
		Payments:      handlers.NewPaymentHandler(uc),
		Cards:         handlers.NewCardHandler(uc),
		Sessions:      handlers.NewSessionHandler(sessionStore),
		Session:       middleware.NewSessionMiddleware(sessionStore),
		StorefrontKey: cfg.Trexle.StorefrontKey,
	})

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler: router,
	}

	go func() {
		slog.Info("payment service started", "addr", server.Addr, "gateway", cfg.Trexle.APIBase)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve: %v\n", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown failed", "error", err.Error())
	}
	if p, ok := pub.(*publisher.DefaultKafkaPublisher); ok {
		_ = p.Close()
	}
}

func setupLogger(cfg *config.PaymentConfig) {
	level := slog.LevelInfo
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
