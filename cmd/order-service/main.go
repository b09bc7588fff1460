package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sellora/order-service/internal/config"
	httpdelivery "github.com/sellora/order-service/internal/delivery/http"
	"github.com/sellora/order-service/internal/infrastructure/gateway"
	"github.com/sellora/order-service/internal/infrastructure/kafka"
	"github.com/sellora/order-service/internal/infrastructure/logger"
	"github.com/sellora/order-service/internal/infrastructure/metrics"
	"github.com/sellora/order-service/internal/infrastructure/migrate"
	"github.com/sellora/order-service/internal/infrastructure/postgres"
	"github.com/sellora/order-service/internal/infrastructure/postgres/repository"
	orderusecase "github.com/sellora/order-service/internal/usecase/order"
	paymentusecase "github.com/sellora/order-service/internal/usecase/payment"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}

	cfg := config.MustLoad()

	zapLog, err := logger.New(cfg.LogConfig)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zapLog.Sync()

	db := postgres.MustInitDB(cfg)
	if cfg.OrderDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.OrderDB.MigrationsPath); err != nil {
			zapLog.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	var pub kafka.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPub := kafka.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.OrderTopic, cfg.Kafka.PaymentTopic)
		defer kafkaPub.Close()
		pub = kafkaPub
	}

	orderMetrics := metrics.NewOrderMetrics()
	paymentMetrics := metrics.NewPaymentMetrics()

	uowFactory := repository.NewUnitOfWorkFactory(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	storeRepo := repository.NewStoreRepository(db)

	paymentGateway := gateway.NewSimulatedGateway(cfg.Gateway.Latency)

	orderUC := orderusecase.NewDefaultOrderUsecase(
		uowFactory, orderRepo, storeRepo, pub, orderMetrics, zapLog,
	)
	paymentUC := paymentusecase.NewDefaultPaymentUsecase(
		uowFactory, paymentRepo, paymentGateway, cfg.Gateway.ChargeTimeout,
		pub, paymentMetrics, zapLog,
	)

	router := httpdelivery.NewRouter(orderUC, paymentUC, zapLog)

	addr := net.JoinHostPort(cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		zapLog.Info("order service listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
}
