package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	paymentConfirmHandler "github.com/m04kA/SMC-StorageService/internal/api/handlers/payment_confirm"
	paymentPrecheckHandler "github.com/m04kA/SMC-StorageService/internal/api/handlers/payment_precheck"
	processMessageHandler "github.com/m04kA/SMC-StorageService/internal/api/handlers/process_message"
	"github.com/m04kA/SMC-StorageService/internal/api/middleware"
	"github.com/m04kA/SMC-StorageService/internal/config"
	catalogRepo "github.com/m04kA/SMC-StorageService/internal/infra/storage/catalog"
	draftRepo "github.com/m04kA/SMC-StorageService/internal/infra/storage/draft"
	inventoryRepo "github.com/m04kA/SMC-StorageService/internal/infra/storage/inventory"
	ledgerRepo "github.com/m04kA/SMC-StorageService/internal/infra/storage/ledger"
	profileRepo "github.com/m04kA/SMC-StorageService/internal/infra/storage/profile"
	sessionRepo "github.com/m04kA/SMC-StorageService/internal/infra/storage/session"
	"github.com/m04kA/SMC-StorageService/internal/integrations/qrpass"
	pricingService "github.com/m04kA/SMC-StorageService/internal/service/pricing"
	confirmPaymentUC "github.com/m04kA/SMC-StorageService/internal/usecase/confirm_payment"
	processMessageUC "github.com/m04kA/SMC-StorageService/internal/usecase/process_message"
	"github.com/m04kA/SMC-StorageService/pkg/logger"
	"github.com/m04kA/SMC-StorageService/pkg/metrics"
	"github.com/m04kA/SMC-StorageService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-StorageService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (журнал бронирований и клиенты)
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Подключаемся к Redis (диалоговое состояние, каталог, остатки)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем репозитории
	sessionRepository := sessionRepo.NewRepository(rdb)
	draftRepository := draftRepo.NewRepository(rdb)
	profileRepository := profileRepo.NewRepository(rdb)
	catalogRepository := catalogRepo.NewRepository(rdb)
	inventoryRepository := inventoryRepo.NewRepository(rdb)
	ledgerRepository := ledgerRepo.NewRepository(db)

	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы и интеграции
	pricingSvc := pricingService.NewService(catalogRepository, log)
	qrClient := qrpass.NewClient(cfg.Transport.QRCodeDir, log)

	// Инициализируем use cases
	processMessageUseCase := processMessageUC.NewUseCase(
		sessionRepository,
		draftRepository,
		profileRepository,
		catalogRepository,
		inventoryRepository,
		ledgerRepository,
		pricingSvc,
		txMgr,
		log,
	)

	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		sessionRepository,
		draftRepository,
		ledgerRepository,
		inventoryRepository,
		qrClient,
		log,
	)

	// Инициализируем handlers
	processMessage := processMessageHandler.NewHandler(processMessageUseCase, log)
	paymentPrecheck := paymentPrecheckHandler.NewHandler(confirmPaymentUseCase, log)
	paymentConfirm := paymentConfirmHandler.NewHandler(confirmPaymentUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Все ручки закрыты токеном транспорта: API обслуживает только шлюз чата
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(cfg.Transport.Token))

	// Обработка входящего сообщения диалога
	api.HandleFunc("/messages", processMessage.Handle).Methods(http.MethodPost)

	// Pre-checkout проверка счёта перед списанием денег
	api.HandleFunc("/payments/precheck", paymentPrecheck.Handle).Methods(http.MethodPost)

	// Фиксация успешной оплаты и выпуск кода доступа
	api.HandleFunc("/payments/confirm", paymentConfirm.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
