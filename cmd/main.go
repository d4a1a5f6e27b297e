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

	createReservationHandler "github.com/m04kA/SMC-BannerBookingService/internal/api/handlers/create_reservation"
	createSessionHandler "github.com/m04kA/SMC-BannerBookingService/internal/api/handlers/create_session"
	getAttributesHandler "github.com/m04kA/SMC-BannerBookingService/internal/api/handlers/get_attributes"
	getAvailabilityHandler "github.com/m04kA/SMC-BannerBookingService/internal/api/handlers/get_availability"
	getReservationHandler "github.com/m04kA/SMC-BannerBookingService/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/m04kA/SMC-BannerBookingService/internal/api/handlers/list_reservations"
	quotePriceHandler "github.com/m04kA/SMC-BannerBookingService/internal/api/handlers/quote_price"
	updateReservationHandler "github.com/m04kA/SMC-BannerBookingService/internal/api/handlers/update_reservation"
	"github.com/m04kA/SMC-BannerBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-BannerBookingService/internal/config"
	availabilityRepo "github.com/m04kA/SMC-BannerBookingService/internal/infra/storage/availability"
	sessionRepo "github.com/m04kA/SMC-BannerBookingService/internal/infra/storage/session"
	availabilityServiceClient "github.com/m04kA/SMC-BannerBookingService/internal/integrations/availabilityservice"
	"github.com/m04kA/SMC-BannerBookingService/internal/service/derivation"
	sessionsService "github.com/m04kA/SMC-BannerBookingService/internal/service/sessions"
	createReservationUC "github.com/m04kA/SMC-BannerBookingService/internal/usecase/create_reservation"
	loadAvailabilityUC "github.com/m04kA/SMC-BannerBookingService/internal/usecase/load_availability"
	updateReservationUC "github.com/m04kA/SMC-BannerBookingService/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-BannerBookingService/pkg/logger"
	"github.com/m04kA/SMC-BannerBookingService/pkg/metrics"
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

	log.Info("Starting SMC-BannerBookingService...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Calendar.Location()
	if err != nil {
		log.Fatal("Failed to load calendar timezone %q: %v", cfg.Calendar.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	// Интерфейсы остаются nil при выключенных метриках, потребители подставляют noop
	var (
		metricsCollector *metrics.Metrics
		loaderMetrics    loadAvailabilityUC.Metrics
		sessionMetrics   sessionsService.Metrics
		createMetrics    createReservationUC.Metrics
		updateMetrics    updateReservationUC.Metrics
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		loaderMetrics = metricsCollector
		sessionMetrics = metricsCollector
		createMetrics = metricsCollector
		updateMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Источник занятых дат
	var source loadAvailabilityUC.AvailabilitySource
	switch cfg.Availability.Source {
	case config.SourcePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		source = availabilityRepo.NewRepository(db, cfg.Availability.Table, location)

	default:
		source = availabilityServiceClient.NewClient(
			cfg.Availability.GraphQLURL,
			cfg.Availability.TimeoutDuration(),
			location,
			log,
		)
		log.Info("Availability client initialized (url=%s, timeout=%ds)",
			cfg.Availability.GraphQLURL, cfg.Availability.Timeout)
	}

	options := cfg.Attributes.Options()

	// Инициализируем репозитории, движок расчета и сервисы
	sessionRepository := sessionRepo.NewRepository()
	engine := derivation.NewEngine(cfg.Pricing.DailyRate, options.Defaults(), location)

	loadAvailabilityUseCase := loadAvailabilityUC.NewUseCase(
		source,
		cfg.Availability.TimeoutDuration(),
		location,
		loaderMetrics,
		log,
	)

	sessionSvc := sessionsService.NewService(
		loadAvailabilityUseCase,
		sessionRepository,
		engine,
		options,
		location,
		sessionMetrics,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		sessionRepository,
		engine,
		options,
		createMetrics,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		sessionRepository,
		engine,
		options,
		updateMetrics,
		log,
	)

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(sessionSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(sessionSvc, log)
	getAttributes := getAttributesHandler.NewHandler(sessionSvc, log)
	quotePrice := quotePriceHandler.NewHandler(engine, location, log)
	listReservations := listReservationsHandler.NewHandler(sessionSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, location, log)
	getReservation := getReservationHandler.NewHandler(sessionSvc, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, location, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Справочники и расчет цены
	api.HandleFunc("/attributes", getAttributes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/quote", quotePrice.Handle).Methods(http.MethodPost)

	// --- Сессия страницы ---
	// Новая загрузка страницы
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)

	// Данные для date-range picker
	api.HandleFunc("/sessions/{sessionId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// --- Бронирования сессии ---
	api.HandleFunc("/sessions/{sessionId}/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)

	// Очистка устаревших сессий
	stopCleanupCh := make(chan struct{})
	go func() {
		ticker := time.NewTicker(cfg.Session.CleanupIntervalDuration())
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sessionSvc.CleanupExpired(cfg.Session.TTLDuration())
			case <-stopCleanupCh:
				return
			}
		}
	}()
	log.Info("Session cleanup started (ttl=%dm, interval=%ds)", cfg.Session.TTL, cfg.Session.CleanupInterval)

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopCleanupCh)

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
