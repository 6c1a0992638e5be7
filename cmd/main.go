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

	cancelReservationHandler "github.com/salonmagico/SM-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/salonmagico/SM-ReservationService/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/salonmagico/SM-ReservationService/internal/api/handlers/get_availability"
	getCalendarHandler "github.com/salonmagico/SM-ReservationService/internal/api/handlers/get_calendar"
	getReservationHandler "github.com/salonmagico/SM-ReservationService/internal/api/handlers/get_reservation"
	getReservationDraftHandler "github.com/salonmagico/SM-ReservationService/internal/api/handlers/get_reservation_draft"
	getUserReservationsHandler "github.com/salonmagico/SM-ReservationService/internal/api/handlers/get_user_reservations"
	listReservationsHandler "github.com/salonmagico/SM-ReservationService/internal/api/handlers/list_reservations"
	quoteReservationHandler "github.com/salonmagico/SM-ReservationService/internal/api/handlers/quote_reservation"
	updateReservationStatusHandler "github.com/salonmagico/SM-ReservationService/internal/api/handlers/update_reservation_status"
	"github.com/salonmagico/SM-ReservationService/internal/api/middleware"
	"github.com/salonmagico/SM-ReservationService/internal/config"
	"github.com/salonmagico/SM-ReservationService/internal/domain"
	catalogCache "github.com/salonmagico/SM-ReservationService/internal/infra/cache/catalog"
	reservationRepo "github.com/salonmagico/SM-ReservationService/internal/infra/storage/reservation"
	catalogServiceClient "github.com/salonmagico/SM-ReservationService/internal/integrations/catalogservice"
	reservationsService "github.com/salonmagico/SM-ReservationService/internal/service/reservations"
	createReservationUC "github.com/salonmagico/SM-ReservationService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/salonmagico/SM-ReservationService/internal/usecase/get_availability"
	getCalendarUC "github.com/salonmagico/SM-ReservationService/internal/usecase/get_calendar"
	quoteReservationUC "github.com/salonmagico/SM-ReservationService/internal/usecase/quote_reservation"
	"github.com/salonmagico/SM-ReservationService/pkg/dbmetrics"
	"github.com/salonmagico/SM-ReservationService/pkg/logger"
	"github.com/salonmagico/SM-ReservationService/pkg/metrics"
	"github.com/salonmagico/SM-ReservationService/pkg/simpletxmanager"
	"github.com/salonmagico/SM-ReservationService/pkg/txmanager"
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

	log.Info("Starting SM-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент каталог-сервиса
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Catalog service client initialized (url=%s, timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем кэш каталога в Redis (если включён)
	var cache *catalogCache.Cache
	if cfg.Redis.Enabled {
		cache = catalogCache.NewCache(
			cfg.Redis.Addr,
			cfg.Redis.Password,
			cfg.Redis.DB,
			time.Duration(cfg.Redis.TTLSeconds)*time.Second,
		)
		defer cache.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := cache.Ping(pingCtx); err != nil {
			// Кэш не критичен для старта: провайдер умеет работать без него
			log.Warn("Redis unavailable, catalog cache disabled: %v", err)
			cache = nil
		} else {
			log.Info("Catalog cache connected (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
		}
		cancel()
	}

	catalogProvider := catalogCache.NewProvider(catalogClient, cache, log)

	// Правила бронирования площадки
	rules := domain.BookingRules{
		MinLeadDays:      cfg.Booking.MinLeadDays,
		TuesdaySurcharge: cfg.Booking.TuesdaySurcharge,
		StaffIDs:         cfg.Booking.StaffIDs,
	}
	log.Info("Booking rules loaded (min_lead_days=%d, tuesday_surcharge=%.2f, staff=%d users)",
		rules.MinLeadDays, rules.TuesdaySurcharge, len(rules.StaffIDs))

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var reservationRepository *reservationRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервис
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		catalogProvider,
		rules,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		catalogProvider,
		txMgr,
		rules,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(reservationRepository, rules, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(reservationRepository, rules, log)
	quoteReservationUseCase := quoteReservationUC.NewUseCase(catalogProvider, rules, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	quoteReservation := quoteReservationHandler.NewHandler(quoteReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	getReservationDraft := getReservationDraftHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (X-User-ID опционален)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.OptionalAuth)

	// Доступность слотов на дату
	public.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Календарь доступности на месяц
	public.HandleFunc("/availability/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Расчёт стоимости по текущему состоянию формы
	public.HandleFunc("/reservations/quote", quoteReservation.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Список бронирований с фильтрацией (для сотрудников)
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Черновик формы редактирования
	protected.HandleFunc("/reservations/{reservationId}/draft", getReservationDraft.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Обновление статуса (для сотрудников)
	protected.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
