package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	applyGestureHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/apply_gesture"
	cancelReservationHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/cancel_reservation"
	cancelSeriesHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/cancel_series"
	createRecurringHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_recurring_reservations"
	createReservationHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_reservation"
	createResourceHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_resource"
	exportCalendarHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/export_calendar"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_available_slots"
	getDayLayoutHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_day_layout"
	getReservationHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_reservation"
	getResourceHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_resource"
	listReservationsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_reservations"
	listResourcesHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_resources"
	updateReservationHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_reservation"
	updateResourceHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_resource"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/config"
	catalogRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/catalog"
	reservationRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/reservation"
	resourceRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-SchedulingService/internal/jobs"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling/grid"
	reservationsService "github.com/m04kA/SMC-SchedulingService/internal/service/reservations"
	resourcesService "github.com/m04kA/SMC-SchedulingService/internal/service/resources"
	applyGestureUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/apply_gesture"
	createRecurringUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_recurring_reservations"
	createReservationUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	getDayLayoutUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_day_layout"
	updateReservationUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

// finalizeTimeout ограничение времени одного запуска фоновой задачи
const finalizeTimeout = 30 * time.Second

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-SchedulingService...")
	log.Info("Configuration loaded from %s", *configPath)

	location, err := cfg.Scheduler.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Scheduler.Timezone, err)
	}

	dayGrid, err := grid.New(
		cfg.Scheduler.GridStartHour,
		cfg.Scheduler.GridEndHour,
		cfg.Scheduler.RowHeightPx,
		cfg.Scheduler.SnapMinutes,
	)
	if err != nil {
		log.Fatal("Invalid grid configuration: %v", err)
	}
	minDuration := time.Duration(cfg.Scheduler.MinDurationMinutes) * time.Minute

	log.Info("Scheduler: timezone=%s, grid=%02d:00-%02d:00, row=%.0fpx, snap=%dm, min_duration=%s",
		location, cfg.Scheduler.GridStartHour, cfg.Scheduler.GridEndHour,
		cfg.Scheduler.RowHeightPx, cfg.Scheduler.SnapMinutes, minDuration)

	// Инициализируем метрики (если включены)
	// nil *metrics.Metrics безопасен: все методы ничего не делают
	var metricsCollector *metrics.Metrics
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

	// Оборачиваем соединение: при выключенных метриках обёртка прозрачна
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(wrappedDB, location)
	resourceRepository := resourceRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)

	// Кэш справочников поверх репозиториев
	catalogCache := catalogRepo.NewCache(catalogRepository, resourceRepository, cfg.Cache.Size, cfg.Cache.TTL())
	log.Info("Catalog cache initialized (size=%d, ttl=%s)", cfg.Cache.Size, cfg.Cache.TTL())

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(reservationRepository, catalogCache, txMgr, log)
	resourcesSvc := resourcesService.NewService(resourceRepository, catalogCache, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		catalogCache,
		catalogCache,
		txMgr,
		metricsCollector,
		minDuration,
		log,
	)

	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		catalogCache,
		txMgr,
		metricsCollector,
		minDuration,
		log,
	)

	createRecurringUseCase := createRecurringUC.NewUseCase(
		createReservationUseCase,
		catalogCache,
		catalogCache,
		metricsCollector,
		cfg.Scheduler.MaxRecurrenceCount,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		resourceRepository,
		catalogCache,
		cfg.Scheduler.SlotStepMinutes,
		log,
	)

	getDayLayoutUseCase := getDayLayoutUC.NewUseCase(reservationRepository, catalogCache, dayGrid, log)

	applyGestureUseCase := applyGestureUC.NewUseCase(
		reservationRepository,
		updateReservationUseCase,
		metricsCollector,
		dayGrid,
		minDuration,
		location,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, location, log)
	createRecurring := createRecurringHandler.NewHandler(createRecurringUseCase, location, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, location, log)
	applyGesture := applyGestureHandler.NewHandler(applyGestureUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, location, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	cancelSeries := cancelSeriesHandler.NewHandler(reservationsSvc, log)
	exportCalendar := exportCalendarHandler.NewHandler(reservationsSvc, location, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	getDayLayout := getDayLayoutHandler.NewHandler(getDayLayoutUseCase, location, log)
	createResource := createResourceHandler.NewHandler(resourcesSvc, log)
	getResource := getResourceHandler.NewHandler(resourcesSvc, log)
	listResources := listResourcesHandler.NewHandler(resourcesSvc, log)
	updateResource := updateResourceHandler.NewHandler(resourcesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		api.Use(limiter.Middleware)
		log.Info("Rate limit enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Поиск свободных слотов
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Справочник ресурсов
	api.HandleFunc("/resources", listResources.Handle).Methods(http.MethodGet)
	api.HandleFunc("/resources/{resourceId}", getResource.Handle).Methods(http.MethodGet)

	// Раскладка дня ресурса и экспорт календаря
	api.HandleFunc("/resources/{resourceId}/layout", getDayLayout.Handle).Methods(http.MethodGet)
	api.HandleFunc("/resources/{resourceId}/calendar.ics", exportCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/recurring", createRecurring.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/interval", updateReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/gestures", applyGesture.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// --- Серии ---
	protected.HandleFunc("/series/{seriesId}/cancel", cancelSeries.Handle).Methods(http.MethodPatch)

	// --- Управление ресурсами ---
	protected.HandleFunc("/resources", createResource.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/resources/{resourceId}", updateResource.Handle).Methods(http.MethodPut)

	// Фоновая задача: перевод завершившихся бронирований в finalized
	scheduler := jobs.NewScheduler(location, log)
	if cfg.Jobs.FinalizeSchedule != "" {
		finalizeJob := jobs.NewFinalizeJob(reservationRepository, finalizeTimeout, log)
		if err := scheduler.AddFinalize(cfg.Jobs.FinalizeSchedule, finalizeJob); err != nil {
			log.Fatal("Failed to schedule finalize job: %v", err)
		}
	}
	scheduler.Start()

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	scheduler.Stop(shutdownCtx)

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
