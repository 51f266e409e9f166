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

	createAppointmentHandler "github.com/agendaflow/scheduling-service/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/agendaflow/scheduling-service/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/agendaflow/scheduling-service/internal/api/handlers/get_appointment"
	getDayScheduleHandler "github.com/agendaflow/scheduling-service/internal/api/handlers/get_day_schedule"
	listAppointmentsHandler "github.com/agendaflow/scheduling-service/internal/api/handlers/list_appointments"
	listProfessionalCitiesHandler "github.com/agendaflow/scheduling-service/internal/api/handlers/list_professional_cities"
	moveAppointmentHandler "github.com/agendaflow/scheduling-service/internal/api/handlers/move_appointment"
	updateAppointmentHandler "github.com/agendaflow/scheduling-service/internal/api/handlers/update_appointment"
	updateProfessionalCitiesHandler "github.com/agendaflow/scheduling-service/internal/api/handlers/update_professional_cities"
	"github.com/agendaflow/scheduling-service/internal/api/middleware"
	"github.com/agendaflow/scheduling-service/internal/config"
	"github.com/agendaflow/scheduling-service/internal/infra/migrator"
	apptRepo "github.com/agendaflow/scheduling-service/internal/infra/storage/appointment"
	cityRepo "github.com/agendaflow/scheduling-service/internal/infra/storage/city"
	profRepo "github.com/agendaflow/scheduling-service/internal/infra/storage/professional"
	linkRepo "github.com/agendaflow/scheduling-service/internal/infra/storage/professionalcity"
	serviceRepo "github.com/agendaflow/scheduling-service/internal/infra/storage/service"
	appointmentsService "github.com/agendaflow/scheduling-service/internal/service/appointments"
	getDayScheduleUC "github.com/agendaflow/scheduling-service/internal/usecase/get_day_schedule"
	listProfessionalCitiesUC "github.com/agendaflow/scheduling-service/internal/usecase/list_professional_cities"
	moveAppointmentUC "github.com/agendaflow/scheduling-service/internal/usecase/move_appointment"
	saveAppointmentUC "github.com/agendaflow/scheduling-service/internal/usecase/save_appointment"
	updateProfessionalCitiesUC "github.com/agendaflow/scheduling-service/internal/usecase/update_professional_cities"
	"github.com/agendaflow/scheduling-service/pkg/dbmetrics"
	"github.com/agendaflow/scheduling-service/pkg/logger"
	"github.com/agendaflow/scheduling-service/pkg/metrics"
	"github.com/agendaflow/scheduling-service/pkg/simpletxmanager"
	"github.com/agendaflow/scheduling-service/pkg/txmanager"
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

	log.Info("Starting scheduling-service...")
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

	// Применяем миграции (если включено)
	if cfg.Database.Migrate {
		mg, err := migrator.New(db, cfg.Database.MigrationsPath)
		if err != nil {
			log.Fatal("Failed to initialize migrator: %v", err)
		}
		if err := mg.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		version, err := mg.Version(context.Background())
		if err != nil {
			log.Fatal("Failed to get migrations version: %v", err)
		}
		log.Info("Migrations applied, schema version %d", version)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository  *apptRepo.Repository
		professionalRepository *profRepo.Repository
		serviceRepository      *serviceRepo.Repository
		cityRepository         *cityRepo.Repository
		linkRepository         *linkRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = apptRepo.NewRepository(wrappedDB)
		professionalRepository = profRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		cityRepository = cityRepo.NewRepository(wrappedDB)
		linkRepository = linkRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = apptRepo.NewRepository(db)
		professionalRepository = profRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		cityRepository = cityRepo.NewRepository(db)
		linkRepository = linkRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)

	// Инициализируем use cases
	moveAppointmentUseCase := moveAppointmentUC.NewUseCase(
		appointmentRepository,
		professionalRepository,
		serviceRepository,
		cityRepository,
		linkRepository,
		txMgr,
		log,
	)

	saveAppointmentUseCase := saveAppointmentUC.NewUseCase(
		appointmentRepository,
		professionalRepository,
		serviceRepository,
		cityRepository,
		txMgr,
		log,
	)

	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(
		appointmentRepository,
		professionalRepository,
		serviceRepository,
		log,
	)

	listProfessionalCitiesUseCase := listProfessionalCitiesUC.NewUseCase(
		professionalRepository,
		cityRepository,
		linkRepository,
		log,
	)

	updateProfessionalCitiesUseCase := updateProfessionalCitiesUC.NewUseCase(
		professionalRepository,
		cityRepository,
		linkRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(saveAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(saveAppointmentUseCase, log)
	moveAppointment := moveAppointmentHandler.NewHandler(moveAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	listProfessionalCities := listProfessionalCitiesHandler.NewHandler(listProfessionalCitiesUseCase, log)
	updateProfessionalCities := updateProfessionalCitiesHandler.NewHandler(updateProfessionalCitiesUseCase, log)

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

	// Все маршруты требуют X-Tenant-ID header
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Дневная доска расписания ---
	protected.HandleFunc("/schedule", getDaySchedule.Handle).Methods(http.MethodGet)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/appointments/{appointmentId}/move", moveAppointment.Handle).Methods(http.MethodPatch)

	// --- Сужение городов для формы ---
	protected.HandleFunc("/professionals/{professionalId}/cities", listProfessionalCities.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{professionalId}/cities", updateProfessionalCities.Handle).Methods(http.MethodPut)

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
