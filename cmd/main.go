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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-PetCareBooking/internal/api/handlers/cancel_booking"
	cancelSessionHandler "github.com/m04kA/SMC-PetCareBooking/internal/api/handlers/cancel_session"
	confirmSessionHandler "github.com/m04kA/SMC-PetCareBooking/internal/api/handlers/confirm_session"
	getBookingHandler "github.com/m04kA/SMC-PetCareBooking/internal/api/handlers/get_booking"
	getCatalogHandler "github.com/m04kA/SMC-PetCareBooking/internal/api/handlers/get_catalog"
	getModuleConfigHandler "github.com/m04kA/SMC-PetCareBooking/internal/api/handlers/get_module_config"
	getSessionHandler "github.com/m04kA/SMC-PetCareBooking/internal/api/handlers/get_session"
	nextStepHandler "github.com/m04kA/SMC-PetCareBooking/internal/api/handlers/next_step"
	openSessionHandler "github.com/m04kA/SMC-PetCareBooking/internal/api/handlers/open_session"
	previousStepHandler "github.com/m04kA/SMC-PetCareBooking/internal/api/handlers/previous_step"
	updateModuleConfigHandler "github.com/m04kA/SMC-PetCareBooking/internal/api/handlers/update_module_config"
	updateSessionHandler "github.com/m04kA/SMC-PetCareBooking/internal/api/handlers/update_session"
	"github.com/m04kA/SMC-PetCareBooking/internal/api/middleware"
	"github.com/m04kA/SMC-PetCareBooking/internal/config"
	bookingRepo "github.com/m04kA/SMC-PetCareBooking/internal/infra/storage/booking"
	modulesRepo "github.com/m04kA/SMC-PetCareBooking/internal/infra/storage/modules"
	"github.com/m04kA/SMC-PetCareBooking/internal/integrations/clientdirectory"
	bookingsService "github.com/m04kA/SMC-PetCareBooking/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-PetCareBooking/internal/service/catalog"
	modulesService "github.com/m04kA/SMC-PetCareBooking/internal/service/modules"
	sessionsService "github.com/m04kA/SMC-PetCareBooking/internal/service/sessions"
	createBookingUC "github.com/m04kA/SMC-PetCareBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-PetCareBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-PetCareBooking/pkg/logger"
	"github.com/m04kA/SMC-PetCareBooking/pkg/metrics"
	"github.com/m04kA/SMC-PetCareBooking/pkg/txmanager"
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

	log.Info("Starting SMC-PetCareBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики
	// При выключенных метриках счетчики пишутся в приватный registry
	var registerer prometheus.Registerer = prometheus.NewRegistry()
	if cfg.Metrics.Enabled {
		registerer = prometheus.DefaultRegisterer
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}
	metricsCollector := metrics.NewWithRegisterer(cfg.Metrics.ServiceName, registerer)

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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		modulesRepository *modulesRepo.Repository
		txMgr             *txmanager.Manager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.Wrap(db, dbmetrics.NewCollector(cfg.Metrics.ServiceName, registerer))
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		modulesRepository = modulesRepo.NewRepository(wrappedDB)
		txMgr = txmanager.New(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		modulesRepository = modulesRepo.NewRepository(db)
		txMgr = txmanager.NewFromSQL(db)
	}

	// Настройки модулей: значения из конфигурации, затем БД
	modulesSvc := modulesService.NewService(modulesRepository, log)
	modulesSvc.Seed(cfg.ModuleSettings())
	if err := modulesSvc.Load(context.Background(), cfg.Facility.ID); err != nil {
		log.Warn("Failed to load module settings for facility=%s, using config values: %v", cfg.Facility.ID, err)
	}

	catalogSvc := catalogService.NewService(cfg.Catalog.Rates(), modulesSvc)
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, log)

	// Справочник клиентов опционален
	var rosterSource sessionsService.RosterSource
	if cfg.ClientDirectory.URL != "" {
		rosterSource = clientdirectory.NewClient(
			cfg.ClientDirectory.URL,
			time.Duration(cfg.ClientDirectory.Timeout)*time.Second,
			log,
		)
		log.Info("Client directory initialized (url=%s timeout=%ds)", cfg.ClientDirectory.URL, cfg.ClientDirectory.Timeout)
	} else {
		log.Info("Client directory disabled, rosters are supplied by the caller")
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		modulesRepository,
		txMgr,
		log,
	)

	sessionsSvc := sessionsService.NewService(
		sessionsService.Config{
			FacilityID:   cfg.Facility.ID,
			FacilityName: cfg.Facility.Name,
			IdleTimeout:  time.Duration(cfg.Sessions.IdleTimeoutMinutes) * time.Minute,
		},
		catalogSvc,
		modulesSvc,
		rosterSource,
		createBookingUseCase,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, modulesSvc, cfg.Facility.ID, log)
	getModuleConfig := getModuleConfigHandler.NewHandler(modulesSvc, log)
	updateModuleConfig := updateModuleConfigHandler.NewHandler(modulesSvc, log)
	openSession := openSessionHandler.NewHandler(sessionsSvc, log)
	getSession := getSessionHandler.NewHandler(sessionsSvc, log)
	updateSession := updateSessionHandler.NewHandler(sessionsSvc, log)
	nextStep := nextStepHandler.NewHandler(sessionsSvc, log)
	previousStep := previousStepHandler.NewHandler(sessionsSvc, log)
	confirmSession := confirmSessionHandler.NewHandler(sessionsSvc, log)
	cancelSession := cancelSessionHandler.NewHandler(sessionsSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг и цен
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// Настройки модулей площадки
	api.HandleFunc("/facilities/{facilityId}/modules", getModuleConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Мастер бронирования ---
	protected.HandleFunc("/wizard/sessions", openSession.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/wizard/sessions/{sessionId}", updateSession.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/wizard/sessions/{sessionId}", cancelSession.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/wizard/sessions/{sessionId}/next", nextStep.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/sessions/{sessionId}/previous", previousStep.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/sessions/{sessionId}/confirm", confirmSession.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Управление площадкой ---
	protected.HandleFunc("/facilities/{facilityId}/modules", updateModuleConfig.Handle).Methods(http.MethodPut)

	var handler http.Handler = gorillaHandlers.RecoveryHandler(gorillaHandlers.PrintRecoveryStack(true))(r)
	if len(cfg.Server.AllowedOrigins) > 0 {
		handler = gorillaHandlers.CORS(
			gorillaHandlers.AllowedOrigins(cfg.Server.AllowedOrigins),
			gorillaHandlers.AllowedMethods([]string{
				http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
			}),
			gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.UserIDHeader}),
		)(handler)
		log.Info("CORS enabled for origins %v", cfg.Server.AllowedOrigins)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	log.Info("Server stopped gracefully, %d wizard sessions discarded", sessionsSvc.Count())
}
