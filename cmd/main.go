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

	addServiceHandler "github.com/m04kA/SMC-SalonDashboard/internal/api/handlers/add_service"
	confirmAppointmentHandler "github.com/m04kA/SMC-SalonDashboard/internal/api/handlers/confirm_appointment"
	confirmBookingHandler "github.com/m04kA/SMC-SalonDashboard/internal/api/handlers/confirm_booking"
	generateBillHandler "github.com/m04kA/SMC-SalonDashboard/internal/api/handlers/generate_bill"
	getAppointmentsHandler "github.com/m04kA/SMC-SalonDashboard/internal/api/handlers/get_appointments"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonDashboard/internal/api/handlers/get_available_slots"
	getBillStatusHandler "github.com/m04kA/SMC-SalonDashboard/internal/api/handlers/get_bill_status"
	getBookingHandler "github.com/m04kA/SMC-SalonDashboard/internal/api/handlers/get_booking"
	getPublicBillHandler "github.com/m04kA/SMC-SalonDashboard/internal/api/handlers/get_public_bill"
	getServicesHandler "github.com/m04kA/SMC-SalonDashboard/internal/api/handlers/get_services"
	logoutHandler "github.com/m04kA/SMC-SalonDashboard/internal/api/handlers/logout"
	removeServiceHandler "github.com/m04kA/SMC-SalonDashboard/internal/api/handlers/remove_service"
	selectDateHandler "github.com/m04kA/SMC-SalonDashboard/internal/api/handlers/select_date"
	selectSlotHandler "github.com/m04kA/SMC-SalonDashboard/internal/api/handlers/select_slot"
	signUpHandler "github.com/m04kA/SMC-SalonDashboard/internal/api/handlers/sign_up"
	verifyHandler "github.com/m04kA/SMC-SalonDashboard/internal/api/handlers/verify"
	"github.com/m04kA/SMC-SalonDashboard/internal/api/middleware"
	"github.com/m04kA/SMC-SalonDashboard/internal/config"
	catalogCache "github.com/m04kA/SMC-SalonDashboard/internal/infra/cache/catalog"
	sessionRepo "github.com/m04kA/SMC-SalonDashboard/internal/infra/storage/session"
	"github.com/m04kA/SMC-SalonDashboard/internal/integrations/salonapi"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/billstatus"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/bookingsession"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/slotchain"
	addServiceUC "github.com/m04kA/SMC-SalonDashboard/internal/usecase/add_service"
	cleanupSessionsUC "github.com/m04kA/SMC-SalonDashboard/internal/usecase/cleanup_sessions"
	confirmBookingUC "github.com/m04kA/SMC-SalonDashboard/internal/usecase/confirm_booking"
	generateBillUC "github.com/m04kA/SMC-SalonDashboard/internal/usecase/generate_bill"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonDashboard/internal/usecase/get_available_slots"
	listAppointmentsUC "github.com/m04kA/SMC-SalonDashboard/internal/usecase/list_appointments"
	loginUC "github.com/m04kA/SMC-SalonDashboard/internal/usecase/login"
	logoutUC "github.com/m04kA/SMC-SalonDashboard/internal/usecase/logout"
	selectSlotUC "github.com/m04kA/SMC-SalonDashboard/internal/usecase/select_slot"
	"github.com/m04kA/SMC-SalonDashboard/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonDashboard/pkg/logger"
	"github.com/m04kA/SMC-SalonDashboard/pkg/metrics"
)

// Интервал очистки просроченных сессий
const sessionCleanupInterval = 10 * time.Minute

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

	log.Info("Starting SMC-SalonDashboard...")
	log.Info("Configuration loaded from config.toml")

	salonLocation, err := cfg.SalonAPI.Location()
	if err != nil {
		log.Fatal("Failed to load salon timezone %q: %v", cfg.SalonAPI.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopBackgroundCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных сессий
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

	// Репозиторий сессий (с метриками или без)
	var sessionRepository *sessionRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopBackgroundCh)
		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		sessionRepository = sessionRepo.NewRepository(db)
	}

	// Кэш каталога услуг (Redis опционален)
	var catalogStore catalogCache.Store
	if cfg.Redis.Enabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis unavailable at %s, catalog cache disabled: %v", cfg.Redis.Addr, err)
		} else {
			catalogStore = redisClient
			log.Info("Catalog cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.CatalogTTL)
		}
		cancel()
	}

	// Клиент API салона
	clientOpts := []salonapi.Option{salonapi.WithLocation(salonLocation)}
	if cfg.Metrics.Enabled {
		clientOpts = append(clientOpts, salonapi.WithObserver(metricsCollector))
	}
	salonClient := salonapi.NewClient(
		cfg.SalonAPI.URL,
		time.Duration(cfg.SalonAPI.Timeout)*time.Second,
		log,
		clientOpts...,
	)
	log.Info("Salon API client initialized (url=%s, timeout=%ds, timezone=%s)",
		cfg.SalonAPI.URL, cfg.SalonAPI.Timeout, salonLocation)

	catalog := catalogCache.NewCache(catalogStore, salonClient, time.Duration(cfg.Redis.CatalogTTL)*time.Second, log)

	// Состояние записей и счетов
	bookings := bookingsession.NewManager(slotchain.NewBuilder(nil))
	billTracker := billstatus.NewTracker(
		billstatus.TimerScheduler{},
		time.Duration(cfg.Booking.BillSuccessDisplaySeconds)*time.Second,
		time.Duration(cfg.Booking.BillFailedRetentionSeconds)*time.Second,
	)

	// Инициализируем use cases
	var billObserver generateBillUC.ResultObserver
	if cfg.Metrics.Enabled {
		billObserver = metricsCollector
	}

	loginUseCase := loginUC.NewUseCase(salonClient, sessionRepository,
		time.Duration(cfg.Booking.SessionTTLHours)*time.Hour, log)
	logoutUseCase := logoutUC.NewUseCase(sessionRepository, bookings, log)
	cleanupSessionsUseCase := cleanupSessionsUC.NewUseCase(sessionRepository, bookings, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(salonClient, log)
	selectSlotUseCase := selectSlotUC.NewUseCase(salonClient, bookings, log)
	addServiceUseCase := addServiceUC.NewUseCase(catalog, bookings, log)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(salonClient, bookings, log)
	listAppointmentsUseCase := listAppointmentsUC.NewUseCase(salonClient,
		&listAppointmentsUC.RealTimeProvider{Location: salonLocation}, log)
	generateBillUseCase := generateBillUC.NewUseCase(salonClient, billTracker, billObserver, log)

	// Инициализируем handlers
	signUp := signUpHandler.NewHandler(salonClient, log)
	verify := verifyHandler.NewHandler(loginUseCase, log)
	logout := logoutHandler.NewHandler(logoutUseCase, log)
	getPublicBill := getPublicBillHandler.NewHandler(salonClient, log)
	getServices := getServicesHandler.NewHandler(catalog, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, salonLocation, log)
	getBooking := getBookingHandler.NewHandler(bookings, log)
	selectDate := selectDateHandler.NewHandler(bookings, salonLocation, log)
	selectSlot := selectSlotHandler.NewHandler(selectSlotUseCase, log)
	addService := addServiceHandler.NewHandler(addServiceUseCase, log)
	removeService := removeServiceHandler.NewHandler(bookings, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	getAppointments := getAppointmentsHandler.NewHandler(listAppointmentsUseCase, salonLocation, log)
	generateBill := generateBillHandler.NewHandler(generateBillUseCase, log)
	getBillStatus := getBillStatusHandler.NewHandler(billTracker, log)
	confirmAppointment := confirmAppointmentHandler.NewHandler(salonClient, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без сессии)
	// ============================================================

	api.HandleFunc("/auth/sign-up", signUp.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/verify", verify.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bills/{ulid}", getPublicBill.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Session-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(sessionRepository, bookings, log))

	protected.HandleFunc("/auth/session", logout.Handle).Methods(http.MethodDelete)

	// --- Каталог и слоты ---
	protected.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Сборка записи ---
	protected.HandleFunc("/booking", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/booking/date", selectDate.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/booking/slot", selectSlot.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/booking/services", addService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/booking/services/{segmentId}", removeService.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/booking/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// --- Записи салона ---
	// bill-status регистрируется до {id}, иначе совпадет с шаблоном
	protected.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/bill-status", getBillStatus.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/bill", generateBill.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}/confirm", confirmAppointment.Handle).Methods(http.MethodPut)

	// Очистка просроченных сессий
	go cleanupSessions(cleanupSessionsUseCase, stopBackgroundCh)

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
	close(stopBackgroundCh)

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

// cleanupSessions периодически удаляет просроченные сессии вместе с их незавершенными записями
func cleanupSessions(uc *cleanupSessionsUC.UseCase, stopCh <-chan struct{}) {
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			// Ошибка уже залогирована в use case
			_, _ = uc.Execute(ctx, time.Now())
			cancel()
		}
	}
}
