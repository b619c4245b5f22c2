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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminDeleteBookingHandler "github.com/m04kA/TennisCourt-BookingService/internal/api/handlers/admin_delete_booking"
	adminListBookingsHandler "github.com/m04kA/TennisCourt-BookingService/internal/api/handlers/admin_list_bookings"
	adminLoginHandler "github.com/m04kA/TennisCourt-BookingService/internal/api/handlers/admin_login"
	adminLogoutHandler "github.com/m04kA/TennisCourt-BookingService/internal/api/handlers/admin_logout"
	createPaymentIntentHandler "github.com/m04kA/TennisCourt-BookingService/internal/api/handlers/create_payment_intent"
	getSlotsHandler "github.com/m04kA/TennisCourt-BookingService/internal/api/handlers/get_slots"
	paymentWebhookHandler "github.com/m04kA/TennisCourt-BookingService/internal/api/handlers/payment_webhook"
	reserveSlotHandler "github.com/m04kA/TennisCourt-BookingService/internal/api/handlers/reserve_slot"
	"github.com/m04kA/TennisCourt-BookingService/internal/api/middleware"
	"github.com/m04kA/TennisCourt-BookingService/internal/auth"
	"github.com/m04kA/TennisCourt-BookingService/internal/config"
	bookingRepo "github.com/m04kA/TennisCourt-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/TennisCourt-BookingService/internal/integrations/mailqueue"
	"github.com/m04kA/TennisCourt-BookingService/internal/integrations/stripegateway"
	adminService "github.com/m04kA/TennisCourt-BookingService/internal/service/admin"
	confirmPaymentUC "github.com/m04kA/TennisCourt-BookingService/internal/usecase/confirm_payment"
	createPaymentIntentUC "github.com/m04kA/TennisCourt-BookingService/internal/usecase/create_payment_intent"
	getAvailableSlotsUC "github.com/m04kA/TennisCourt-BookingService/internal/usecase/get_available_slots"
	reserveSlotUC "github.com/m04kA/TennisCourt-BookingService/internal/usecase/reserve_slot"
	"github.com/m04kA/TennisCourt-BookingService/pkg/dbmetrics"
	"github.com/m04kA/TennisCourt-BookingService/pkg/logger"
	"github.com/m04kA/TennisCourt-BookingService/pkg/metrics"
	"github.com/m04kA/TennisCourt-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/TennisCourt-BookingService/pkg/txmanager"
)

// mailExchange exchange для сообщений почтовому воркеру
const mailExchange = "tennis-court.notifications"

func main() {
	// Подтягиваем .env, если он есть (секреты читаются из окружения)
	_ = godotenv.Load()

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

	log.Info("Starting TennisCourt-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Параметры бронирования (провалидированы в config.Load)
	window, _ := cfg.Booking.Window()
	schedule, _ := cfg.Booking.Schedule()
	log.Info("Booking window: %s .. %s", cfg.Booking.WindowStart, cfg.Booking.WindowEnd)

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

	// Инициализируем платёжный шлюз
	stripeClient := stripegateway.NewClient(
		cfg.Secrets.StripeSecretKey,
		cfg.Secrets.StripeWebhookSecret,
		log,
	)
	log.Info("Stripe gateway initialized")

	// Инициализируем публикацию писем (best effort: без брокера сервис живёт,
	// подтверждения просто не рассылаются)
	var mailPublisher *mailqueue.Publisher
	if cfg.Secrets.AMQPUrl != "" {
		mailPublisher, err = mailqueue.NewPublisher(cfg.Secrets.AMQPUrl, mailExchange, log)
		if err != nil {
			log.Warn("Mail publisher unavailable, confirmations will not be sent: %v", err)
			mailPublisher = nil
		} else {
			defer mailPublisher.Close()
			log.Info("Mail publisher connected (exchange=%s)", mailExchange)
		}
	} else {
		log.Warn("AMQP_URL is not set, confirmation emails disabled")
	}

	// Инициализируем репозиторий (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	adminSvc := adminService.NewService(bookingRepository, log)

	// Инициализируем аутентификацию администратора
	sessions := auth.NewSessionManager(
		[]byte(cfg.Secrets.SessionHashKey),
		sessionBlockKey(cfg.Secrets.SessionBlockKey),
	)
	passwordVerifier := auth.NewPasswordVerifier(cfg.Secrets.AdminPasswordHash)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		window,
		schedule,
		cfg.Booking.SlotMinutes,
		log,
	)

	reserveSlotUseCase := reserveSlotUC.NewUseCase(
		bookingRepository,
		txMgr,
		window,
		cfg.Booking.HoldMinutes,
		log,
	)

	createPaymentIntentUseCase := createPaymentIntentUC.NewUseCase(
		bookingRepository,
		stripeClient,
		cfg.Booking.PriceCents,
		cfg.Booking.Currency,
		log,
	)

	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		bookingRepository,
		mailPublisherOrNil(mailPublisher),
		log,
	)

	// Инициализируем handlers
	getSlots := getSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	reserveSlot := reserveSlotHandler.NewHandler(reserveSlotUseCase, log)
	createPaymentIntent := createPaymentIntentHandler.NewHandler(createPaymentIntentUseCase, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(stripeClient, confirmPaymentUseCase, log)
	adminListBookings := adminListBookingsHandler.NewHandler(adminSvc, log)
	adminDeleteBooking := adminDeleteBookingHandler.NewHandler(adminSvc, log)
	adminLogin := adminLoginHandler.NewHandler(passwordVerifier, sessions, log)
	adminLogout := adminLogoutHandler.NewHandler(sessions, log)

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

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты на дату
	r.HandleFunc("/slots", getSlots.Handle).Methods(http.MethodGet)

	// Временная бронь слота (hold)
	r.HandleFunc("/reserve", reserveSlot.Handle).Methods(http.MethodPost)

	// Создание платежа за бронь
	r.HandleFunc("/create-payment-intent", createPaymentIntent.Handle).Methods(http.MethodPost)

	// Webhook платёжного провайдера (аутентификация подписью)
	r.HandleFunc("/webhook", paymentWebhook.Handle).Methods(http.MethodPost)

	// Вход/выход администратора
	r.HandleFunc("/admin-login", adminLogin.Handle).Methods(http.MethodPost)
	r.HandleFunc("/admin-logout", adminLogout.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют админскую сессию)
	// ============================================================

	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(sessions))

	// Список всех бронирований
	admin.HandleFunc("/bookings", adminListBookings.Handle).Methods(http.MethodGet)

	// Удаление бронирования
	admin.HandleFunc("/delete/{bookingId}", adminDeleteBooking.Handle).Methods(http.MethodPost)

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

// sessionBlockKey пустой SESSION_BLOCK_KEY означает cookie без шифрования
func sessionBlockKey(key string) []byte {
	if key == "" {
		return nil
	}
	return []byte(key)
}

// mailPublisherOrNil без брокера usecase получает nil-паблишер,
// а не типизированный nil внутри интерфейса
func mailPublisherOrNil(p *mailqueue.Publisher) confirmPaymentUC.MailPublisher {
	if p == nil {
		return nil
	}
	return p
}
