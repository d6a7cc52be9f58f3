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

	createBookingHandler "github.com/svtd-dev/TTD-BookingService/internal/api/handlers/create_booking"
	diagnosticsHandler "github.com/svtd-dev/TTD-BookingService/internal/api/handlers/diagnostics"
	getAvailabilityHandler "github.com/svtd-dev/TTD-BookingService/internal/api/handlers/get_availability"
	getBookingsHandler "github.com/svtd-dev/TTD-BookingService/internal/api/handlers/get_bookings"
	healthHandler "github.com/svtd-dev/TTD-BookingService/internal/api/handlers/health"
	templeInfoHandler "github.com/svtd-dev/TTD-BookingService/internal/api/handlers/temple_info"
	"github.com/svtd-dev/TTD-BookingService/internal/api/middleware"
	"github.com/svtd-dev/TTD-BookingService/internal/config"
	bookingRepo "github.com/svtd-dev/TTD-BookingService/internal/infra/storage/booking"
	bookingsService "github.com/svtd-dev/TTD-BookingService/internal/service/bookings"
	capacityService "github.com/svtd-dev/TTD-BookingService/internal/service/capacity"
	createBookingUC "github.com/svtd-dev/TTD-BookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/svtd-dev/TTD-BookingService/internal/usecase/get_availability"
	"github.com/svtd-dev/TTD-BookingService/migrations"
	"github.com/svtd-dev/TTD-BookingService/pkg/dbmetrics"
	"github.com/svtd-dev/TTD-BookingService/pkg/logger"
	"github.com/svtd-dev/TTD-BookingService/pkg/metrics"
)

func main() {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting TTD-BookingService...")
	log.Info("Configuration loaded from config.toml (DATABASE_URL set=%v, DATABASE_NAME set=%v)",
		cfg.Database.URLFromEnv, cfg.Database.NameFromEnv)

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database connection: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// An unreachable store does not gate startup: the server still serves
	// and /test reports the connection state.
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		log.Warn("Database not reachable at startup: %v", err)
	} else {
		log.Info("Successfully connected to database (db=%s)", cfg.Database.DBName)
		if err := migrations.Apply(pingCtx, db); err != nil {
			log.Warn("Failed to apply migrations: %v", err)
		} else {
			log.Info("Schema migrations applied")
		}
	}
	cancelPing()

	var bookingRepository *bookingRepo.Repository
	var store diagnosticsHandler.Store = db

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		store = wrappedDB
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
	}

	capacitySvc := capacityService.NewService(bookingRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, log)

	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, capacitySvc, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(capacitySvc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingsSvc, log)
	templeInfo := templeInfoHandler.NewHandler(log)
	health := healthHandler.NewHandler()
	diagnostics := diagnosticsHandler.NewHandler(
		store,
		bookingRepository,
		cfg.Database.URLFromEnv,
		cfg.Database.NameFromEnv,
		log,
	)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/", health.Handle).Methods(http.MethodGet)
	r.HandleFunc("/test", diagnostics.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/temple/info", templeInfo.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr: addr,
		// CORS wraps the router so OPTIONS preflights are answered even
		// for unmatched method/route combinations.
		Handler:      middleware.CORS(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
