package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/erp/usability/internal/bootstrap"
	"github.com/erp/usability/internal/infrastructure/config"
	"github.com/erp/usability/internal/infrastructure/logger"
	"github.com/erp/usability/internal/infrastructure/telemetry"
	"github.com/erp/usability/internal/interfaces/http/handler"
	"github.com/erp/usability/internal/interfaces/http/middleware"
	"github.com/erp/usability/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//	@title			Stock Usability Ops API
//	@version		1.0
//	@description	Operational endpoints for stock usability features and background jobs
//	@BasePath		/api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(logger.FromAppConfig(cfg.Log, cfg.App.Env))
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting stock usability server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Telemetry
	tp, err := telemetry.NewTracerProvider(ctx, telemetry.ConfigFromApp(cfg.Telemetry), log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	mp, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfigFromApp(cfg.Telemetry), log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	lp, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfigFromApp(cfg.Telemetry), log)
	if err != nil {
		log.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	log = lp.Bridge(log)
	jobMetrics, err := telemetry.NewJobMetrics(mp.Meter("usability/scheduler"))
	if err != nil {
		log.Fatal("Failed to create job metrics", zap.Error(err))
	}

	// Database
	db, err := bootstrap.OpenDatabase(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database connection", zap.Error(err))
		}
	}()
	log.Info("Database connected",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.DBName),
	)

	services := bootstrap.NewServices(db.DB, log)

	// Disabled jobs are registered on demand so they can be triggered over
	// HTTP. Tick loops only start when the scheduler is enabled.
	sched, closeLocker, err := bootstrap.NewScheduler(cfg, log, jobMetrics)
	if err != nil {
		log.Fatal("Failed to create scheduler", zap.Error(err))
	}
	if err := bootstrap.RegisterJobs(sched, cfg, services, true); err != nil {
		log.Fatal("Failed to register jobs", zap.Error(err))
	}
	if cfg.Scheduler.Enabled {
		if err := sched.Start(ctx); err != nil {
			log.Fatal("Failed to start scheduler", zap.Error(err))
		}
	}

	// HTTP
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}
	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		logger.GinMiddleware(log),
		middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     cfg.Telemetry.Enabled,
		}),
		middleware.SpanAttributes(),
		middleware.Secure(),
		middleware.BodyLimit(middleware.DefaultBodyLimit),
	)

	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(handler.NewHealthHandler(db)).
		Register(handler.NewJobHandler(sched)).
		Register(handler.NewPickingHandler(services.Pickings)).
		Register(handler.NewStockMoveHandler(services.Moves)).
		Register(handler.NewLocationHandler(services.Locations)).
		Register(handler.NewReferenceHandler(services.References)).
		Register(handler.NewOrderpointHandler(services.Orderpoints)).
		Register(handler.NewInventoryHandler(services.Inventories)).
		Setup()

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if sched.IsRunning() {
		if err := sched.Stop(shutdownCtx); err != nil {
			log.Error("Failed to stop scheduler", zap.Error(err))
		}
	}
	if err := closeLocker(); err != nil {
		log.Error("Failed to close job locker", zap.Error(err))
	}
	shutdownTelemetry(shutdownCtx, log, tp, mp, lp)

	log.Info("Server exited")
}

func shutdownTelemetry(ctx context.Context, log *zap.Logger, tp *telemetry.TracerProvider, mp *telemetry.MeterProvider, lp *telemetry.LoggerProvider) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := tp.Shutdown(ctx); err != nil {
		log.Error("Failed to shutdown tracer provider", zap.Error(err))
	}
	if err := mp.Shutdown(ctx); err != nil {
		log.Error("Failed to shutdown meter provider", zap.Error(err))
	}
	if err := lp.Shutdown(ctx); err != nil {
		log.Error("Failed to shutdown logger provider", zap.Error(err))
	}
}
