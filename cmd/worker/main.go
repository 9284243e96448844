package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/erp/usability/internal/bootstrap"
	"github.com/erp/usability/internal/infrastructure/config"
	"github.com/erp/usability/internal/infrastructure/logger"
	"github.com/erp/usability/internal/infrastructure/scheduler"
	"github.com/erp/usability/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

func main() {
	var (
		once     string
		listJobs bool
	)
	flag.StringVar(&once, "once", "", "Run the named job once and exit")
	flag.BoolVar(&listJobs, "list", false, "List registered jobs and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.FromAppConfig(cfg.Log, cfg.App.Env))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, log, once, listJobs); err != nil {
		log.Error("Worker failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func run(cfg *config.Config, log *zap.Logger, once string, listJobs bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, err := telemetry.NewTracerProvider(ctx, telemetry.ConfigFromApp(cfg.Telemetry), log)
	if err != nil {
		return fmt.Errorf("init tracer provider: %w", err)
	}
	mp, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfigFromApp(cfg.Telemetry), log)
	if err != nil {
		return fmt.Errorf("init meter provider: %w", err)
	}
	lp, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfigFromApp(cfg.Telemetry), log)
	if err != nil {
		return fmt.Errorf("init logger provider: %w", err)
	}
	log = lp.Bridge(log)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tp.Shutdown(shutdownCtx)
		_ = mp.Shutdown(shutdownCtx)
		_ = lp.Shutdown(shutdownCtx)
	}()
	jobMetrics, err := telemetry.NewJobMetrics(mp.Meter("usability/scheduler"))
	if err != nil {
		return fmt.Errorf("create job metrics: %w", err)
	}

	db, err := bootstrap.OpenDatabase(cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	services := bootstrap.NewServices(db.DB, log)
	sched, closeLocker, err := bootstrap.NewScheduler(cfg, log, jobMetrics)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeLocker(); err != nil {
			log.Error("Failed to close job locker", zap.Error(err))
		}
	}()

	// one-off runs may target a job that is not scheduled
	onDemand := once != "" || listJobs
	if err := bootstrap.RegisterJobs(sched, cfg, services, onDemand); err != nil {
		return err
	}

	if listJobs {
		for _, state := range sched.Status() {
			if !state.Scheduled {
				fmt.Printf("  - %s (on demand)\n", state.Name)
				continue
			}
			fmt.Printf("  - %s (every %s)\n", state.Name, state.Interval)
		}
		return nil
	}

	if once != "" {
		runID, err := sched.RunNow(ctx, once)
		if err != nil {
			return fmt.Errorf("run %s: %w", once, err)
		}
		log.Info("Job run finished", zap.String("job", once), zap.String("run_id", runID))
		return nil
	}

	if !hasScheduledJobs(sched.Status()) {
		log.Warn("No jobs enabled, nothing to schedule")
		return nil
	}

	if err := sched.Start(ctx); err != nil {
		return err
	}
	log.Info("Worker started", zap.Int("jobs", len(sched.Status())))

	<-ctx.Done()
	log.Info("Shutting down worker...")

	stopCtx, cancel := context.WithTimeout(context.Background(), cfg.Scheduler.JobTimeout)
	defer cancel()
	return sched.Stop(stopCtx)
}

func hasScheduledJobs(states []scheduler.JobState) bool {
	for _, state := range states {
		if state.Scheduled {
			return true
		}
	}
	return false
}
