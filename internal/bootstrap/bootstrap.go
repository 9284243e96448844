// Package bootstrap wires configuration, persistence, services and the job
// scheduler shared by the server and worker binaries.
package bootstrap

import (
	"fmt"
	"io"

	inventoryapp "github.com/erp/usability/internal/application/inventory"
	"github.com/erp/usability/internal/infrastructure/cache"
	"github.com/erp/usability/internal/infrastructure/config"
	"github.com/erp/usability/internal/infrastructure/logger"
	"github.com/erp/usability/internal/infrastructure/persistence"
	"github.com/erp/usability/internal/infrastructure/scheduler"
	"github.com/erp/usability/internal/infrastructure/telemetry"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OpenDatabase connects to PostgreSQL with a zap-backed GORM logger and
// installs query tracing when it is enabled.
func OpenDatabase(cfg *config.Config, log *zap.Logger) (*persistence.Database, error) {
	gormLogger := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh),
		logger.WithFullSQL(cfg.Telemetry.DBLogFullSQL),
	)
	db, err := persistence.NewDatabase(&cfg.Database, gormLogger)
	if err != nil {
		return nil, err
	}

	plugin := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfigFrom(cfg.Telemetry), log)
	if err := plugin.Register(db.DB); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("register db tracing: %w", err)
	}
	return db, nil
}

// Services holds the application services behind the ops API and the jobs
type Services struct {
	Pickings    *inventoryapp.PickingService
	Moves       *inventoryapp.StockMoveService
	Locations   *inventoryapp.LocationService
	References  *inventoryapp.ReferenceService
	Orderpoints *inventoryapp.OrderpointService
	Inventories *inventoryapp.StockInventoryService
	AutoUnpack  *inventoryapp.AutoUnpackService
}

// NewServices builds every application service over db
func NewServices(db *gorm.DB, log *zap.Logger) *Services {
	txScope := persistence.NewGormTransactionScope(db)
	locationRepo := persistence.NewGormLocationRepository(db)
	pickingRepo := persistence.NewGormPickingRepository(db)

	return &Services{
		Pickings:  inventoryapp.NewPickingService(pickingRepo, txScope, log),
		Moves:     inventoryapp.NewStockMoveService(persistence.NewGormStockMoveRepository(db), txScope, log),
		Locations: inventoryapp.NewLocationService(locationRepo, persistence.NewGormQuantRepository(db)),
		References: inventoryapp.NewReferenceService(
			persistence.NewGormIncotermRepository(db),
			persistence.NewGormProcurementGroupRepository(db),
			pickingRepo,
		),
		Orderpoints: inventoryapp.NewOrderpointService(locationRepo, persistence.NewGormOrderpointRepository(db), log),
		Inventories: inventoryapp.NewStockInventoryService(persistence.NewGormInventoryRepository(db)),
		AutoUnpack:  inventoryapp.NewAutoUnpackService(txScope, log),
	}
}

// NewScheduler creates the job scheduler with a lock backend chosen from the
// Redis settings. Metrics may be nil. The returned func releases the lock
// backend and must be called after the scheduler has stopped.
func NewScheduler(cfg *config.Config, log *zap.Logger, metrics *telemetry.JobMetrics) (*scheduler.Scheduler, func() error, error) {
	locker, err := cache.NewLockerFactory(cfg.Redis,
		cache.WithLogger(log),
		cache.WithInMemoryFallback(cfg.App.Env != "production"),
	).CreateLocker()
	if err != nil {
		return nil, nil, err
	}
	closeLocker := func() error { return nil }
	if c, ok := locker.(io.Closer); ok {
		closeLocker = c.Close
	}

	s := scheduler.NewScheduler(scheduler.SchedulerConfig{
		JobTimeout: cfg.Scheduler.JobTimeout,
		LockTTL:    cfg.Scheduler.LockTTL,
	}, locker, log)
	s.UseMetrics(metrics)
	return s, closeLocker, nil
}

// RegisterJobs schedules the opt-in jobs that are enabled. With all set,
// disabled jobs are registered on demand: they never tick and only run
// through RunNow.
func RegisterJobs(s *scheduler.Scheduler, cfg *config.Config, services *Services, all bool) error {
	var err error
	switch {
	case cfg.Scheduler.AutoUnpack.Enabled:
		err = s.Register(services.AutoUnpack, cfg.Scheduler.AutoUnpack.Interval)
	case all:
		err = s.RegisterOnDemand(services.AutoUnpack)
	}
	if err != nil {
		return fmt.Errorf("register %s: %w", services.AutoUnpack.Name(), err)
	}
	return nil
}
