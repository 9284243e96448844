package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/erp/usability/internal/domain/inventory"
	"github.com/erp/usability/internal/domain/shared"
	"github.com/erp/usability/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AutoUnpackJobName is the name the auto-unpack job is scheduled under
const AutoUnpackJobName = "auto_unpack_internal_locations"

// AutoUnpackService dissolves every package that has stock sitting in an internal location
type AutoUnpackService struct {
	txScope TransactionScope
	logger  *zap.Logger
}

// NewAutoUnpackService creates a new AutoUnpackService
func NewAutoUnpackService(txScope TransactionScope, logger *zap.Logger) *AutoUnpackService {
	return &AutoUnpackService{
		txScope: txScope,
		logger:  logger,
	}
}

// UnpackStats contains statistics about one auto-unpack run
type UnpackStats struct {
	Locations   int       `json:"locations"`
	Packages    int       `json:"packages"`
	Quants      int       `json:"quants"`
	ProcessedAt time.Time `json:"processed_at"`
}

// Name returns the scheduler name of the job
func (s *AutoUnpackService) Name() string {
	return AutoUnpackJobName
}

// Execute runs the job for the scheduler
func (s *AutoUnpackService) Execute(ctx context.Context) error {
	_, err := s.Run(ctx)
	return err
}

// Run finds the packages holding quants in internal locations and unpacks them
// in a single transaction.
func (s *AutoUnpackService) Run(ctx context.Context) (*UnpackStats, error) {
	log := logger.WithLogger(ctx, s.logger)
	log.Info("START cron auto unpack on internal locations")

	stats := &UnpackStats{ProcessedAt: time.Now()}
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		locations, err := repos.LocationRepo().FindByUsage(ctx, inventory.UsageInternal)
		if err != nil {
			return fmt.Errorf("failed to find internal locations: %w", err)
		}
		stats.Locations = len(locations)

		quants, err := repos.QuantRepo().FindPackagedInLocations(ctx, inventory.LocationIDs(locations))
		if err != nil {
			return fmt.Errorf("failed to find packaged quants: %w", err)
		}

		packageIDs := inventory.DistinctPackageIDs(quants)
		stats.Packages = len(packageIDs)
		log.Info(fmt.Sprintf("Unpacking %d packages on internal locations", len(packageIDs)),
			zap.Int("count", len(packageIDs)),
		)

		packages, err := s.loadPackages(ctx, repos, packageIDs)
		if err != nil {
			return err
		}
		for i := range packages {
			n, err := s.unpack(ctx, repos, &packages[i])
			if err != nil {
				return err
			}
			stats.Quants += n
		}
		return nil
	})
	if err != nil {
		log.Error("Auto unpack failed", zap.Error(err))
		return nil, err
	}

	log.Info("END cron auto unpack on internal locations",
		zap.Int("packages", stats.Packages),
		zap.Int("quants", stats.Quants),
	)
	return stats, nil
}

// loadPackages returns the packages in the order of ids, which is the order
// in which the quants first referenced them. A quant may reference a package
// row that no longer exists; such ids are still unpacked.
func (s *AutoUnpackService) loadPackages(ctx context.Context, repos TransactionalRepositories, ids []uuid.UUID) ([]inventory.Package, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := repos.PackageRepo().FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	byID := make(map[uuid.UUID]inventory.Package, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	packages := make([]inventory.Package, len(ids))
	for i, id := range ids {
		p, ok := byID[id]
		if !ok {
			s.logger.Warn("Quant references a missing package", zap.String("package_id", id.String()))
			p = inventory.Package{BaseEntity: shared.BaseEntity{ID: id}}
		}
		packages[i] = p
	}
	return packages, nil
}

func (s *AutoUnpackService) unpack(ctx context.Context, repos TransactionalRepositories, pkg *inventory.Package) (int, error) {
	quants, err := repos.QuantRepo().FindByPackage(ctx, pkg.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to load quants of package %s: %w", pkg.ID, err)
	}

	ptrs := make([]*inventory.Quant, len(quants))
	for i := range quants {
		ptrs[i] = &quants[i]
	}
	n := pkg.Unpack(ptrs)

	for _, q := range ptrs {
		if q.InPackage() {
			continue
		}
		if err := repos.QuantRepo().Save(ctx, q); err != nil {
			return 0, fmt.Errorf("failed to unpack package %s: %w", pkg.ID, err)
		}
	}
	return n, nil
}
