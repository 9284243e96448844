package persistence

import (
	"context"

	"github.com/erp/usability/internal/domain/inventory"
	"github.com/erp/usability/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormQuantRepository implements QuantRepository using GORM
type GormQuantRepository struct {
	db *gorm.DB
}

// NewGormQuantRepository creates a new GormQuantRepository
func NewGormQuantRepository(db *gorm.DB) *GormQuantRepository {
	return &GormQuantRepository{db: db}
}

// WithTx returns a new repository instance with the given transaction
func (r *GormQuantRepository) WithTx(tx *gorm.DB) *GormQuantRepository {
	return &GormQuantRepository{db: tx}
}

// FindByLocation finds the quants sitting at a location
func (r *GormQuantRepository) FindByLocation(ctx context.Context, locationID uuid.UUID) ([]inventory.Quant, error) {
	var rows []models.QuantModel
	if err := r.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toQuants(rows), nil
}

// FindPackagedInLocations finds quants at any of the locations that belong to a package
func (r *GormQuantRepository) FindPackagedInLocations(ctx context.Context, locationIDs []uuid.UUID) ([]inventory.Quant, error) {
	if len(locationIDs) == 0 {
		return []inventory.Quant{}, nil
	}
	var rows []models.QuantModel
	if err := r.db.WithContext(ctx).
		Where("location_id IN ? AND package_id IS NOT NULL", locationIDs).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toQuants(rows), nil
}

// FindByPackage finds all quants of a package, wherever they are
func (r *GormQuantRepository) FindByPackage(ctx context.Context, packageID uuid.UUID) ([]inventory.Quant, error) {
	var rows []models.QuantModel
	if err := r.db.WithContext(ctx).
		Where("package_id = ?", packageID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toQuants(rows), nil
}

// Save creates or updates a quant
func (r *GormQuantRepository) Save(ctx context.Context, quant *inventory.Quant) error {
	return r.db.WithContext(ctx).Save(models.QuantModelFromDomain(quant)).Error
}

func toQuants(rows []models.QuantModel) []inventory.Quant {
	quants := make([]inventory.Quant, len(rows))
	for i := range rows {
		quants[i] = *rows[i].ToDomain()
	}
	return quants
}

// GormPackageRepository implements PackageRepository using GORM
type GormPackageRepository struct {
	db *gorm.DB
}

// NewGormPackageRepository creates a new GormPackageRepository
func NewGormPackageRepository(db *gorm.DB) *GormPackageRepository {
	return &GormPackageRepository{db: db}
}

// FindByIDs finds packages by their IDs; unknown ids are skipped
func (r *GormPackageRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]inventory.Package, error) {
	if len(ids) == 0 {
		return []inventory.Package{}, nil
	}
	var rows []models.PackageModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	packages := make([]inventory.Package, len(rows))
	for i := range rows {
		packages[i] = *rows[i].ToDomain()
	}
	return packages, nil
}

// Save creates or updates a package
func (r *GormPackageRepository) Save(ctx context.Context, pkg *inventory.Package) error {
	return r.db.WithContext(ctx).Save(models.PackageModelFromDomain(pkg)).Error
}

// Ensure the GORM repositories implement their domain interfaces
var (
	_ inventory.QuantRepository   = (*GormQuantRepository)(nil)
	_ inventory.PackageRepository = (*GormPackageRepository)(nil)
)
