package persistence

import (
	"context"

	"github.com/erp/usability/internal/domain/inventory"
	"github.com/erp/usability/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLocationRepository implements LocationRepository using GORM
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GormLocationRepository
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// WithTx returns a new repository instance with the given transaction
func (r *GormLocationRepository) WithTx(tx *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: tx}
}

// FindByID finds a location by its ID
func (r *GormLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Location, error) {
	var model models.LocationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return model.ToDomain(), nil
}

// FindByUsage finds all active locations with the given usage
func (r *GormLocationRepository) FindByUsage(ctx context.Context, usage inventory.LocationUsage) ([]inventory.Location, error) {
	var rows []models.LocationModel
	if err := r.db.WithContext(ctx).
		Where("usage = ? AND active = ?", usage, true).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toLocations(rows), nil
}

// FindEmptyInternal finds active internal locations that have no child location and hold no quant
func (r *GormLocationRepository) FindEmptyInternal(ctx context.Context) ([]inventory.Location, error) {
	var rows []models.LocationModel
	if err := r.db.WithContext(ctx).
		Where("usage = ? AND active = ?", inventory.UsageInternal, true).
		Where("NOT EXISTS (SELECT 1 FROM stock_location child WHERE child.parent_id = stock_location.id)").
		Where("NOT EXISTS (SELECT 1 FROM stock_quant q WHERE q.location_id = stock_location.id)").
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toLocations(rows), nil
}

// Save creates or updates a location
func (r *GormLocationRepository) Save(ctx context.Context, location *inventory.Location) error {
	return r.db.WithContext(ctx).Save(models.LocationModelFromDomain(location)).Error
}

func toLocations(rows []models.LocationModel) []inventory.Location {
	locations := make([]inventory.Location, len(rows))
	for i := range rows {
		locations[i] = *rows[i].ToDomain()
	}
	return locations
}

// Ensure GormLocationRepository implements LocationRepository
var _ inventory.LocationRepository = (*GormLocationRepository)(nil)
