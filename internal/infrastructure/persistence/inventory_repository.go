package persistence

import (
	"context"

	"github.com/erp/usability/internal/domain/inventory"
	"github.com/erp/usability/internal/domain/shared"
	"github.com/erp/usability/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInventoryRepository implements InventoryRepository using GORM
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GormInventoryRepository
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// FindAll lists inventory adjustments newest first
func (r *GormInventoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Inventory, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.InventoryModel{})
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.InventoryModel
	if err := query.
		Order(orderClause(filter, InventorySortFields, inventory.InventoryOrder)).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	inventories := make([]inventory.Inventory, len(rows))
	for i := range rows {
		inventories[i] = *rows[i].ToDomain()
	}
	return inventories, total, nil
}

// FindByID finds an inventory adjustment by its ID
func (r *GormInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Inventory, error) {
	var model models.InventoryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return model.ToDomain(), nil
}

// FindLineByID finds an inventory line by its ID
func (r *GormInventoryRepository) FindLineByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryLine, error) {
	var model models.InventoryLineModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return model.ToDomain(), nil
}

// SaveLine creates or updates an inventory line
func (r *GormInventoryRepository) SaveLine(ctx context.Context, line *inventory.InventoryLine) error {
	return r.db.WithContext(ctx).Save(models.InventoryLineModelFromDomain(line)).Error
}

// GormOrderpointRepository implements OrderpointRepository using GORM
type GormOrderpointRepository struct {
	db *gorm.DB
}

// NewGormOrderpointRepository creates a new GormOrderpointRepository
func NewGormOrderpointRepository(db *gorm.DB) *GormOrderpointRepository {
	return &GormOrderpointRepository{db: db}
}

// ExistsByKey checks whether a rule already covers the company, warehouse, location and product
func (r *GormOrderpointRepository) ExistsByKey(ctx context.Context, companyID, warehouseID, locationID, productID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderpointModel{}).
		Where("company_id = ? AND warehouse_id = ? AND location_id = ? AND product_id = ?",
			companyID, warehouseID, locationID, productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a reordering rule. A rule that collides with
// another on the company, warehouse, location and product key fails with
// inventory.ErrDuplicateOrderpoint.
func (r *GormOrderpointRepository) Save(ctx context.Context, orderpoint *inventory.Orderpoint) error {
	err := r.db.WithContext(ctx).Save(models.OrderpointModelFromDomain(orderpoint)).Error
	return translateDuplicate(r.db, err, inventory.ErrDuplicateOrderpoint)
}

var (
	_ inventory.InventoryRepository  = (*GormInventoryRepository)(nil)
	_ inventory.OrderpointRepository = (*GormOrderpointRepository)(nil)
)
