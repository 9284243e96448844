package persistence

import (
	"context"

	"github.com/erp/usability/internal/domain/inventory"
	"github.com/erp/usability/internal/domain/shared"
	"github.com/erp/usability/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPickingRepository implements PickingRepository using GORM
type GormPickingRepository struct {
	db *gorm.DB
}

// NewGormPickingRepository creates a new GormPickingRepository
func NewGormPickingRepository(db *gorm.DB) *GormPickingRepository {
	return &GormPickingRepository{db: db}
}

// FindByID finds a picking by its ID
func (r *GormPickingRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Picking, error) {
	var model models.PickingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return model.ToDomain(), nil
}

// FindAll lists pickings newest first
func (r *GormPickingRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Picking, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.PickingModel{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR origin LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.PickingModel
	if err := query.
		Order(orderClause(filter, PickingSortFields, inventory.PickingOrder)).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return toPickings(rows), total, nil
}

// FindByGroup lists the pickings of a procurement group, newest first
func (r *GormPickingRepository) FindByGroup(ctx context.Context, groupID uuid.UUID) ([]inventory.Picking, error) {
	var rows []models.PickingModel
	if err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order(inventory.PickingOrder).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toPickings(rows), nil
}

// Save creates or updates a picking
func (r *GormPickingRepository) Save(ctx context.Context, picking *inventory.Picking) error {
	return r.db.WithContext(ctx).Save(models.PickingModelFromDomain(picking)).Error
}

func toPickings(rows []models.PickingModel) []inventory.Picking {
	pickings := make([]inventory.Picking, len(rows))
	for i := range rows {
		pickings[i] = *rows[i].ToDomain()
	}
	return pickings
}

// GormProcurementGroupRepository implements ProcurementGroupRepository using GORM
type GormProcurementGroupRepository struct {
	db *gorm.DB
}

// NewGormProcurementGroupRepository creates a new GormProcurementGroupRepository
func NewGormProcurementGroupRepository(db *gorm.DB) *GormProcurementGroupRepository {
	return &GormProcurementGroupRepository{db: db}
}

// FindByID finds a procurement group by its ID
func (r *GormProcurementGroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.ProcurementGroup, error) {
	var model models.ProcurementGroupModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return model.ToDomain(), nil
}

// GormIncotermRepository implements IncotermRepository using GORM
type GormIncotermRepository struct {
	db *gorm.DB
}

// NewGormIncotermRepository creates a new GormIncotermRepository
func NewGormIncotermRepository(db *gorm.DB) *GormIncotermRepository {
	return &GormIncotermRepository{db: db}
}

// FindAll lists incoterms by code
func (r *GormIncotermRepository) FindAll(ctx context.Context) ([]inventory.Incoterm, error) {
	var rows []models.IncotermModel
	if err := r.db.WithContext(ctx).Order("code ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	incoterms := make([]inventory.Incoterm, len(rows))
	for i := range rows {
		incoterms[i] = *rows[i].ToDomain()
	}
	return incoterms, nil
}

var (
	_ inventory.PickingRepository          = (*GormPickingRepository)(nil)
	_ inventory.ProcurementGroupRepository = (*GormProcurementGroupRepository)(nil)
	_ inventory.IncotermRepository         = (*GormIncotermRepository)(nil)
)
