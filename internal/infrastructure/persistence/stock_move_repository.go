package persistence

import (
	"context"
	"time"

	"github.com/erp/usability/internal/domain/inventory"
	"github.com/erp/usability/internal/domain/shared"
	"github.com/erp/usability/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStockMoveRepository implements StockMoveRepository using GORM
type GormStockMoveRepository struct {
	db *gorm.DB
}

// NewGormStockMoveRepository creates a new GormStockMoveRepository
func NewGormStockMoveRepository(db *gorm.DB) *GormStockMoveRepository {
	return &GormStockMoveRepository{db: db}
}

// FindByID finds a stock move by its ID
func (r *GormStockMoveRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockMove, error) {
	var model models.StockMoveModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return model.ToDomain(), nil
}

// FindByPicking lists the moves of a picking, oldest first
func (r *GormStockMoveRepository) FindByPicking(ctx context.Context, pickingID uuid.UUID) ([]*inventory.StockMove, error) {
	var rows []models.StockMoveModel
	if err := r.db.WithContext(ctx).
		Where("picking_id = ?", pickingID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	moves := make([]*inventory.StockMove, len(rows))
	for i := range rows {
		moves[i] = rows[i].ToDomain()
	}
	return moves, nil
}

type moveNameRow struct {
	LocationName     string
	LocationDestName string
	ProductCode      string
	PickingOrigin    string
	PartnerName      string
	DateExpected     *time.Time
}

// LoadNameRefs resolves the location, product, picking and partner values of a move's display name
func (r *GormStockMoveRepository) LoadNameRefs(ctx context.Context, id uuid.UUID) (*inventory.MoveNameRefs, error) {
	var row moveNameRow
	result := r.db.WithContext(ctx).
		Table("stock_move AS m").
		Select(`src.name AS location_name,
			dst.name AS location_dest_name,
			COALESCE(pp.default_code, '') AS product_code,
			COALESCE(sp.origin, '') AS picking_origin,
			COALESCE(rp.name, '') AS partner_name,
			m.date_expected AS date_expected`).
		Joins("JOIN stock_location src ON src.id = m.location_id").
		Joins("JOIN stock_location dst ON dst.id = m.location_dest_id").
		Joins("LEFT JOIN product_product pp ON pp.id = m.product_id").
		Joins("LEFT JOIN stock_picking sp ON sp.id = m.picking_id").
		Joins("LEFT JOIN res_partner rp ON rp.id = m.partner_id").
		Where("m.id = ?", id).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}
	return &inventory.MoveNameRefs{
		LocationName:     row.LocationName,
		LocationDestName: row.LocationDestName,
		ProductCode:      row.ProductCode,
		PickingOrigin:    row.PickingOrigin,
		PartnerName:      row.PartnerName,
		DateExpected:     row.DateExpected,
	}, nil
}

// DeletePackOperations removes the pack operations linked to the move
func (r *GormStockMoveRepository) DeletePackOperations(ctx context.Context, moveID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("move_id = ?", moveID).Delete(&models.PackOperationModel{})
	return result.RowsAffected, result.Error
}

// Save creates or updates a stock move
func (r *GormStockMoveRepository) Save(ctx context.Context, move *inventory.StockMove) error {
	return r.db.WithContext(ctx).Save(models.StockMoveModelFromDomain(move)).Error
}

// GormMessageRepository implements MessageRepository using GORM
type GormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository creates a new GormMessageRepository
func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

// Save stores a posted message
func (r *GormMessageRepository) Save(ctx context.Context, message *inventory.Message) error {
	return r.db.WithContext(ctx).Create(models.MessageModelFromDomain(message)).Error
}

// FindByResource lists the messages of a record, oldest first
func (r *GormMessageRepository) FindByResource(ctx context.Context, resModel string, resID uuid.UUID) ([]inventory.Message, error) {
	var rows []models.MessageModel
	if err := r.db.WithContext(ctx).
		Where("res_model = ? AND res_id = ?", resModel, resID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	messages := make([]inventory.Message, len(rows))
	for i := range rows {
		messages[i] = *rows[i].ToDomain()
	}
	return messages, nil
}

var (
	_ inventory.StockMoveRepository = (*GormStockMoveRepository)(nil)
	_ inventory.MessageRepository   = (*GormMessageRepository)(nil)
)
