package models

import (
	"time"

	"github.com/erp/usability/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PickingModel is the persistence model for transfers.
type PickingModel struct {
	BaseModel
	Name           string                 `gorm:"type:varchar(100);not null"`
	Origin         string                 `gorm:"type:varchar(200)"`
	PartnerID      *uuid.UUID             `gorm:"type:uuid"`
	PickingTypeID  uuid.UUID              `gorm:"type:uuid;not null"`
	MoveType       inventory.MoveType     `gorm:"type:varchar(10);not null;default:'direct'"`
	State          inventory.PickingState `gorm:"type:varchar(30);not null;default:'draft';index"`
	GroupID        *uuid.UUID             `gorm:"type:uuid;index"`
	LocationID     uuid.UUID              `gorm:"type:uuid;not null"`
	LocationDestID uuid.UUID              `gorm:"type:uuid;not null"`
	ScheduledDate  time.Time
}

// TableName returns the table name for GORM
func (PickingModel) TableName() string {
	return "stock_picking"
}

// ToDomain converts the persistence model to a domain Picking.
func (m *PickingModel) ToDomain() *inventory.Picking {
	return &inventory.Picking{
		BaseEntity:     m.BaseModel.ToDomain(),
		Name:           m.Name,
		Origin:         m.Origin,
		PartnerID:      m.PartnerID,
		PickingTypeID:  m.PickingTypeID,
		MoveType:       m.MoveType,
		State:          m.State,
		GroupID:        m.GroupID,
		LocationID:     m.LocationID,
		LocationDestID: m.LocationDestID,
		ScheduledDate:  m.ScheduledDate,
	}
}

// FromDomain populates the persistence model from a domain Picking.
func (m *PickingModel) FromDomain(p *inventory.Picking) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Origin = p.Origin
	m.PartnerID = p.PartnerID
	m.PickingTypeID = p.PickingTypeID
	m.MoveType = p.MoveType
	m.State = p.State
	m.GroupID = p.GroupID
	m.LocationID = p.LocationID
	m.LocationDestID = p.LocationDestID
	m.ScheduledDate = p.ScheduledDate
}

// PickingModelFromDomain creates a new persistence model from a domain Picking.
func PickingModelFromDomain(p *inventory.Picking) *PickingModel {
	m := &PickingModel{}
	m.FromDomain(p)
	return m
}

// StockMoveModel is the persistence model for stock moves.
type StockMoveModel struct {
	BaseModel
	ProductID      uuid.UUID           `gorm:"type:uuid;not null;index"`
	LocationID     uuid.UUID           `gorm:"type:uuid;not null"`
	LocationDestID uuid.UUID           `gorm:"type:uuid;not null"`
	PickingID      *uuid.UUID          `gorm:"type:uuid;index"`
	PartnerID      *uuid.UUID          `gorm:"type:uuid"`
	ProductQty     decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	ReservedQty    decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	State          inventory.MoveState `gorm:"type:varchar(30);not null;default:'draft'"`
	DateExpected   *time.Time
}

// TableName returns the table name for GORM
func (StockMoveModel) TableName() string {
	return "stock_move"
}

// ToDomain converts the persistence model to a domain StockMove.
func (m *StockMoveModel) ToDomain() *inventory.StockMove {
	return &inventory.StockMove{
		BaseEntity:     m.BaseModel.ToDomain(),
		ProductID:      m.ProductID,
		LocationID:     m.LocationID,
		LocationDestID: m.LocationDestID,
		PickingID:      m.PickingID,
		PartnerID:      m.PartnerID,
		ProductQty:     m.ProductQty,
		ReservedQty:    m.ReservedQty,
		State:          m.State,
		DateExpected:   m.DateExpected,
	}
}

// FromDomain populates the persistence model from a domain StockMove.
func (m *StockMoveModel) FromDomain(sm *inventory.StockMove) {
	m.FromDomainBaseEntity(sm.BaseEntity)
	m.ProductID = sm.ProductID
	m.LocationID = sm.LocationID
	m.LocationDestID = sm.LocationDestID
	m.PickingID = sm.PickingID
	m.PartnerID = sm.PartnerID
	m.ProductQty = sm.ProductQty
	m.ReservedQty = sm.ReservedQty
	m.State = sm.State
	m.DateExpected = sm.DateExpected
}

// StockMoveModelFromDomain creates a new persistence model from a domain StockMove.
func StockMoveModelFromDomain(sm *inventory.StockMove) *StockMoveModel {
	m := &StockMoveModel{}
	m.FromDomain(sm)
	return m
}

// PackOperationModel links a move to the operations that pack its products.
// Only deletion is needed here, so there is no domain counterpart.
type PackOperationModel struct {
	BaseModel
	MoveID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	PackageID *uuid.UUID      `gorm:"type:uuid"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (PackOperationModel) TableName() string {
	return "stock_pack_operation"
}

// ProcurementGroupModel is the persistence model for procurement groups.
type ProcurementGroupModel struct {
	BaseModel
	Name     string             `gorm:"type:varchar(200);not null"`
	MoveType inventory.MoveType `gorm:"type:varchar(10);not null;default:'direct'"`
}

// TableName returns the table name for GORM
func (ProcurementGroupModel) TableName() string {
	return "procurement_group"
}

// ToDomain converts the persistence model to a domain ProcurementGroup.
func (m *ProcurementGroupModel) ToDomain() *inventory.ProcurementGroup {
	return &inventory.ProcurementGroup{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		MoveType:   m.MoveType,
	}
}

// IncotermModel is the persistence model for incoterms.
type IncotermModel struct {
	BaseModel
	Code string `gorm:"type:varchar(3);not null;uniqueIndex"`
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (IncotermModel) TableName() string {
	return "stock_incoterms"
}

// ToDomain converts the persistence model to a domain Incoterm.
func (m *IncotermModel) ToDomain() *inventory.Incoterm {
	return &inventory.Incoterm{
		BaseEntity: m.BaseModel.ToDomain(),
		Code:       m.Code,
		Name:       m.Name,
	}
}
