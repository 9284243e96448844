package models

import (
	"time"

	"github.com/erp/usability/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LocationModel is the persistence model for stock locations.
type LocationModel struct {
	BaseModel
	Name        string                  `gorm:"type:varchar(200);not null"`
	Usage       inventory.LocationUsage `gorm:"type:varchar(20);not null;index"`
	ParentID    *uuid.UUID              `gorm:"type:uuid;index"`
	WarehouseID *uuid.UUID              `gorm:"type:uuid;index"`
	Active      bool                    `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (LocationModel) TableName() string {
	return "stock_location"
}

// ToDomain converts the persistence model to a domain Location.
func (m *LocationModel) ToDomain() *inventory.Location {
	return &inventory.Location{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Usage:       m.Usage,
		ParentID:    m.ParentID,
		WarehouseID: m.WarehouseID,
		Active:      m.Active,
	}
}

// FromDomain populates the persistence model from a domain Location.
func (m *LocationModel) FromDomain(l *inventory.Location) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.Name = l.Name
	m.Usage = l.Usage
	m.ParentID = l.ParentID
	m.WarehouseID = l.WarehouseID
	m.Active = l.Active
}

// LocationModelFromDomain creates a new persistence model from a domain Location.
func LocationModelFromDomain(l *inventory.Location) *LocationModel {
	m := &LocationModel{}
	m.FromDomain(l)
	return m
}

// QuantModel is the persistence model for quants.
type QuantModel struct {
	BaseModel
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	LocationID uuid.UUID       `gorm:"type:uuid;not null;index"`
	PackageID  *uuid.UUID      `gorm:"type:uuid;index"`
	LotID      *uuid.UUID      `gorm:"type:uuid"`
	Quantity   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (QuantModel) TableName() string {
	return "stock_quant"
}

// ToDomain converts the persistence model to a domain Quant.
func (m *QuantModel) ToDomain() *inventory.Quant {
	return &inventory.Quant{
		BaseEntity: m.BaseModel.ToDomain(),
		ProductID:  m.ProductID,
		LocationID: m.LocationID,
		PackageID:  m.PackageID,
		LotID:      m.LotID,
		Quantity:   m.Quantity,
	}
}

// FromDomain populates the persistence model from a domain Quant.
func (m *QuantModel) FromDomain(q *inventory.Quant) {
	m.FromDomainBaseEntity(q.BaseEntity)
	m.ProductID = q.ProductID
	m.LocationID = q.LocationID
	m.PackageID = q.PackageID
	m.LotID = q.LotID
	m.Quantity = q.Quantity
}

// QuantModelFromDomain creates a new persistence model from a domain Quant.
func QuantModelFromDomain(q *inventory.Quant) *QuantModel {
	m := &QuantModel{}
	m.FromDomain(q)
	return m
}

// PackageModel is the persistence model for quant packages.
type PackageModel struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (PackageModel) TableName() string {
	return "stock_quant_package"
}

// ToDomain converts the persistence model to a domain Package.
func (m *PackageModel) ToDomain() *inventory.Package {
	return &inventory.Package{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
	}
}

// PackageModelFromDomain creates a new persistence model from a domain Package.
func PackageModelFromDomain(p *inventory.Package) *PackageModel {
	m := &PackageModel{Name: p.Name}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// InventoryModel is the persistence model for inventory adjustments.
type InventoryModel struct {
	BaseModel
	Name       string                   `gorm:"type:varchar(200);not null"`
	Date       time.Time                `gorm:"not null"`
	State      inventory.InventoryState `gorm:"type:varchar(20);not null;default:'draft'"`
	LocationID uuid.UUID                `gorm:"type:uuid;not null"`
}

// TableName returns the table name for GORM
func (InventoryModel) TableName() string {
	return "stock_inventory"
}

// ToDomain converts the persistence model to a domain Inventory.
func (m *InventoryModel) ToDomain() *inventory.Inventory {
	return &inventory.Inventory{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Date:       m.Date,
		State:      m.State,
		LocationID: m.LocationID,
	}
}

// InventoryLineModel is the persistence model for inventory adjustment lines.
type InventoryLineModel struct {
	BaseModel
	InventoryID         uuid.UUID                `gorm:"type:uuid;not null;index"`
	PartnerID           *uuid.UUID               `gorm:"type:uuid"`
	ProductID           uuid.UUID                `gorm:"type:uuid;not null"`
	ProductUomID        uuid.UUID                `gorm:"type:uuid"`
	ProductQty          decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	LocationID          uuid.UUID                `gorm:"type:uuid;not null"`
	PackageID           *uuid.UUID               `gorm:"type:uuid"`
	ProdLotID           *uuid.UUID               `gorm:"type:uuid"`
	State               inventory.InventoryState `gorm:"type:varchar(20);not null;default:'draft'"`
	InventoryLocationID uuid.UUID                `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (InventoryLineModel) TableName() string {
	return "stock_inventory_line"
}

// ToDomain converts the persistence model to a domain InventoryLine.
func (m *InventoryLineModel) ToDomain() *inventory.InventoryLine {
	return &inventory.InventoryLine{
		BaseEntity:          m.BaseModel.ToDomain(),
		InventoryID:         m.InventoryID,
		PartnerID:           m.PartnerID,
		ProductID:           m.ProductID,
		ProductUomID:        m.ProductUomID,
		ProductQty:          m.ProductQty,
		LocationID:          m.LocationID,
		PackageID:           m.PackageID,
		ProdLotID:           m.ProdLotID,
		State:               m.State,
		InventoryLocationID: m.InventoryLocationID,
	}
}

// FromDomain populates the persistence model from a domain InventoryLine.
func (m *InventoryLineModel) FromDomain(l *inventory.InventoryLine) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.InventoryID = l.InventoryID
	m.PartnerID = l.PartnerID
	m.ProductID = l.ProductID
	m.ProductUomID = l.ProductUomID
	m.ProductQty = l.ProductQty
	m.LocationID = l.LocationID
	m.PackageID = l.PackageID
	m.ProdLotID = l.ProdLotID
	m.State = l.State
	m.InventoryLocationID = l.InventoryLocationID
}

// InventoryLineModelFromDomain creates a new persistence model from a domain InventoryLine.
func InventoryLineModelFromDomain(l *inventory.InventoryLine) *InventoryLineModel {
	m := &InventoryLineModel{}
	m.FromDomain(l)
	return m
}

// OrderpointModel is the persistence model for min/max reordering rules.
type OrderpointModel struct {
	BaseModel
	CompanyID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_orderpoint_key,priority:1"`
	WarehouseID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_orderpoint_key,priority:2"`
	LocationID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_orderpoint_key,priority:3"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_orderpoint_key,priority:4"`
	ProductMinQty decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ProductMaxQty decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (OrderpointModel) TableName() string {
	return "stock_warehouse_orderpoint"
}

// ToDomain converts the persistence model to a domain Orderpoint.
func (m *OrderpointModel) ToDomain() *inventory.Orderpoint {
	return &inventory.Orderpoint{
		BaseEntity:    m.BaseModel.ToDomain(),
		CompanyID:     m.CompanyID,
		WarehouseID:   m.WarehouseID,
		LocationID:    m.LocationID,
		ProductID:     m.ProductID,
		ProductMinQty: m.ProductMinQty,
		ProductMaxQty: m.ProductMaxQty,
	}
}

// OrderpointModelFromDomain creates a new persistence model from a domain Orderpoint.
func OrderpointModelFromDomain(o *inventory.Orderpoint) *OrderpointModel {
	m := &OrderpointModel{
		CompanyID:     o.CompanyID,
		WarehouseID:   o.WarehouseID,
		LocationID:    o.LocationID,
		ProductID:     o.ProductID,
		ProductMinQty: o.ProductMinQty,
		ProductMaxQty: o.ProductMaxQty,
	}
	m.FromDomainBaseEntity(o.BaseEntity)
	return m
}
