package inventory

import (
	"time"

	"github.com/erp/usability/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PickingResponse represents a transfer in API responses
type PickingResponse struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Origin         string     `json:"origin,omitempty"`
	PartnerID      *uuid.UUID `json:"partner_id,omitempty"`
	PickingTypeID  uuid.UUID  `json:"picking_type_id"`
	MoveType       string     `json:"move_type"`
	State          string     `json:"state"`
	GroupID        *uuid.UUID `json:"group_id,omitempty"`
	LocationID     uuid.UUID  `json:"location_id"`
	LocationDestID uuid.UUID  `json:"location_dest_id"`
	ScheduledDate  time.Time  `json:"scheduled_date"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ToPickingResponse converts a domain picking to its response
func ToPickingResponse(p *inventory.Picking) PickingResponse {
	return PickingResponse{
		ID:             p.ID,
		Name:           p.Name,
		Origin:         p.Origin,
		PartnerID:      p.PartnerID,
		PickingTypeID:  p.PickingTypeID,
		MoveType:       string(p.MoveType),
		State:          string(p.State),
		GroupID:        p.GroupID,
		LocationID:     p.LocationID,
		LocationDestID: p.LocationDestID,
		ScheduledDate:  p.ScheduledDate,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ToPickingResponses converts a list of pickings
func ToPickingResponses(pickings []inventory.Picking) []PickingResponse {
	resp := make([]PickingResponse, len(pickings))
	for i := range pickings {
		resp[i] = ToPickingResponse(&pickings[i])
	}
	return resp
}

// UpdatePickingRequest changes the tracked fields of a picking.
// Send the nil UUID as partner_id to clear the partner.
type UpdatePickingRequest struct {
	PartnerID     *uuid.UUID `json:"partner_id"`
	PickingTypeID *uuid.UUID `json:"picking_type_id"`
	MoveType      *string    `json:"move_type" binding:"omitempty,oneof=direct one"`
}

// ToDomain converts the request to a domain update
func (r UpdatePickingRequest) ToDomain() inventory.PickingUpdate {
	u := inventory.PickingUpdate{
		PartnerID:     r.PartnerID,
		PickingTypeID: r.PickingTypeID,
	}
	if r.MoveType != nil {
		mt := inventory.MoveType(*r.MoveType)
		u.MoveType = &mt
	}
	return u
}

// StockMoveResponse represents a stock move in API responses
type StockMoveResponse struct {
	ID             uuid.UUID       `json:"id"`
	ProductID      uuid.UUID       `json:"product_id"`
	LocationID     uuid.UUID       `json:"location_id"`
	LocationDestID uuid.UUID       `json:"location_dest_id"`
	PickingID      *uuid.UUID      `json:"picking_id,omitempty"`
	ProductQty     decimal.Decimal `json:"product_qty"`
	ReservedQty    decimal.Decimal `json:"reserved_qty"`
	State          string          `json:"state"`
}

// ToStockMoveResponse converts a domain move to its response
func ToStockMoveResponse(m *inventory.StockMove) StockMoveResponse {
	return StockMoveResponse{
		ID:             m.ID,
		ProductID:      m.ProductID,
		LocationID:     m.LocationID,
		LocationDestID: m.LocationDestID,
		PickingID:      m.PickingID,
		ProductQty:     m.ProductQty,
		ReservedQty:    m.ReservedQty,
		State:          string(m.State),
	}
}

// LocationResponse represents a stock location in API responses
type LocationResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Usage       string     `json:"usage"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
	WarehouseID *uuid.UUID `json:"warehouse_id,omitempty"`
}

// ToLocationResponse converts a domain location to its response
func ToLocationResponse(l *inventory.Location) LocationResponse {
	return LocationResponse{
		ID:          l.ID,
		Name:        l.Name,
		Usage:       string(l.Usage),
		ParentID:    l.ParentID,
		WarehouseID: l.WarehouseID,
	}
}

// QuantResponse represents a quant in API responses
type QuantResponse struct {
	ID         uuid.UUID       `json:"id"`
	ProductID  uuid.UUID       `json:"product_id"`
	LocationID uuid.UUID       `json:"location_id"`
	PackageID  *uuid.UUID      `json:"package_id,omitempty"`
	LotID      *uuid.UUID      `json:"lot_id,omitempty"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// ToQuantResponse converts a domain quant to its response
func ToQuantResponse(q *inventory.Quant) QuantResponse {
	return QuantResponse{
		ID:         q.ID,
		ProductID:  q.ProductID,
		LocationID: q.LocationID,
		PackageID:  q.PackageID,
		LotID:      q.LotID,
		Quantity:   q.Quantity,
	}
}

// IncotermResponse represents an incoterm in API responses
type IncotermResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
}

// OrderpointDefaultsResponse holds the prefilled fields of a new reordering rule
type OrderpointDefaultsResponse struct {
	WarehouseID *uuid.UUID `json:"warehouse_id"`
	LocationID  *uuid.UUID `json:"location_id"`
}

// CreateOrderpointRequest creates a reordering rule
type CreateOrderpointRequest struct {
	CompanyID     uuid.UUID       `json:"company_id" binding:"required"`
	WarehouseID   uuid.UUID       `json:"warehouse_id" binding:"required"`
	LocationID    uuid.UUID       `json:"location_id" binding:"required"`
	ProductID     uuid.UUID       `json:"product_id" binding:"required"`
	ProductMinQty decimal.Decimal `json:"product_min_qty"`
	ProductMaxQty decimal.Decimal `json:"product_max_qty"`
}

// OrderpointResponse represents a reordering rule in API responses
type OrderpointResponse struct {
	ID            uuid.UUID       `json:"id"`
	CompanyID     uuid.UUID       `json:"company_id"`
	WarehouseID   uuid.UUID       `json:"warehouse_id"`
	LocationID    uuid.UUID       `json:"location_id"`
	ProductID     uuid.UUID       `json:"product_id"`
	ProductMinQty decimal.Decimal `json:"product_min_qty"`
	ProductMaxQty decimal.Decimal `json:"product_max_qty"`
}

// ToOrderpointResponse converts a domain orderpoint to its response
func ToOrderpointResponse(o *inventory.Orderpoint) OrderpointResponse {
	return OrderpointResponse{
		ID:            o.ID,
		CompanyID:     o.CompanyID,
		WarehouseID:   o.WarehouseID,
		LocationID:    o.LocationID,
		ProductID:     o.ProductID,
		ProductMinQty: o.ProductMinQty,
		ProductMaxQty: o.ProductMaxQty,
	}
}

// InventoryResponse represents an inventory adjustment in API responses
type InventoryResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Date       time.Time `json:"date"`
	State      string    `json:"state"`
	LocationID uuid.UUID `json:"location_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToInventoryResponse converts a domain adjustment to its response
func ToInventoryResponse(inv *inventory.Inventory) InventoryResponse {
	return InventoryResponse{
		ID:         inv.ID,
		Name:       inv.Name,
		Date:       inv.Date,
		State:      string(inv.State),
		LocationID: inv.LocationID,
		CreatedAt:  inv.CreatedAt,
	}
}

// InventoryLineResponse represents an adjustment line in API responses
type InventoryLineResponse struct {
	ID                  uuid.UUID       `json:"id"`
	InventoryID         uuid.UUID       `json:"inventory_id"`
	InventoryDate       time.Time       `json:"inventory_date"`
	PartnerID           *uuid.UUID      `json:"partner_id,omitempty"`
	ProductID           uuid.UUID       `json:"product_id"`
	ProductUomID        uuid.UUID       `json:"product_uom_id"`
	ProductQty          decimal.Decimal `json:"product_qty"`
	LocationID          uuid.UUID       `json:"location_id"`
	PackageID           *uuid.UUID      `json:"package_id,omitempty"`
	ProdLotID           *uuid.UUID      `json:"prod_lot_id,omitempty"`
	State               string          `json:"state"`
	InventoryLocationID uuid.UUID       `json:"inventory_location_id"`
}

// ToInventoryLineResponse converts a line view to its response
func ToInventoryLineResponse(v inventory.InventoryLineView) InventoryLineResponse {
	return InventoryLineResponse{
		ID:                  v.ID,
		InventoryID:         v.InventoryID,
		InventoryDate:       v.InventoryDate,
		PartnerID:           v.PartnerID,
		ProductID:           v.ProductID,
		ProductUomID:        v.ProductUomID,
		ProductQty:          v.ProductQty,
		LocationID:          v.LocationID,
		PackageID:           v.PackageID,
		ProdLotID:           v.ProdLotID,
		State:               string(v.State),
		InventoryLocationID: v.InventoryLocationID,
	}
}

// UpdateInventoryLineRequest patches an adjustment line; omitted fields are unchanged
type UpdateInventoryLineRequest struct {
	InventoryID         *uuid.UUID       `json:"inventory_id"`
	PartnerID           *uuid.UUID       `json:"partner_id"`
	ProductID           *uuid.UUID       `json:"product_id"`
	ProductUomID        *uuid.UUID       `json:"product_uom_id"`
	ProductQty          *decimal.Decimal `json:"product_qty"`
	LocationID          *uuid.UUID       `json:"location_id"`
	PackageID           *uuid.UUID       `json:"package_id"`
	ProdLotID           *uuid.UUID       `json:"prod_lot_id"`
	InventoryLocationID *uuid.UUID       `json:"inventory_location_id"`
}

// ToPatch converts the request to a domain patch
func (r UpdateInventoryLineRequest) ToPatch() inventory.InventoryLinePatch {
	return inventory.InventoryLinePatch{
		InventoryID:         r.InventoryID,
		PartnerID:           r.PartnerID,
		ProductID:           r.ProductID,
		ProductUomID:        r.ProductUomID,
		ProductQty:          r.ProductQty,
		LocationID:          r.LocationID,
		PackageID:           r.PackageID,
		ProdLotID:           r.ProdLotID,
		InventoryLocationID: r.InventoryLocationID,
	}
}
