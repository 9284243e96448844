package inventory

import (
	"github.com/erp/usability/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrDuplicateOrderpoint is returned when a reordering rule already covers the same
// company, warehouse, location and product
var ErrDuplicateOrderpoint = shared.ErrAlreadyExists.WithMessage(
	"An orderpoint already exists for the same company, same warehouse, " +
		"same stock location and same product.")

// Orderpoint is a min/max reordering rule
type Orderpoint struct {
	shared.BaseEntity
	CompanyID     uuid.UUID
	WarehouseID   uuid.UUID
	LocationID    uuid.UUID
	ProductID     uuid.UUID
	ProductMinQty decimal.Decimal
	ProductMaxQty decimal.Decimal
}

// NewOrderpoint creates a reordering rule
func NewOrderpoint(companyID, warehouseID, locationID, productID uuid.UUID, minQty, maxQty decimal.Decimal) (*Orderpoint, error) {
	if companyID == uuid.Nil || warehouseID == uuid.Nil || locationID == uuid.Nil || productID == uuid.Nil {
		return nil, shared.ErrInvalidInput.WithMessage("company, warehouse, location and product are required")
	}
	if minQty.IsNegative() || maxQty.IsNegative() {
		return nil, shared.ErrInvalidInput.WithMessage("min and max quantities cannot be negative")
	}
	if minQty.GreaterThan(maxQty) {
		return nil, shared.ErrInvalidInput.WithMessage("min quantity %s exceeds max quantity %s", minQty, maxQty)
	}
	return &Orderpoint{
		BaseEntity:    shared.NewBaseEntity(),
		CompanyID:     companyID,
		WarehouseID:   warehouseID,
		LocationID:    locationID,
		ProductID:     productID,
		ProductMinQty: minQty,
		ProductMaxQty: maxQty,
	}, nil
}

// OrderpointDefaults are the prefilled values of a new reordering rule
type OrderpointDefaults struct {
	WarehouseID *uuid.UUID
	LocationID  *uuid.UUID
}

// DefaultsForLocation prefills the rule from the location it is created from.
// Defaults are only set when the location resolves to a warehouse.
func DefaultsForLocation(location *Location, warehouseID *uuid.UUID) OrderpointDefaults {
	if location == nil || warehouseID == nil {
		return OrderpointDefaults{}
	}
	locID := location.ID
	whID := *warehouseID
	return OrderpointDefaults{
		WarehouseID: &whID,
		LocationID:  &locID,
	}
}
