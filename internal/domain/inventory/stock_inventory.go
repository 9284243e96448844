package inventory

import (
	"time"

	"github.com/erp/usability/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryState is the state of an inventory adjustment
type InventoryState string

const (
	InventoryStateDraft   InventoryState = "draft"
	InventoryStateConfirm InventoryState = "confirm"
	InventoryStateDone    InventoryState = "done"
	InventoryStateCancel  InventoryState = "cancel"
)

// InventoryOrder lists the newest adjustments first
const InventoryOrder = "created_at DESC, id DESC"

// Inventory is a physical inventory adjustment
type Inventory struct {
	shared.BaseEntity
	Name       string
	Date       time.Time
	State      InventoryState
	LocationID uuid.UUID
}

// InventoryLine is one counted product on an adjustment.
// State is stored on the line and mirrors its inventory.
type InventoryLine struct {
	shared.BaseEntity
	InventoryID         uuid.UUID
	PartnerID           *uuid.UUID
	ProductID           uuid.UUID
	ProductUomID        uuid.UUID
	ProductQty          decimal.Decimal
	LocationID          uuid.UUID
	PackageID           *uuid.UUID
	ProdLotID           *uuid.UUID
	State               InventoryState
	InventoryLocationID uuid.UUID
}

// InventoryLinePatch holds the fields a caller wants to change on a line; nil means unchanged
type InventoryLinePatch struct {
	InventoryID         *uuid.UUID
	PartnerID           *uuid.UUID
	ProductID           *uuid.UUID
	ProductUomID        *uuid.UUID
	ProductQty          *decimal.Decimal
	LocationID          *uuid.UUID
	PackageID           *uuid.UUID
	ProdLotID           *uuid.UUID
	InventoryLocationID *uuid.UUID
}

// Apply changes the line. Once the line is done every field is frozen;
// inventory_location_id can never be written.
func (l *InventoryLine) Apply(p InventoryLinePatch) error {
	if p.InventoryLocationID != nil {
		return shared.ErrReadonlyField.WithMessage("field inventory_location_id is read-only")
	}
	if l.State == InventoryStateDone {
		if field := p.firstSetField(); field != "" {
			return shared.ErrReadonlyField.WithMessage("field %s is read-only on a done inventory line", field)
		}
		return nil
	}
	if p.ProductQty != nil && p.ProductQty.IsNegative() {
		return shared.ErrInvalidInput.WithMessage("product_qty cannot be negative")
	}

	if p.InventoryID != nil {
		l.InventoryID = *p.InventoryID
	}
	if p.PartnerID != nil {
		l.PartnerID = nilIfZero(*p.PartnerID)
	}
	if p.ProductID != nil {
		l.ProductID = *p.ProductID
	}
	if p.ProductUomID != nil {
		l.ProductUomID = *p.ProductUomID
	}
	if p.ProductQty != nil {
		l.ProductQty = *p.ProductQty
	}
	if p.LocationID != nil {
		l.LocationID = *p.LocationID
	}
	if p.PackageID != nil {
		l.PackageID = nilIfZero(*p.PackageID)
	}
	if p.ProdLotID != nil {
		l.ProdLotID = nilIfZero(*p.ProdLotID)
	}
	l.Touch()
	return nil
}

func (p InventoryLinePatch) firstSetField() string {
	switch {
	case p.InventoryID != nil:
		return "inventory_id"
	case p.PartnerID != nil:
		return "partner_id"
	case p.ProductID != nil:
		return "product_id"
	case p.ProductUomID != nil:
		return "product_uom_id"
	case p.ProductQty != nil:
		return "product_qty"
	case p.LocationID != nil:
		return "location_id"
	case p.PackageID != nil:
		return "package_id"
	case p.ProdLotID != nil:
		return "prod_lot_id"
	}
	return ""
}

// InventoryLineView is a line together with its inventory's date
type InventoryLineView struct {
	InventoryLine
	InventoryDate time.Time
}

func nilIfZero(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
