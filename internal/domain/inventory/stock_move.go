package inventory

import (
	"fmt"
	"time"

	"github.com/erp/usability/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MoveState is the lifecycle state of a stock move
type MoveState string

const (
	MoveStateDraft              MoveState = "draft"
	MoveStateWaiting            MoveState = "waiting"
	MoveStateConfirmed          MoveState = "confirmed"
	MoveStatePartiallyAvailable MoveState = "partially_available"
	MoveStateAssigned           MoveState = "assigned"
	MoveStateDone               MoveState = "done"
	MoveStateCancel             MoveState = "cancel"
)

// DateExpectedLayout is how the expected date appears in a move's display name
const DateExpectedLayout = "2006-01-02 15:04:05"

// StockMove moves a quantity of one product between two locations
type StockMove struct {
	shared.BaseEntity
	ProductID      uuid.UUID
	LocationID     uuid.UUID
	LocationDestID uuid.UUID
	PickingID      *uuid.UUID
	PartnerID      *uuid.UUID
	ProductQty     decimal.Decimal
	ReservedQty    decimal.Decimal
	State          MoveState
	DateExpected   *time.Time
}

// Unreserve drops the move's reservation
func (m *StockMove) Unreserve() error {
	switch m.State {
	case MoveStateDone, MoveStateCancel:
		return shared.ErrInvalidState.WithMessage("cannot unreserve a move in state %s", m.State)
	case MoveStateAssigned, MoveStatePartiallyAvailable:
		m.State = MoveStateConfirmed
	}
	m.ReservedQty = decimal.Zero
	m.Touch()
	return nil
}

// ForceAssign marks a move that is waiting for stock as available. It reports
// whether the move changed; moves in any other state are left as they are.
func (m *StockMove) ForceAssign() bool {
	switch m.State {
	case MoveStateConfirmed, MoveStateWaiting, MoveStatePartiallyAvailable:
		m.State = MoveStateAssigned
		m.Touch()
		return true
	}
	return false
}

// MoveNameRefs holds the related values a move's display name is built from.
// The caller resolves them; empty strings mean "not set".
type MoveNameRefs struct {
	LocationName     string
	LocationDestName string
	ProductCode      string
	PickingOrigin    string
	PartnerName      string
	DateExpected     *time.Time
}

// MoveDisplayName renders "<partner> <origin> <code>: <src> > <dest> <date>",
// leaving out the parts that are not set.
func MoveDisplayName(refs MoveNameRefs) string {
	name := refs.LocationName + " > " + refs.LocationDestName
	if refs.ProductCode != "" {
		name = refs.ProductCode + ": " + name
	}
	if refs.PickingOrigin != "" {
		name = refs.PickingOrigin + " " + name
	}
	if refs.PartnerName != "" {
		name = refs.PartnerName + " " + name
	}
	if refs.DateExpected != nil {
		name = name + " " + refs.DateExpected.Format(DateExpectedLayout)
	}
	return name
}

// MoveUnreservedMessage is posted on the picking when one of its moves is unreserved
func MoveUnreservedMessage(productID uuid.UUID, productDisplayName string, qty decimal.Decimal, uomName string) string {
	return fmt.Sprintf(
		"Product <a href=# data-oe-model=product.product data-oe-id=%s>%s</a> qty %s %s <b>unreserved</b>",
		productID, productDisplayName, qty.String(), uomName,
	)
}
