package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/erp/usability/internal/domain/shared"
	"github.com/google/uuid"
)

// PickingState is the lifecycle state of a transfer
type PickingState string

const (
	PickingStateDraft              PickingState = "draft"
	PickingStateWaiting            PickingState = "waiting"
	PickingStateConfirmed          PickingState = "confirmed"
	PickingStatePartiallyAvailable PickingState = "partially_available"
	PickingStateAssigned           PickingState = "assigned"
	PickingStateDone               PickingState = "done"
	PickingStateCancel             PickingState = "cancel"
)

// MoveType is the delivery policy of a transfer
type MoveType string

const (
	MoveTypeDirect MoveType = "direct"
	MoveTypeOne    MoveType = "one"
)

// IsValid returns true for a known delivery policy
func (m MoveType) IsValid() bool {
	return m == MoveTypeDirect || m == MoveTypeOne
}

// Messages posted on pickings
const (
	MsgForceAvailability = "Using <b>Force Availability</b>!"
	MsgPickingUnreserved = "Picking <b>unreserved</b>."
)

// PickingOrder lists the newest pickings first
const PickingOrder = "created_at DESC, id DESC"

// Picking is a stock transfer
type Picking struct {
	shared.BaseEntity
	Name           string
	Origin         string
	PartnerID      *uuid.UUID
	PickingTypeID  uuid.UUID
	MoveType       MoveType
	State          PickingState
	GroupID        *uuid.UUID
	LocationID     uuid.UUID
	LocationDestID uuid.UUID
	ScheduledDate  time.Time
}

// ForceAssign marks a waiting picking as available regardless of stock
func (p *Picking) ForceAssign() error {
	if p.State != PickingStateConfirmed && p.State != PickingStateWaiting {
		return shared.ErrInvalidState.WithMessage("cannot force availability of a picking in state %s", p.State)
	}
	p.State = PickingStateAssigned
	p.Touch()
	return nil
}

// DoUnreserve releases the reservation of an available picking
func (p *Picking) DoUnreserve() error {
	if p.State != PickingStateAssigned && p.State != PickingStatePartiallyAvailable {
		return shared.ErrInvalidState.WithMessage("cannot unreserve a picking in state %s", p.State)
	}
	p.State = PickingStateConfirmed
	p.Touch()
	return nil
}

// PickingUpdate carries the tracked fields a caller wants to change.
// Nil means unchanged; a PartnerID of uuid.Nil clears the partner.
type PickingUpdate struct {
	PartnerID     *uuid.UUID
	PickingTypeID *uuid.UUID
	MoveType      *MoveType
}

// FieldChange records one tracked field value change
type FieldChange struct {
	Field    string
	OldValue string
	NewValue string
}

// ApplyUpdate changes the tracked fields and returns what actually changed
func (p *Picking) ApplyUpdate(u PickingUpdate) ([]FieldChange, error) {
	if p.State == PickingStateDone || p.State == PickingStateCancel {
		return nil, shared.ErrInvalidState.WithMessage("cannot edit a picking in state %s", p.State)
	}
	if u.MoveType != nil && !u.MoveType.IsValid() {
		return nil, shared.ErrInvalidInput.WithMessage("unknown move type %q", *u.MoveType)
	}

	var changes []FieldChange
	if u.PartnerID != nil {
		var next *uuid.UUID
		if *u.PartnerID != uuid.Nil {
			id := *u.PartnerID
			next = &id
		}
		if optionalID(p.PartnerID) != optionalID(next) {
			changes = append(changes, FieldChange{"partner_id", optionalID(p.PartnerID), optionalID(next)})
			p.PartnerID = next
		}
	}
	if u.PickingTypeID != nil && *u.PickingTypeID != p.PickingTypeID {
		changes = append(changes, FieldChange{"picking_type_id", p.PickingTypeID.String(), u.PickingTypeID.String()})
		p.PickingTypeID = *u.PickingTypeID
	}
	if u.MoveType != nil && *u.MoveType != p.MoveType {
		changes = append(changes, FieldChange{"move_type", string(p.MoveType), string(*u.MoveType)})
		p.MoveType = *u.MoveType
	}
	if len(changes) > 0 {
		p.Touch()
	}
	return changes, nil
}

// TrackingMessage renders tracked changes as a message body
func TrackingMessage(changes []FieldChange) string {
	lines := make([]string, len(changes))
	for i, c := range changes {
		lines[i] = fmt.Sprintf("%s: %s &#8594; %s", c.Field, c.OldValue, c.NewValue)
	}
	return strings.Join(lines, "<br/>")
}

func optionalID(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
