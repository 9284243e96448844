package inventory

import (
	"strings"

	"github.com/erp/usability/internal/domain/shared"
	"github.com/google/uuid"
)

// LocationUsage classifies what a stock location is used for
type LocationUsage string

const (
	UsageSupplier    LocationUsage = "supplier"
	UsageView        LocationUsage = "view"
	UsageInternal    LocationUsage = "internal"
	UsageCustomer    LocationUsage = "customer"
	UsageInventory   LocationUsage = "inventory"
	UsageProcurement LocationUsage = "procurement"
	UsageProduction  LocationUsage = "production"
	UsageTransit     LocationUsage = "transit"
)

// IsValid returns true if the usage is one of the known classifications
func (u LocationUsage) IsValid() bool {
	switch u {
	case UsageSupplier, UsageView, UsageInternal, UsageCustomer,
		UsageInventory, UsageProcurement, UsageProduction, UsageTransit:
		return true
	}
	return false
}

// Location is a place where stock can sit. Name is stored as-is, never translated.
type Location struct {
	shared.BaseEntity
	Name        string
	Usage       LocationUsage
	ParentID    *uuid.UUID
	WarehouseID *uuid.UUID
	Active      bool
}

// NewLocation creates an active location
func NewLocation(name string, usage LocationUsage, parentID *uuid.UUID) (*Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.ErrInvalidInput.WithMessage("location name cannot be empty")
	}
	if !usage.IsValid() {
		return nil, shared.ErrInvalidInput.WithMessage("unknown location usage %q", usage)
	}
	return &Location{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Usage:      usage,
		ParentID:   parentID,
		Active:     true,
	}, nil
}

// IsInternal returns true for warehouse-owned storage locations
func (l *Location) IsInternal() bool {
	return l.Usage == UsageInternal
}

// LocationIDs extracts the ids of the given locations
func LocationIDs(locations []Location) []uuid.UUID {
	ids := make([]uuid.UUID, len(locations))
	for i := range locations {
		ids[i] = locations[i].ID
	}
	return ids
}
