package inventory

import (
	"context"

	"github.com/erp/usability/internal/domain/shared"
	"github.com/google/uuid"
)

// LocationRepository defines the interface for stock location persistence
type LocationRepository interface {
	// FindByID finds a location by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Location, error)

	// FindByUsage finds all active locations with the given usage
	FindByUsage(ctx context.Context, usage LocationUsage) ([]Location, error)

	// FindEmptyInternal finds internal locations with no child location and no quant
	FindEmptyInternal(ctx context.Context) ([]Location, error)

	// Save creates or updates a location
	Save(ctx context.Context, location *Location) error
}

// QuantRepository defines the interface for quant persistence
type QuantRepository interface {
	// FindByLocation finds the quants sitting at a location
	FindByLocation(ctx context.Context, locationID uuid.UUID) ([]Quant, error)

	// FindPackagedInLocations finds quants at any of the locations that belong to a package
	FindPackagedInLocations(ctx context.Context, locationIDs []uuid.UUID) ([]Quant, error)

	// FindByPackage finds all quants of a package, wherever they are
	FindByPackage(ctx context.Context, packageID uuid.UUID) ([]Quant, error)

	// Save creates or updates a quant
	Save(ctx context.Context, quant *Quant) error
}

// PackageRepository defines the interface for package persistence
type PackageRepository interface {
	// FindByIDs finds packages by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Package, error)

	// Save creates or updates a package
	Save(ctx context.Context, pkg *Package) error
}

// PickingRepository defines the interface for picking persistence
type PickingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Picking, error)

	// FindAll lists pickings newest first
	FindAll(ctx context.Context, filter shared.Filter) ([]Picking, int64, error)

	// FindByGroup lists the pickings of a procurement group
	FindByGroup(ctx context.Context, groupID uuid.UUID) ([]Picking, error)

	Save(ctx context.Context, picking *Picking) error
}

// StockMoveRepository defines the interface for stock move persistence
type StockMoveRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StockMove, error)

	// FindByPicking lists the moves of a picking, oldest first
	FindByPicking(ctx context.Context, pickingID uuid.UUID) ([]*StockMove, error)

	// LoadNameRefs resolves the related values used in the move's display name
	LoadNameRefs(ctx context.Context, id uuid.UUID) (*MoveNameRefs, error)

	// DeletePackOperations removes the pack operations linked to the move
	DeletePackOperations(ctx context.Context, moveID uuid.UUID) (int64, error)

	Save(ctx context.Context, move *StockMove) error
}

// MessageRepository defines the interface for posted messages
type MessageRepository interface {
	Save(ctx context.Context, message *Message) error
	FindByResource(ctx context.Context, resModel string, resID uuid.UUID) ([]Message, error)
}

// IncotermRepository defines the interface for incoterm persistence
type IncotermRepository interface {
	FindAll(ctx context.Context) ([]Incoterm, error)
}

// InventoryRepository defines the interface for inventory adjustment persistence
type InventoryRepository interface {
	// FindAll lists adjustments newest first
	FindAll(ctx context.Context, filter shared.Filter) ([]Inventory, int64, error)

	FindByID(ctx context.Context, id uuid.UUID) (*Inventory, error)

	FindLineByID(ctx context.Context, id uuid.UUID) (*InventoryLine, error)

	SaveLine(ctx context.Context, line *InventoryLine) error
}

// OrderpointRepository defines the interface for reordering rule persistence
type OrderpointRepository interface {
	// ExistsByKey checks the (company, warehouse, location, product) uniqueness key
	ExistsByKey(ctx context.Context, companyID, warehouseID, locationID, productID uuid.UUID) (bool, error)

	Save(ctx context.Context, orderpoint *Orderpoint) error
}

// ProcurementGroupRepository defines the interface for procurement group persistence
type ProcurementGroupRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProcurementGroup, error)
}
