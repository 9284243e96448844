package inventory

import (
	"context"
	"fmt"

	"github.com/erp/usability/internal/domain/inventory"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxLocationDepth bounds the walk up the location tree
const maxLocationDepth = 32

// OrderpointService creates reordering rules
type OrderpointService struct {
	locationRepo   inventory.LocationRepository
	orderpointRepo inventory.OrderpointRepository
	logger         *zap.Logger
}

// NewOrderpointService creates a new OrderpointService
func NewOrderpointService(
	locationRepo inventory.LocationRepository,
	orderpointRepo inventory.OrderpointRepository,
	logger *zap.Logger,
) *OrderpointService {
	return &OrderpointService{
		locationRepo:   locationRepo,
		orderpointRepo: orderpointRepo,
		logger:         logger,
	}
}

// Defaults returns the prefilled warehouse and location of a rule created
// from the given location. Both stay empty when no warehouse owns the location.
func (s *OrderpointService) Defaults(ctx context.Context, locationID uuid.UUID) (inventory.OrderpointDefaults, error) {
	location, err := s.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		return inventory.OrderpointDefaults{}, err
	}

	warehouseID, err := s.resolveWarehouse(ctx, location)
	if err != nil {
		return inventory.OrderpointDefaults{}, err
	}
	return inventory.DefaultsForLocation(location, warehouseID), nil
}

// resolveWarehouse returns the warehouse of the location or of its closest ancestor that has one
func (s *OrderpointService) resolveWarehouse(ctx context.Context, location *inventory.Location) (*uuid.UUID, error) {
	current := location
	for depth := 0; depth < maxLocationDepth; depth++ {
		if current.WarehouseID != nil {
			return current.WarehouseID, nil
		}
		if current.ParentID == nil {
			return nil, nil
		}
		parent, err := s.locationRepo.FindByID(ctx, *current.ParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load parent location %s: %w", *current.ParentID, err)
		}
		current = parent
	}
	s.logger.Warn("Location tree too deep, no warehouse resolved", zap.String("location_id", location.ID.String()))
	return nil, nil
}

// Create stores a new reordering rule unless one already covers the same key
func (s *OrderpointService) Create(ctx context.Context, req CreateOrderpointRequest) (*OrderpointResponse, error) {
	orderpoint, err := inventory.NewOrderpoint(
		req.CompanyID, req.WarehouseID, req.LocationID, req.ProductID,
		req.ProductMinQty, req.ProductMaxQty,
	)
	if err != nil {
		return nil, err
	}

	exists, err := s.orderpointRepo.ExistsByKey(ctx, req.CompanyID, req.WarehouseID, req.LocationID, req.ProductID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, inventory.ErrDuplicateOrderpoint
	}

	if err := s.orderpointRepo.Save(ctx, orderpoint); err != nil {
		return nil, err
	}
	resp := ToOrderpointResponse(orderpoint)
	return &resp, nil
}
