package inventory

import (
	"context"

	"github.com/erp/usability/internal/domain/inventory"
	"github.com/google/uuid"
)

// LocationService answers stock location queries
type LocationService struct {
	locationRepo inventory.LocationRepository
	quantRepo    inventory.QuantRepository
}

// NewLocationService creates a new LocationService
func NewLocationService(locationRepo inventory.LocationRepository, quantRepo inventory.QuantRepository) *LocationService {
	return &LocationService{
		locationRepo: locationRepo,
		quantRepo:    quantRepo,
	}
}

// Quants lists the quants at a location
func (s *LocationService) Quants(ctx context.Context, locationID uuid.UUID) ([]QuantResponse, error) {
	if _, err := s.locationRepo.FindByID(ctx, locationID); err != nil {
		return nil, err
	}
	quants, err := s.quantRepo.FindByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}
	resp := make([]QuantResponse, len(quants))
	for i := range quants {
		resp[i] = ToQuantResponse(&quants[i])
	}
	return resp, nil
}

// EmptyInternal lists the internal leaf locations holding no stock
func (s *LocationService) EmptyInternal(ctx context.Context) ([]LocationResponse, error) {
	locations, err := s.locationRepo.FindEmptyInternal(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]LocationResponse, len(locations))
	for i := range locations {
		resp[i] = ToLocationResponse(&locations[i])
	}
	return resp, nil
}

// ReferenceService serves incoterms and procurement groups
type ReferenceService struct {
	incotermRepo inventory.IncotermRepository
	groupRepo    inventory.ProcurementGroupRepository
	pickingRepo  inventory.PickingRepository
}

// NewReferenceService creates a new ReferenceService
func NewReferenceService(
	incotermRepo inventory.IncotermRepository,
	groupRepo inventory.ProcurementGroupRepository,
	pickingRepo inventory.PickingRepository,
) *ReferenceService {
	return &ReferenceService{
		incotermRepo: incotermRepo,
		groupRepo:    groupRepo,
		pickingRepo:  pickingRepo,
	}
}

// Incoterms lists incoterms with their display names
func (s *ReferenceService) Incoterms(ctx context.Context) ([]IncotermResponse, error) {
	incoterms, err := s.incotermRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]IncotermResponse, len(incoterms))
	for i := range incoterms {
		resp[i] = IncotermResponse{
			ID:          incoterms[i].ID,
			Code:        incoterms[i].Code,
			Name:        incoterms[i].Name,
			DisplayName: incoterms[i].DisplayName(),
		}
	}
	return resp, nil
}

// GroupPickings lists the pickings generated for a procurement group
func (s *ReferenceService) GroupPickings(ctx context.Context, groupID uuid.UUID) ([]PickingResponse, error) {
	if _, err := s.groupRepo.FindByID(ctx, groupID); err != nil {
		return nil, err
	}
	pickings, err := s.pickingRepo.FindByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return ToPickingResponses(pickings), nil
}
