package inventory

import (
	"context"

	"github.com/erp/usability/internal/domain/inventory"
	"github.com/erp/usability/internal/domain/shared"
	"github.com/google/uuid"
)

// StockInventoryService lists inventory adjustments and edits their lines
type StockInventoryService struct {
	inventoryRepo inventory.InventoryRepository
}

// NewStockInventoryService creates a new StockInventoryService
func NewStockInventoryService(inventoryRepo inventory.InventoryRepository) *StockInventoryService {
	return &StockInventoryService{inventoryRepo: inventoryRepo}
}

// List returns adjustments newest first
func (s *StockInventoryService) List(ctx context.Context, filter shared.Filter) ([]InventoryResponse, int64, error) {
	inventories, total, err := s.inventoryRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	resp := make([]InventoryResponse, len(inventories))
	for i := range inventories {
		resp[i] = ToInventoryResponse(&inventories[i])
	}
	return resp, total, nil
}

// GetLine returns a line together with its adjustment's date
func (s *StockInventoryService) GetLine(ctx context.Context, id uuid.UUID) (*InventoryLineResponse, error) {
	line, err := s.inventoryRepo.FindLineByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.lineView(ctx, line)
}

// UpdateLine applies a patch to a line. Lines of a done adjustment reject every change.
func (s *StockInventoryService) UpdateLine(ctx context.Context, id uuid.UUID, req UpdateInventoryLineRequest) (*InventoryLineResponse, error) {
	line, err := s.inventoryRepo.FindLineByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := line.Apply(req.ToPatch()); err != nil {
		return nil, err
	}
	if err := s.inventoryRepo.SaveLine(ctx, line); err != nil {
		return nil, err
	}
	return s.lineView(ctx, line)
}

func (s *StockInventoryService) lineView(ctx context.Context, line *inventory.InventoryLine) (*InventoryLineResponse, error) {
	inv, err := s.inventoryRepo.FindByID(ctx, line.InventoryID)
	if err != nil {
		return nil, err
	}
	resp := ToInventoryLineResponse(inventory.InventoryLineView{InventoryLine: *line, InventoryDate: inv.Date})
	return &resp, nil
}
