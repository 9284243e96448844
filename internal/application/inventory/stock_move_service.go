package inventory

import (
	"context"
	"fmt"

	"github.com/erp/usability/internal/domain/catalog"
	"github.com/erp/usability/internal/domain/inventory"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StockMoveService renders move names and unreserves moves
type StockMoveService struct {
	moveRepo inventory.StockMoveRepository
	txScope  TransactionScope
	logger   *zap.Logger
}

// NewStockMoveService creates a new StockMoveService
func NewStockMoveService(moveRepo inventory.StockMoveRepository, txScope TransactionScope, logger *zap.Logger) *StockMoveService {
	return &StockMoveService{
		moveRepo: moveRepo,
		txScope:  txScope,
		logger:   logger,
	}
}

// DisplayName returns the human readable name of a move
func (s *StockMoveService) DisplayName(ctx context.Context, id uuid.UUID) (string, error) {
	refs, err := s.moveRepo.LoadNameRefs(ctx, id)
	if err != nil {
		return "", err
	}
	return inventory.MoveDisplayName(*refs), nil
}

// Unreserve drops a move's reservation and its pack operations. When the move
// belongs to a picking, the unreserved product is noted on the picking.
func (s *StockMoveService) Unreserve(ctx context.Context, id uuid.UUID) (*StockMoveResponse, error) {
	var move *inventory.StockMove
	var deleted int64
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		move, err = repos.MoveRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := move.Unreserve(); err != nil {
			return err
		}
		if err := repos.MoveRepo().Save(ctx, move); err != nil {
			return err
		}
		if deleted, err = repos.MoveRepo().DeletePackOperations(ctx, move.ID); err != nil {
			return err
		}
		if move.PickingID == nil {
			return nil
		}

		body, err := unreservedMessage(ctx, repos.ProductRepo(), move)
		if err != nil {
			return err
		}
		return repos.MessageRepo().Save(ctx, inventory.NewMessage(inventory.ResModelPicking, *move.PickingID, body))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Stock move unreserved",
		zap.String("move_id", move.ID.String()),
		zap.Int64("pack_operations_deleted", deleted),
	)
	resp := ToStockMoveResponse(move)
	return &resp, nil
}

func unreservedMessage(ctx context.Context, products catalog.ProductRepository, move *inventory.StockMove) (string, error) {
	variant, tmpl, err := products.FindVariantByID(ctx, move.ProductID)
	if err != nil {
		return "", fmt.Errorf("failed to load product %s: %w", move.ProductID, err)
	}
	return inventory.MoveUnreservedMessage(
		variant.ID,
		catalog.VariantDisplayName(variant.DefaultCode, tmpl.Name),
		move.ProductQty,
		tmpl.UomName,
	), nil
}
