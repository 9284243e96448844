package inventory

import (
	"context"

	"github.com/erp/usability/internal/domain/inventory"
	"github.com/erp/usability/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PickingService handles transfer state changes and the messages they post
type PickingService struct {
	pickingRepo inventory.PickingRepository
	txScope     TransactionScope
	logger      *zap.Logger
}

// NewPickingService creates a new PickingService
func NewPickingService(pickingRepo inventory.PickingRepository, txScope TransactionScope, logger *zap.Logger) *PickingService {
	return &PickingService{
		pickingRepo: pickingRepo,
		txScope:     txScope,
		logger:      logger,
	}
}

// List returns pickings newest first
func (s *PickingService) List(ctx context.Context, filter shared.Filter) ([]PickingResponse, int64, error) {
	pickings, total, err := s.pickingRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return ToPickingResponses(pickings), total, nil
}

// ForceAssign makes a waiting picking available together with its moves that
// wait for stock, and records it on the picking
func (s *PickingService) ForceAssign(ctx context.Context, id uuid.UUID) (*PickingResponse, error) {
	return s.transition(ctx, id, func(repos TransactionalRepositories, p *inventory.Picking) (string, error) {
		if err := p.ForceAssign(); err != nil {
			return "", err
		}
		moves, err := repos.MoveRepo().FindByPicking(ctx, p.ID)
		if err != nil {
			return "", err
		}
		for _, move := range moves {
			if !move.ForceAssign() {
				continue
			}
			if err := repos.MoveRepo().Save(ctx, move); err != nil {
				return "", err
			}
		}
		return inventory.MsgForceAvailability, nil
	})
}

// Unreserve releases a picking's reservation. Every move that is not
// cancelled is unreserved and loses its pack operations. A done move fails
// the whole call.
func (s *PickingService) Unreserve(ctx context.Context, id uuid.UUID) (*PickingResponse, error) {
	return s.transition(ctx, id, func(repos TransactionalRepositories, p *inventory.Picking) (string, error) {
		if err := p.DoUnreserve(); err != nil {
			return "", err
		}
		moves, err := repos.MoveRepo().FindByPicking(ctx, p.ID)
		if err != nil {
			return "", err
		}
		var deleted int64
		for _, move := range moves {
			if move.State == inventory.MoveStateCancel {
				continue
			}
			if err := move.Unreserve(); err != nil {
				return "", err
			}
			if err := repos.MoveRepo().Save(ctx, move); err != nil {
				return "", err
			}
			n, err := repos.MoveRepo().DeletePackOperations(ctx, move.ID)
			if err != nil {
				return "", err
			}
			deleted += n
		}
		s.logger.Debug("Picking moves unreserved",
			zap.String("picking_id", p.ID.String()),
			zap.Int("moves", len(moves)),
			zap.Int64("pack_operations_deleted", deleted),
		)
		return inventory.MsgPickingUnreserved, nil
	})
}

// Update changes the tracked fields of a picking and posts what changed
func (s *PickingService) Update(ctx context.Context, id uuid.UUID, req UpdatePickingRequest) (*PickingResponse, error) {
	return s.transition(ctx, id, func(_ TransactionalRepositories, p *inventory.Picking) (string, error) {
		changes, err := p.ApplyUpdate(req.ToDomain())
		if err != nil || len(changes) == 0 {
			return "", err
		}
		return inventory.TrackingMessage(changes), nil
	})
}

// transition loads the picking, applies change, then saves it together with
// the returned message body. An empty body posts nothing. change runs in the
// same transaction, so anything it writes through repos commits or rolls
// back with the picking.
func (s *PickingService) transition(ctx context.Context, id uuid.UUID, change func(TransactionalRepositories, *inventory.Picking) (string, error)) (*PickingResponse, error) {
	var picking *inventory.Picking
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		picking, err = repos.PickingRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		body, err := change(repos, picking)
		if err != nil {
			return err
		}
		if err := repos.PickingRepo().Save(ctx, picking); err != nil {
			return err
		}
		if body == "" {
			return nil
		}
		return repos.MessageRepo().Save(ctx, inventory.NewMessage(inventory.ResModelPicking, picking.ID, body))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Picking updated",
		zap.String("picking_id", picking.ID.String()),
		zap.String("state", string(picking.State)),
	)
	resp := ToPickingResponse(picking)
	return &resp, nil
}
