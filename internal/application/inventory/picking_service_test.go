package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/erp/usability/internal/domain/inventory"
	"github.com/erp/usability/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testPicking(state inventory.PickingState) *inventory.Picking {
	return &inventory.Picking{
		BaseEntity:     shared.NewBaseEntity(),
		Name:           "WH/OUT/00001",
		PickingTypeID:  uuid.New(),
		MoveType:       inventory.MoveTypeDirect,
		State:          state,
		LocationID:     uuid.New(),
		LocationDestID: uuid.New(),
		ScheduledDate:  time.Now(),
	}
}

func messageWithBody(pickingID uuid.UUID, body string) any {
	return mock.MatchedBy(func(m *inventory.Message) bool {
		return m.ResModel == inventory.ResModelPicking && m.ResID == pickingID && m.Body == body
	})
}

func TestPickingService_ForceAssign(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns a confirmed picking and its waiting moves", func(t *testing.T) {
		repos := newMockRepos()
		picking := testPicking(inventory.PickingStateConfirmed)
		confirmed := testMove(inventory.MoveStateConfirmed, &picking.ID)
		partial := testMove(inventory.MoveStatePartiallyAvailable, &picking.ID)
		cancelled := testMove(inventory.MoveStateCancel, &picking.ID)
		repos.pickings.On("FindByID", mock.Anything, picking.ID).Return(picking, nil).Once()
		repos.moves.On("FindByPicking", mock.Anything, picking.ID).
			Return([]*inventory.StockMove{confirmed, partial, cancelled}, nil).Once()
		repos.moves.On("Save", mock.Anything, confirmed).Return(nil).Once()
		repos.moves.On("Save", mock.Anything, partial).Return(nil).Once()
		repos.pickings.On("Save", mock.Anything, picking).Return(nil).Once()
		repos.messages.On("Save", mock.Anything, messageWithBody(picking.ID, "Using <b>Force Availability</b>!")).
			Return(nil).Once()

		svc := NewPickingService(repos.pickings, repos.scope(), zap.NewNop())
		resp, err := svc.ForceAssign(ctx, picking.ID)
		require.NoError(t, err)
		assert.Equal(t, "assigned", resp.State)
		assert.Equal(t, inventory.MoveStateAssigned, confirmed.State)
		assert.Equal(t, inventory.MoveStateAssigned, partial.State)
		assert.Equal(t, inventory.MoveStateCancel, cancelled.State)
		repos.assertExpectations(t)
	})

	t.Run("does not save the picking when a move fails to save", func(t *testing.T) {
		repos := newMockRepos()
		picking := testPicking(inventory.PickingStateWaiting)
		move := testMove(inventory.MoveStateWaiting, &picking.ID)
		boom := errors.New("boom")
		repos.pickings.On("FindByID", mock.Anything, picking.ID).Return(picking, nil).Once()
		repos.moves.On("FindByPicking", mock.Anything, picking.ID).Return([]*inventory.StockMove{move}, nil).Once()
		repos.moves.On("Save", mock.Anything, move).Return(boom).Once()

		svc := NewPickingService(repos.pickings, repos.scope(), zap.NewNop())
		_, err := svc.ForceAssign(ctx, picking.ID)
		assert.ErrorIs(t, err, boom)
		repos.pickings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		repos.messages.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects a done picking without saving", func(t *testing.T) {
		repos := newMockRepos()
		picking := testPicking(inventory.PickingStateDone)
		repos.pickings.On("FindByID", mock.Anything, picking.ID).Return(picking, nil).Once()

		svc := NewPickingService(repos.pickings, repos.scope(), zap.NewNop())
		_, err := svc.ForceAssign(ctx, picking.ID)
		assert.True(t, errors.Is(err, shared.ErrInvalidState))
		repos.moves.AssertNotCalled(t, "FindByPicking", mock.Anything, mock.Anything)
		repos.pickings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		repos.messages.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("reports a missing picking", func(t *testing.T) {
		repos := newMockRepos()
		id := uuid.New()
		repos.pickings.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound).Once()

		svc := NewPickingService(repos.pickings, repos.scope(), zap.NewNop())
		_, err := svc.ForceAssign(ctx, id)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}

func TestPickingService_Unreserve(t *testing.T) {
	ctx := context.Background()

	t.Run("unreserves the picking and its moves", func(t *testing.T) {
		repos := newMockRepos()
		picking := testPicking(inventory.PickingStateAssigned)
		assigned := testMove(inventory.MoveStateAssigned, &picking.ID)
		cancelled := testMove(inventory.MoveStateCancel, &picking.ID)
		repos.pickings.On("FindByID", mock.Anything, picking.ID).Return(picking, nil).Once()
		repos.moves.On("FindByPicking", mock.Anything, picking.ID).
			Return([]*inventory.StockMove{assigned, cancelled}, nil).Once()
		repos.moves.On("Save", mock.Anything, assigned).Return(nil).Once()
		repos.moves.On("DeletePackOperations", mock.Anything, assigned.ID).Return(int64(2), nil).Once()
		repos.pickings.On("Save", mock.Anything, picking).Return(nil).Once()
		repos.messages.On("Save", mock.Anything, messageWithBody(picking.ID, "Picking <b>unreserved</b>.")).
			Return(nil).Once()

		svc := NewPickingService(repos.pickings, repos.scope(), zap.NewNop())
		resp, err := svc.Unreserve(ctx, picking.ID)
		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.State)
		assert.Equal(t, inventory.MoveStateConfirmed, assigned.State)
		assert.True(t, assigned.ReservedQty.IsZero())
		repos.moves.AssertNotCalled(t, "DeletePackOperations", mock.Anything, cancelled.ID)
		repos.assertExpectations(t)
	})

	t.Run("fails on a done move", func(t *testing.T) {
		repos := newMockRepos()
		picking := testPicking(inventory.PickingStatePartiallyAvailable)
		done := testMove(inventory.MoveStateDone, &picking.ID)
		repos.pickings.On("FindByID", mock.Anything, picking.ID).Return(picking, nil).Once()
		repos.moves.On("FindByPicking", mock.Anything, picking.ID).Return([]*inventory.StockMove{done}, nil).Once()

		svc := NewPickingService(repos.pickings, repos.scope(), zap.NewNop())
		_, err := svc.Unreserve(ctx, picking.ID)
		assert.True(t, errors.Is(err, shared.ErrInvalidState))
		repos.moves.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		repos.pickings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestPickingService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the tracked changes", func(t *testing.T) {
		repos := newMockRepos()
		picking := testPicking(inventory.PickingStateConfirmed)
		moveType := "one"
		repos.pickings.On("FindByID", mock.Anything, picking.ID).Return(picking, nil).Once()
		repos.pickings.On("Save", mock.Anything, picking).Return(nil).Once()
		repos.messages.On("Save", mock.Anything, messageWithBody(picking.ID, "move_type: direct &#8594; one")).
			Return(nil).Once()

		svc := NewPickingService(repos.pickings, repos.scope(), zap.NewNop())
		resp, err := svc.Update(ctx, picking.ID, UpdatePickingRequest{MoveType: &moveType})
		require.NoError(t, err)
		assert.Equal(t, "one", resp.MoveType)
		repos.assertExpectations(t)
	})

	t.Run("posts nothing when nothing changed", func(t *testing.T) {
		repos := newMockRepos()
		picking := testPicking(inventory.PickingStateConfirmed)
		same := string(picking.MoveType)
		repos.pickings.On("FindByID", mock.Anything, picking.ID).Return(picking, nil).Once()
		repos.pickings.On("Save", mock.Anything, picking).Return(nil).Once()

		svc := NewPickingService(repos.pickings, repos.scope(), zap.NewNop())
		_, err := svc.Update(ctx, picking.ID, UpdatePickingRequest{MoveType: &same})
		require.NoError(t, err)
		repos.messages.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestPickingService_List(t *testing.T) {
	repos := newMockRepos()
	pickings := []inventory.Picking{*testPicking(inventory.PickingStateDraft), *testPicking(inventory.PickingStateDone)}
	filter := shared.DefaultFilter()
	repos.pickings.On("FindAll", mock.Anything, filter).Return(pickings, int64(2), nil).Once()

	svc := NewPickingService(repos.pickings, repos.scope(), zap.NewNop())
	resp, total, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, resp, 2)
	assert.Equal(t, pickings[0].ID, resp[0].ID)
}
