package inventory

import (
	"errors"
	"testing"

	"github.com/erp/usability/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLine(state InventoryState) *InventoryLine {
	return &InventoryLine{
		BaseEntity:  shared.NewBaseEntity(),
		InventoryID: uuid.New(),
		ProductID:   uuid.New(),
		ProductQty:  decimal.NewFromInt(10),
		LocationID:  uuid.New(),
		State:       state,
	}
}

func TestInventoryLine_Apply(t *testing.T) {
	t.Run("draft line accepts changes", func(t *testing.T) {
		line := newTestLine(InventoryStateConfirm)
		qty := decimal.NewFromInt(12)
		pkg := uuid.New()

		err := line.Apply(InventoryLinePatch{ProductQty: &qty, PackageID: &pkg})

		require.NoError(t, err)
		assert.True(t, qty.Equal(line.ProductQty))
		assert.Equal(t, pkg, *line.PackageID)
	})

	t.Run("nil uuid clears optional references", func(t *testing.T) {
		line := newTestLine(InventoryStateConfirm)
		lot := uuid.New()
		line.ProdLotID = &lot
		none := uuid.Nil

		require.NoError(t, line.Apply(InventoryLinePatch{ProdLotID: &none}))
		assert.Nil(t, line.ProdLotID)
	})

	t.Run("done line rejects guarded fields", func(t *testing.T) {
		line := newTestLine(InventoryStateDone)
		qty := decimal.NewFromInt(1)

		err := line.Apply(InventoryLinePatch{ProductQty: &qty})

		assert.True(t, errors.Is(err, shared.ErrReadonlyField))
		assert.Contains(t, err.Error(), "product_qty")
		assert.True(t, decimal.NewFromInt(10).Equal(line.ProductQty))
	})

	t.Run("done line accepts an empty patch", func(t *testing.T) {
		line := newTestLine(InventoryStateDone)
		assert.NoError(t, line.Apply(InventoryLinePatch{}))
	})

	t.Run("inventory location is always read-only", func(t *testing.T) {
		line := newTestLine(InventoryStateDraft)
		loc := uuid.New()
		err := line.Apply(InventoryLinePatch{InventoryLocationID: &loc})
		assert.True(t, errors.Is(err, shared.ErrReadonlyField))
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		line := newTestLine(InventoryStateDraft)
		qty := decimal.NewFromInt(-1)
		err := line.Apply(InventoryLinePatch{ProductQty: &qty})
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})
}
