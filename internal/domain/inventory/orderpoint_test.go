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

func TestNewOrderpoint(t *testing.T) {
	company, wh, loc, product := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	t.Run("valid rule", func(t *testing.T) {
		op, err := NewOrderpoint(company, wh, loc, product, decimal.NewFromInt(5), decimal.NewFromInt(20))
		require.NoError(t, err)
		assert.Equal(t, wh, op.WarehouseID)
	})

	t.Run("min above max", func(t *testing.T) {
		_, err := NewOrderpoint(company, wh, loc, product, decimal.NewFromInt(30), decimal.NewFromInt(20))
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})

	t.Run("missing warehouse", func(t *testing.T) {
		_, err := NewOrderpoint(company, uuid.Nil, loc, product, decimal.Zero, decimal.Zero)
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})
}

func TestDefaultsForLocation(t *testing.T) {
	loc, err := NewLocation("WH/Stock/Shelf 2", UsageInternal, nil)
	require.NoError(t, err)
	wh := uuid.New()

	d := DefaultsForLocation(loc, &wh)
	require.NotNil(t, d.WarehouseID)
	require.NotNil(t, d.LocationID)
	assert.Equal(t, wh, *d.WarehouseID)
	assert.Equal(t, loc.ID, *d.LocationID)

	assert.Equal(t, OrderpointDefaults{}, DefaultsForLocation(loc, nil))
	assert.Equal(t, OrderpointDefaults{}, DefaultsForLocation(nil, &wh))
}

func TestErrDuplicateOrderpoint(t *testing.T) {
	assert.True(t, errors.Is(ErrDuplicateOrderpoint, shared.ErrAlreadyExists))
	assert.Contains(t, ErrDuplicateOrderpoint.Error(), "same stock location and same product")
}
