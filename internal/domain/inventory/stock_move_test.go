package inventory

import (
	"errors"
	"testing"
	"time"

	"github.com/erp/usability/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoveDisplayName(t *testing.T) {
	expected := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		refs MoveNameRefs
		want string
	}{
		{
			name: "locations only",
			refs: MoveNameRefs{LocationName: "WH/Stock", LocationDestName: "Customers"},
			want: "WH/Stock > Customers",
		},
		{
			name: "with product code",
			refs: MoveNameRefs{LocationName: "WH/Stock", LocationDestName: "Customers", ProductCode: "SCR-M4"},
			want: "SCR-M4: WH/Stock > Customers",
		},
		{
			name: "all parts",
			refs: MoveNameRefs{
				LocationName:     "WH/Stock",
				LocationDestName: "Customers",
				ProductCode:      "SCR-M4",
				PickingOrigin:    "SO042",
				PartnerName:      "Agrolait",
				DateExpected:     &expected,
			},
			want: "Agrolait SO042 SCR-M4: WH/Stock > Customers 2024-03-05 14:30:00",
		},
		{
			name: "partner without origin",
			refs: MoveNameRefs{LocationName: "A", LocationDestName: "B", PartnerName: "Agrolait"},
			want: "Agrolait A > B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MoveDisplayName(tt.refs))
		})
	}
}

func TestStockMove_Unreserve(t *testing.T) {
	t.Run("assigned move returns to confirmed", func(t *testing.T) {
		m := &StockMove{BaseEntity: shared.NewBaseEntity(), State: MoveStateAssigned, ReservedQty: decimal.NewFromInt(4)}
		assert.NoError(t, m.Unreserve())
		assert.Equal(t, MoveStateConfirmed, m.State)
		assert.True(t, m.ReservedQty.IsZero())
	})

	t.Run("done move cannot be unreserved", func(t *testing.T) {
		m := &StockMove{BaseEntity: shared.NewBaseEntity(), State: MoveStateDone, ReservedQty: decimal.NewFromInt(4)}
		assert.True(t, errors.Is(m.Unreserve(), shared.ErrInvalidState))
		assert.Equal(t, decimal.NewFromInt(4), m.ReservedQty)
	})
}

func TestStockMove_ForceAssign(t *testing.T) {
	tests := []struct {
		state   MoveState
		changed bool
		want    MoveState
	}{
		{MoveStateConfirmed, true, MoveStateAssigned},
		{MoveStateWaiting, true, MoveStateAssigned},
		{MoveStatePartiallyAvailable, true, MoveStateAssigned},
		{MoveStateDraft, false, MoveStateDraft},
		{MoveStateAssigned, false, MoveStateAssigned},
		{MoveStateDone, false, MoveStateDone},
		{MoveStateCancel, false, MoveStateCancel},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			m := &StockMove{BaseEntity: shared.NewBaseEntity(), State: tt.state}
			assert.Equal(t, tt.changed, m.ForceAssign())
			assert.Equal(t, tt.want, m.State)
		})
	}
}

func TestMoveUnreservedMessage(t *testing.T) {
	productID := uuid.MustParse("6f1c3c0e-2b7a-4c35-9d3e-8f6f4b0b1a11")
	msg := MoveUnreservedMessage(productID, "[SCR-M4] Screw M4", decimal.RequireFromString("2.5"), "Units")

	assert.Equal(t,
		"Product <a href=# data-oe-model=product.product data-oe-id=6f1c3c0e-2b7a-4c35-9d3e-8f6f4b0b1a11>[SCR-M4] Screw M4</a> qty 2.5 Units <b>unreserved</b>",
		msg)
}

func TestIncoterm_DisplayName(t *testing.T) {
	i := &Incoterm{Code: "EXW", Name: "Ex Works"}
	assert.Equal(t, "[EXW] Ex Works", i.DisplayName())
}
