package persistence

import (
	"context"
	"testing"

	"github.com/erp/usability/internal/domain/inventory"
	"github.com/erp/usability/internal/testutil/pgtest"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGormOrderpointRepository_DuplicateKey_Postgres(t *testing.T) {
	db := pgtest.NewMigrated(t).Gorm
	ctx := context.Background()

	location := createLocation(t, db, "WH/Stock", inventory.UsageInternal, nil)
	company, warehouse, product := uuid.New(), uuid.New(), uuid.New()
	newRule := func(t *testing.T) *inventory.Orderpoint {
		op, err := inventory.NewOrderpoint(company, warehouse, location.ID, product, decimal.NewFromInt(1), decimal.NewFromInt(10))
		require.NoError(t, err)
		return op
	}

	repo := NewGormOrderpointRepository(db)
	require.NoError(t, repo.Save(ctx, newRule(t)))

	t.Run("raw driver errors", func(t *testing.T) {
		assert.ErrorIs(t, repo.Save(ctx, newRule(t)), inventory.ErrDuplicateOrderpoint)
	})

	t.Run("translated errors", func(t *testing.T) {
		translating := db.Session(&gorm.Session{})
		translating.Config.TranslateError = true
		assert.ErrorIs(t, NewGormOrderpointRepository(translating).Save(ctx, newRule(t)), inventory.ErrDuplicateOrderpoint)
	})

	exists, err := repo.ExistsByKey(ctx, company, warehouse, location.ID, product)
	require.NoError(t, err)
	assert.True(t, exists)
}
