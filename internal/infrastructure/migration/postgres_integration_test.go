package migration

import (
	"context"
	"database/sql"
	"testing"

	"github.com/erp/usability/internal/testutil/pgtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func migrateWithMigrator(t *testing.T, dsn string) uint {
	sqlDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)

	m, err := New(sqlDB, pgtest.MigrationsPath(), zap.NewNop())
	require.NoError(t, err)
	defer func() { _ = m.Close() }()

	require.NoError(t, m.Up())
	require.NoError(t, m.Up())
	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.False(t, dirty)
	return version
}

func TestProductUsabilityUpgrade_Postgres(t *testing.T) {
	pg := pgtest.New(t)
	db := pg.Gorm
	ctx := context.Background()

	assert.NotZero(t, migrateWithMigrator(t, pg.DSN))

	exists, err := TableExists(ctx, db, "tax_definition_product_rel")
	require.NoError(t, err)
	assert.True(t, exists)

	installed, err := InstalledVersion(ctx, db, ProductUsabilityModule)
	require.NoError(t, err)
	assert.Equal(t, "", installed)

	f := seedProducts(t, db)
	setInstalledVersion(t, db, ProductUsabilityModule, "12.0.1.0.0")

	u, err := NewDefaultUpgrader(db, zap.NewNop())
	require.NoError(t, err)

	t.Run("pre stage removes only orphan rows", func(t *testing.T) {
		result, err := u.Upgrade(ctx, ProductUsabilityModule, StagePre)
		require.NoError(t, err)
		require.Len(t, result.Steps, 1)
		assert.Equal(t, int64(4), result.Steps[0].Rows)

		counts := linkedProducts(t, db)
		assert.NotContains(t, counts, f.orphanID)
		assert.NotContains(t, counts, f.anotherOrphan)
		assert.Equal(t, 2, counts[f.templateID])
		assert.Equal(t, 2, counts[f.variantTmplID])

		installed, err := InstalledVersion(ctx, db, ProductUsabilityModule)
		require.NoError(t, err)
		assert.Equal(t, "12.0.1.0.0", installed)
	})

	t.Run("post stage records the new version", func(t *testing.T) {
		result, err := u.Upgrade(ctx, ProductUsabilityModule, StagePost)
		require.NoError(t, err)
		assert.Equal(t, "13.0.1.0.0", result.RecordedVersion)

		installed, err := InstalledVersion(ctx, db, ProductUsabilityModule)
		require.NoError(t, err)
		assert.Equal(t, "13.0.1.0.0", installed)

		again, err := u.Upgrade(ctx, ProductUsabilityModule, StagePre)
		require.NoError(t, err)
		assert.True(t, again.Skipped)
	})

	t.Run("running the cleanup again changes nothing", func(t *testing.T) {
		before := linkedProducts(t, db)
		deleted, err := PurgeOrphanTaxProductLinks(ctx, db, "12.0.1.0.0")
		require.NoError(t, err)
		assert.Zero(t, deleted)
		assert.Equal(t, before, linkedProducts(t, db))
	})

	t.Run("missing association table is a no-op", func(t *testing.T) {
		require.NoError(t, db.Exec("DROP TABLE tax_definition_product_rel").Error)

		exists, err := TableExists(ctx, db, "tax_definition_product_rel")
		require.NoError(t, err)
		assert.False(t, exists)

		deleted, err := PurgeOrphanTaxProductLinks(ctx, db, "12.0.1.0.0")
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})
}
