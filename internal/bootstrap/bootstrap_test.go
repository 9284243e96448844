package bootstrap

import (
	"context"
	"testing"
	"time"

	inventoryapp "github.com/erp/usability/internal/application/inventory"
	"github.com/erp/usability/internal/infrastructure/config"
	"github.com/erp/usability/internal/infrastructure/persistence/models"
	"github.com/erp/usability/internal/infrastructure/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func testConfig(autoUnpack bool) *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "development"},
		Scheduler: config.SchedulerConfig{
			JobTimeout: time.Minute,
			LockTTL:    2 * time.Minute,
			AutoUnpack: config.AutoUnpackConfig{Enabled: autoUnpack, Interval: time.Hour},
		},
	}
}

func TestNewServices(t *testing.T) {
	services := NewServices(testDB(t), zap.NewNop())

	assert.NotNil(t, services.Pickings)
	assert.NotNil(t, services.Moves)
	assert.NotNil(t, services.Locations)
	assert.NotNil(t, services.References)
	assert.NotNil(t, services.Orderpoints)
	assert.NotNil(t, services.Inventories)
	assert.Equal(t, inventoryapp.AutoUnpackJobName, services.AutoUnpack.Name())
}

func TestRegisterJobs(t *testing.T) {
	services := NewServices(testDB(t), zap.NewNop())

	t.Run("skips a disabled job", func(t *testing.T) {
		cfg := testConfig(false)
		s, _, err := NewScheduler(cfg, zap.NewNop(), nil)
		require.NoError(t, err)

		require.NoError(t, RegisterJobs(s, cfg, services, false))
		assert.Empty(t, s.Status())
	})

	t.Run("registers an enabled job", func(t *testing.T) {
		cfg := testConfig(true)
		s, _, err := NewScheduler(cfg, zap.NewNop(), nil)
		require.NoError(t, err)

		require.NoError(t, RegisterJobs(s, cfg, services, false))
		states := s.Status()
		require.Len(t, states, 1)
		assert.Equal(t, inventoryapp.AutoUnpackJobName, states[0].Name)
		assert.Equal(t, time.Hour, states[0].Interval)
		assert.True(t, states[0].Scheduled)
	})

	t.Run("registers a disabled job for on-demand runs", func(t *testing.T) {
		cfg := testConfig(false)
		s, _, err := NewScheduler(cfg, zap.NewNop(), nil)
		require.NoError(t, err)

		require.NoError(t, RegisterJobs(s, cfg, services, true))
		require.Len(t, s.Status(), 1)
		assert.False(t, s.Status()[0].Scheduled)

		runID, err := s.RunNow(context.Background(), inventoryapp.AutoUnpackJobName)
		require.NoError(t, err)
		assert.NotEmpty(t, runID)
		assert.Equal(t, scheduler.JobStatusSuccess, s.Status()[0].Status)
	})
}

func TestRegisterJobs_DisabledJobDoesNotTickWhenSchedulerRuns(t *testing.T) {
	services := NewServices(testDB(t), zap.NewNop())
	cfg := testConfig(false)
	cfg.Scheduler.Enabled = true
	cfg.Scheduler.AutoUnpack.Interval = 50 * time.Millisecond

	s, closeLocker, err := NewScheduler(cfg, zap.NewNop(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, closeLocker()) })

	require.NoError(t, RegisterJobs(s, cfg, services, true))
	require.NoError(t, s.Start(context.Background()))
	time.Sleep(300 * time.Millisecond)
	require.NoError(t, s.Stop(context.Background()))

	states := s.Status()
	require.Len(t, states, 1)
	assert.False(t, states[0].Scheduled)
	assert.Zero(t, states[0].Runs)
	assert.Nil(t, states[0].LastStartedAt)

	_, err = s.RunNow(context.Background(), inventoryapp.AutoUnpackJobName)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Status()[0].Runs)
}

func TestRegisterJobs_EnabledJobTicks(t *testing.T) {
	services := NewServices(testDB(t), zap.NewNop())
	cfg := testConfig(true)
	cfg.Scheduler.AutoUnpack.Interval = 20 * time.Millisecond

	s, _, err := NewScheduler(cfg, zap.NewNop(), nil)
	require.NoError(t, err)
	require.NoError(t, RegisterJobs(s, cfg, services, true))
	require.NoError(t, s.Start(context.Background()))
	t.Cleanup(func() { _ = s.Stop(context.Background()) })

	assert.Eventually(t, func() bool {
		return s.Status()[0].Runs > 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestNewScheduler_CloserWithInMemoryLocks(t *testing.T) {
	_, closeLocker, err := NewScheduler(testConfig(false), zap.NewNop(), nil)
	require.NoError(t, err)
	require.NotNil(t, closeLocker)
	assert.NoError(t, closeLocker())
}
