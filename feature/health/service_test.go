package health_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"attendance-manager/core/database"
	"attendance-manager/core/ledger"
	"attendance-manager/core/masterdata"
	"attendance-manager/core/storage/mocks"
	"attendance-manager/core/syncer"
	"attendance-manager/feature/health"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckDatabase(t *testing.T) {
	t.Run("Not Configured", func(t *testing.T) {
		svc := health.NewService(nil, nil, "attendance", syncer.NewRegistry(), zap.NewNop())
		report, err := svc.CheckDatabase(context.Background())
		require.NoError(t, err)
		assert.False(t, report.Configured)
		assert.Empty(t, report.MissingTables)
	})

	t.Run("Missing Tables", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
		require.NoError(t, err)
		require.NoError(t, db.AutoMigrate(&masterdata.Employee{}, &masterdata.Shift{}))

		svc := health.NewService(db, nil, "attendance", syncer.NewRegistry(), zap.NewNop())
		report, err := svc.CheckDatabase(context.Background())
		require.NoError(t, err)
		assert.True(t, report.Configured)
		assert.Equal(t, []string{"attendance_records"}, report.MissingTables)
	})

	t.Run("All Tables Present", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
		require.NoError(t, err)
		require.NoError(t, db.AutoMigrate(&masterdata.Employee{}, &masterdata.Shift{}))
		require.NoError(t, ledger.NewGormStore(db).Migrate())

		svc := health.NewService(db, nil, "attendance", syncer.NewRegistry(), zap.NewNop())
		report, err := svc.CheckDatabase(context.Background())
		require.NoError(t, err)
		assert.Empty(t, report.MissingTables)
	})
}

func TestCheckStorage(t *testing.T) {
	t.Run("Not Configured", func(t *testing.T) {
		svc := health.NewService(nil, nil, "attendance", syncer.NewRegistry(), zap.NewNop())
		report, err := svc.CheckStorage(context.Background())
		require.NoError(t, err)
		assert.False(t, report.Configured)
	})

	t.Run("Bucket Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "attendance").Return(true, nil)

		svc := health.NewService(nil, client, "attendance", syncer.NewRegistry(), zap.NewNop())
		report, err := svc.CheckStorage(context.Background())
		require.NoError(t, err)
		assert.True(t, report.Configured)
		assert.True(t, report.BucketExists)
	})

	t.Run("Unreachable", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "attendance").Return(false, errors.New("connection refused"))

		svc := health.NewService(nil, client, "attendance", syncer.NewRegistry(), zap.NewNop())
		_, err := svc.CheckStorage(context.Background())
		assert.Error(t, err)
	})
}

func TestHandleHealthCheck(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "attendance").Return(true, nil)

	app := fiber.New()
	feature := health.NewFeature(nil, client, "attendance", syncer.NewRegistry(), zap.NewNop())
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
