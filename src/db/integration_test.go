//go:build integration

package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supply-dashboard/supply-dashboard-backend/src/config"
	"github.com/supply-dashboard/supply-dashboard-backend/src/db"
	"github.com/supply-dashboard/supply-dashboard-backend/src/models"
	"github.com/supply-dashboard/supply-dashboard-backend/src/seed"
	"github.com/supply-dashboard/supply-dashboard-backend/src/services"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// setupPostgres starts a disposable PostgreSQL container and returns a migrated
// connection to it.
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("supply_dashboard"),
		postgres.WithUsername("supply"),
		postgres.WithPassword("supply"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	gormDB, err := db.Connect(config.DatabaseConfig{
		DSN:             dsn,
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gormDB) })

	require.NoError(t, db.Migrate(gormDB))
	return gormDB
}

func TestPostgres_MigrateIsRepeatable(t *testing.T) {
	gormDB := setupPostgres(t)
	assert.NoError(t, db.Migrate(gormDB))
}

func TestPostgres_SeedAndRead(t *testing.T) {
	gormDB := setupPostgres(t)
	ctx := context.Background()

	require.NoError(t, seed.Seed(ctx, gormDB, "changeme"))

	inventories, err := services.NewInventoryService(gormDB).GetAllInventories(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, inventories)
	assert.NotNil(t, inventories[0].Item)
	assert.NotNil(t, inventories[0].Warehouse)

	shipped, err := services.NewOrderService(gormDB).GetOrdersByStatus(ctx, models.OrderStatusShipped)
	require.NoError(t, err)
	assert.Len(t, shipped, 1)
}

func TestPostgres_DuplicateUsername(t *testing.T) {
	gormDB := setupPostgres(t)
	users := services.NewUserService(gormDB)
	ctx := context.Background()

	_, err := users.CreateUser(ctx, &models.UserModel{Username: "ana", Password: "pw"})
	require.NoError(t, err)

	_, err = users.CreateUser(ctx, &models.UserModel{Username: "ana", Password: "pw2"})
	assert.True(t, errors.Is(err, services.ErrUsernameTaken), "got %v", err)
}

func TestPostgres_ShipmentDatesRoundTrip(t *testing.T) {
	gormDB := setupPostgres(t)
	ctx := context.Background()

	shipped := models.NewDate(2024, time.March, 1)
	created, err := services.NewShipmentService(gormDB).CreateShipment(ctx, &models.ShipmentModel{
		ShipmentDate: &shipped,
		Status:       models.ShipmentStatusPending,
	})
	require.NoError(t, err)

	loaded, err := services.NewShipmentService(gormDB).GetShipmentByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.ShipmentDate)
	assert.Equal(t, "2024-03-01", loaded.ShipmentDate.String())
}
