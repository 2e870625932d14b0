package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supply-dashboard/supply-dashboard-backend/src/db"
	"github.com/supply-dashboard/supply-dashboard-backend/src/models"
	"github.com/supply-dashboard/supply-dashboard-backend/src/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), db.NewGormConfig())
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.Migrate(gormDB))
	return gormDB
}

func count(t *testing.T, gormDB *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gormDB.Model(model).Count(&n).Error)
	return n
}

func TestSeed_CreatesDemoData(t *testing.T) {
	gormDB := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, Seed(ctx, gormDB, "s3cret"))

	admin, err := services.NewUserService(gormDB).GetUserByUsername(ctx, AdminUsername)
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Role)
	assert.True(t, services.CheckPassword(admin, "s3cret"))

	assert.EqualValues(t, 3, count(t, gormDB, &models.ItemModel{}))
	assert.EqualValues(t, 2, count(t, gormDB, &models.WarehouseModel{}))
	assert.EqualValues(t, 6, count(t, gormDB, &models.InventoryModel{}))
	assert.EqualValues(t, 3, count(t, gormDB, &models.OrderModel{}))
	assert.EqualValues(t, 2, count(t, gormDB, &models.ShipmentModel{}))
	assert.EqualValues(t, 1, count(t, gormDB, &models.SupplierModel{}))
}

func TestSeed_IsIdempotent(t *testing.T) {
	gormDB := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, Seed(ctx, gormDB, "s3cret"))
	require.NoError(t, Seed(ctx, gormDB, "other"))

	assert.EqualValues(t, 1, count(t, gormDB, &models.UserModel{}))
	assert.EqualValues(t, 3, count(t, gormDB, &models.ItemModel{}))

	admin, err := services.NewUserService(gormDB).GetUserByUsername(ctx, AdminUsername)
	require.NoError(t, err)
	assert.True(t, services.CheckPassword(admin, "s3cret"))
}
