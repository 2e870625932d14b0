package services

import (
	"context"
	"testing"

	"github.com/supply-dashboard/supply-dashboard-backend/src/db"
	"github.com/supply-dashboard/supply-dashboard-backend/src/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database with every table migrated.
// A single connection keeps the in-memory database alive and shared.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), db.NewGormConfig())
	if err != nil {
		t.Fatalf("Failed to connect to SQLite test database: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(gormDB); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return gormDB
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func createTestItem(t *testing.T, gormDB *gorm.DB, name string) *models.ItemModel {
	t.Helper()
	item, err := NewItemService(gormDB).CreateItem(context.Background(), &models.ItemModel{Name: name, SKU: "SKU-" + name})
	if err != nil {
		t.Fatalf("Failed to create item %s: %v", name, err)
	}
	return item
}

func createTestWarehouse(t *testing.T, gormDB *gorm.DB, name string) *models.WarehouseModel {
	t.Helper()
	warehouse, err := NewWarehouseService(gormDB).CreateWarehouse(context.Background(), &models.WarehouseModel{Name: name})
	if err != nil {
		t.Fatalf("Failed to create warehouse %s: %v", name, err)
	}
	return warehouse
}
