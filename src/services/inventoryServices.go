package services

import (
	"context"

	"github.com/supply-dashboard/supply-dashboard-backend/src/models"
	"gorm.io/gorm"
)

type InventoryService struct {
	inventories store[models.InventoryModel]
}

// NewInventoryService creates a new instance of InventoryService. Reads load
// the referenced item and warehouse.
func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{inventories: newStore[models.InventoryModel](db, "inventory", "Item", "Warehouse")}
}

// GetAllInventories retrieves all Inventory records from the database
func (s *InventoryService) GetAllInventories(ctx context.Context) ([]models.InventoryModel, error) {
	return s.inventories.findAll(ctx)
}

// GetInventoriesByWarehouse retrieves the Inventory records stored in one warehouse
func (s *InventoryService) GetInventoriesByWarehouse(ctx context.Context, warehouseID int) ([]models.InventoryModel, error) {
	return s.inventories.findWhere(ctx, byColumn("warehouse_id", warehouseID))
}

// GetInventoriesByItem retrieves the Inventory records holding one item
func (s *InventoryService) GetInventoriesByItem(ctx context.Context, itemID int) ([]models.InventoryModel, error) {
	return s.inventories.findWhere(ctx, byColumn("item_id", itemID))
}

// GetInventoryByID retrieves an Inventory record by its ID
func (s *InventoryService) GetInventoryByID(ctx context.Context, id int) (*models.InventoryModel, error) {
	return s.inventories.findByID(ctx, id)
}

// CreateInventory creates a new Inventory record and returns it with its references loaded
func (s *InventoryService) CreateInventory(ctx context.Context, inventory *models.InventoryModel) (*models.InventoryModel, error) {
	inventory.ID = 0
	inventory.ResolveReferences()
	if err := s.inventories.create(ctx, inventory); err != nil {
		return nil, err
	}
	return s.inventories.findByID(ctx, inventory.ID)
}

// UpdateInventory replaces the Inventory record with the given ID
func (s *InventoryService) UpdateInventory(ctx context.Context, id int, inventory *models.InventoryModel) (*models.InventoryModel, error) {
	inventory.ID = id
	inventory.ResolveReferences()
	if err := s.inventories.replace(ctx, id, inventory); err != nil {
		return nil, err
	}
	return s.inventories.findByID(ctx, id)
}

// DeleteInventory removes an Inventory record from the database
func (s *InventoryService) DeleteInventory(ctx context.Context, id int) error {
	return s.inventories.delete(ctx, id)
}
