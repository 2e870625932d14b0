package services

import (
	"context"

	"github.com/supply-dashboard/supply-dashboard-backend/src/models"
	"gorm.io/gorm"
)

type WarehouseService struct {
	warehouses store[models.WarehouseModel]
}

// NewWarehouseService creates a new instance of WarehouseService
func NewWarehouseService(db *gorm.DB) *WarehouseService {
	return &WarehouseService{warehouses: newStore[models.WarehouseModel](db, "warehouse")}
}

// GetAllWarehouses retrieves all Warehouse records from the database
func (s *WarehouseService) GetAllWarehouses(ctx context.Context) ([]models.WarehouseModel, error) {
	return s.warehouses.findAll(ctx)
}

// GetWarehouseByID retrieves a Warehouse record by its ID
func (s *WarehouseService) GetWarehouseByID(ctx context.Context, id int) (*models.WarehouseModel, error) {
	return s.warehouses.findByID(ctx, id)
}

// CreateWarehouse creates a new Warehouse record in the database
func (s *WarehouseService) CreateWarehouse(ctx context.Context, warehouse *models.WarehouseModel) (*models.WarehouseModel, error) {
	warehouse.ID = 0
	if err := s.warehouses.create(ctx, warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// UpdateWarehouse replaces the Warehouse record with the given ID
func (s *WarehouseService) UpdateWarehouse(ctx context.Context, id int, warehouse *models.WarehouseModel) (*models.WarehouseModel, error) {
	warehouse.ID = id
	if err := s.warehouses.replace(ctx, id, warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// DeleteWarehouse removes a Warehouse record from the database
func (s *WarehouseService) DeleteWarehouse(ctx context.Context, id int) error {
	return s.warehouses.delete(ctx, id)
}
