package services

import (
	"context"

	"github.com/supply-dashboard/supply-dashboard-backend/src/models"
	"gorm.io/gorm"
)

type SupplierService struct {
	suppliers store[models.SupplierModel]
}

func NewSupplierService(db *gorm.DB) *SupplierService {
	return &SupplierService{suppliers: newStore[models.SupplierModel](db, "supplier")}
}

func (s *SupplierService) GetAllSuppliers(ctx context.Context) ([]models.SupplierModel, error) {
	return s.suppliers.findAll(ctx)
}

func (s *SupplierService) GetSupplierByID(ctx context.Context, id int) (*models.SupplierModel, error) {
	return s.suppliers.findByID(ctx, id)
}

func (s *SupplierService) CreateSupplier(ctx context.Context, supplier *models.SupplierModel) (*models.SupplierModel, error) {
	supplier.ID = 0
	if err := s.suppliers.create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) UpdateSupplier(ctx context.Context, id int, supplier *models.SupplierModel) (*models.SupplierModel, error) {
	supplier.ID = id
	if err := s.suppliers.replace(ctx, id, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) DeleteSupplier(ctx context.Context, id int) error {
	return s.suppliers.delete(ctx, id)
}
