package services

import (
	"context"

	"github.com/supply-dashboard/supply-dashboard-backend/src/models"
	"gorm.io/gorm"
)

type ShipmentService struct {
	shipments store[models.ShipmentModel]
}

// NewShipmentService creates a new instance of ShipmentService. The order a
// shipment belongs to is never loaded.
func NewShipmentService(db *gorm.DB) *ShipmentService {
	return &ShipmentService{shipments: newStore[models.ShipmentModel](db, "shipment")}
}

func (s *ShipmentService) GetAllShipments(ctx context.Context) ([]models.ShipmentModel, error) {
	return s.shipments.findAll(ctx)
}

func (s *ShipmentService) GetShipmentByID(ctx context.Context, id int) (*models.ShipmentModel, error) {
	return s.shipments.findByID(ctx, id)
}

// GetShipmentsByStatus retrieves the Shipment records whose status matches exactly
func (s *ShipmentService) GetShipmentsByStatus(ctx context.Context, status string) ([]models.ShipmentModel, error) {
	return s.shipments.findWhere(ctx, byColumn("status", status))
}

func (s *ShipmentService) CreateShipment(ctx context.Context, shipment *models.ShipmentModel) (*models.ShipmentModel, error) {
	shipment.ID = 0
	shipment.Order = nil
	if err := s.shipments.create(ctx, shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

func (s *ShipmentService) UpdateShipment(ctx context.Context, id int, shipment *models.ShipmentModel) (*models.ShipmentModel, error) {
	shipment.ID = id
	shipment.Order = nil
	if err := s.shipments.replace(ctx, id, shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

func (s *ShipmentService) DeleteShipment(ctx context.Context, id int) error {
	return s.shipments.delete(ctx, id)
}
