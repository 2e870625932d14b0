package services

import (
	"context"

	"github.com/supply-dashboard/supply-dashboard-backend/src/models"
	"gorm.io/gorm"
)

type OrderService struct {
	orders store[models.OrderModel]
}

// NewOrderService creates a new instance of OrderService. Reads load the ordered item.
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{orders: newStore[models.OrderModel](db, "order", "Item")}
}

// GetAllOrders retrieves all Order records from the database
func (s *OrderService) GetAllOrders(ctx context.Context) ([]models.OrderModel, error) {
	return s.orders.findAll(ctx)
}

// GetOrderByID retrieves an Order record by its ID
func (s *OrderService) GetOrderByID(ctx context.Context, id int) (*models.OrderModel, error) {
	return s.orders.findByID(ctx, id)
}

// GetOrdersByStatus retrieves the Order records whose status matches exactly
func (s *OrderService) GetOrdersByStatus(ctx context.Context, status string) ([]models.OrderModel, error) {
	return s.orders.findWhere(ctx, byColumn("status", status))
}

// CreateOrder creates a new Order record and returns it with its item loaded
func (s *OrderService) CreateOrder(ctx context.Context, order *models.OrderModel) (*models.OrderModel, error) {
	order.ID = 0
	order.ResolveReferences()
	if err := s.orders.create(ctx, order); err != nil {
		return nil, err
	}
	return s.orders.findByID(ctx, order.ID)
}

// UpdateOrder replaces the Order record with the given ID
func (s *OrderService) UpdateOrder(ctx context.Context, id int, order *models.OrderModel) (*models.OrderModel, error) {
	order.ID = id
	order.ResolveReferences()
	if err := s.orders.replace(ctx, id, order); err != nil {
		return nil, err
	}
	return s.orders.findByID(ctx, id)
}

// DeleteOrder removes an Order record from the database
func (s *OrderService) DeleteOrder(ctx context.Context, id int) error {
	return s.orders.delete(ctx, id)
}
