package services

import (
	"context"

	"github.com/supply-dashboard/supply-dashboard-backend/src/models"
	"gorm.io/gorm"
)

type ItemService struct {
	items store[models.ItemModel]
}

// NewItemService creates a new instance of ItemService
func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{items: newStore[models.ItemModel](db, "item")}
}

// GetAllItems retrieves all Item records from the database
func (s *ItemService) GetAllItems(ctx context.Context) ([]models.ItemModel, error) {
	return s.items.findAll(ctx)
}

// GetItemByID retrieves an Item record by its ID
func (s *ItemService) GetItemByID(ctx context.Context, id int) (*models.ItemModel, error) {
	return s.items.findByID(ctx, id)
}

// CreateItem creates a new Item record in the database
func (s *ItemService) CreateItem(ctx context.Context, item *models.ItemModel) (*models.ItemModel, error) {
	item.ID = 0
	if err := s.items.create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem replaces the Item record with the given ID
func (s *ItemService) UpdateItem(ctx context.Context, id int, item *models.ItemModel) (*models.ItemModel, error) {
	item.ID = id
	if err := s.items.replace(ctx, id, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes an Item record from the database
func (s *ItemService) DeleteItem(ctx context.Context, id int) error {
	return s.items.delete(ctx, id)
}
