package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/supply-dashboard/supply-dashboard-backend/src/models"
	"github.com/supply-dashboard/supply-dashboard-backend/src/services"
	"gorm.io/gorm"
)

// AdminUsername is the account created by Seed. Its password comes from the
// caller so no credential is baked into the binary.
const AdminUsername = "admin"

// Seed creates the admin user and, when the catalogue is still empty, a small
// demo data set. Running it twice changes nothing.
func Seed(ctx context.Context, db *gorm.DB, adminPassword string) error {
	if err := seedAdmin(ctx, db, adminPassword); err != nil {
		return err
	}

	var itemCount int64
	if err := db.WithContext(ctx).Model(&models.ItemModel{}).Count(&itemCount).Error; err != nil {
		return fmt.Errorf("failed to count items: %w", err)
	}
	if itemCount > 0 {
		slog.Info("Demo data already present, skipping", "items", itemCount)
		return nil
	}
	return seedDemoData(ctx, db)
}

func seedAdmin(ctx context.Context, db *gorm.DB, password string) error {
	userService := services.NewUserService(db)

	_, err := userService.GetUserByUsername(ctx, AdminUsername)
	if err == nil {
		slog.Info("User already exists", "username", AdminUsername)
		return nil
	}
	if !errors.Is(err, services.ErrNotFound) {
		return fmt.Errorf("failed to look up user %q: %w", AdminUsername, err)
	}

	if _, err := userService.CreateUser(ctx, &models.UserModel{
		Username: AdminUsername,
		Password: password,
		Role:     "admin",
	}); err != nil {
		return fmt.Errorf("failed to create user %q: %w", AdminUsername, err)
	}
	slog.Info("User created", "username", AdminUsername)
	return nil
}

func seedDemoData(ctx context.Context, db *gorm.DB) error {
	itemService := services.NewItemService(db)
	warehouseService := services.NewWarehouseService(db)
	inventoryService := services.NewInventoryService(db)
	orderService := services.NewOrderService(db)
	shipmentService := services.NewShipmentService(db)
	supplierService := services.NewSupplierService(db)

	var items []*models.ItemModel
	for _, it := range []struct {
		sku, name, price string
	}{
		{"WID-001", "Widget", "2.50"},
		{"GAD-001", "Gadget", "12.00"},
		{"BOL-010", "Bolt M10", "0.15"},
	} {
		item, err := itemService.CreateItem(ctx, &models.ItemModel{
			SKU:       it.sku,
			Name:      it.name,
			UnitPrice: decimal.RequireFromString(it.price),
		})
		if err != nil {
			return fmt.Errorf("failed to create item %s: %w", it.sku, err)
		}
		items = append(items, item)
	}

	var warehouses []*models.WarehouseModel
	for _, name := range []string{"Central", "North"} {
		location := name + " District"
		capacity := 10000
		warehouse, err := warehouseService.CreateWarehouse(ctx, &models.WarehouseModel{
			Name:     name,
			Location: &location,
			Capacity: &capacity,
		})
		if err != nil {
			return fmt.Errorf("failed to create warehouse %s: %w", name, err)
		}
		warehouses = append(warehouses, warehouse)
	}

	for i, item := range items {
		for j, warehouse := range warehouses {
			if _, err := inventoryService.CreateInventory(ctx, &models.InventoryModel{
				ItemID:      &item.ID,
				WarehouseID: &warehouse.ID,
				Quantity:    100 * (i + 1) / (j + 1),
			}); err != nil {
				return fmt.Errorf("failed to create inventory for item %d: %w", item.ID, err)
			}
		}
	}

	statuses := []string{models.OrderStatusProcessing, models.OrderStatusShipped, models.OrderStatusDelivered}
	var orders []*models.OrderModel
	for i, status := range statuses {
		order, err := orderService.CreateOrder(ctx, &models.OrderModel{
			Status:   status,
			ItemID:   &items[i%len(items)].ID,
			Quantity: 10 * (i + 1),
		})
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		orders = append(orders, order)
	}

	today := time.Now().UTC()
	for _, order := range orders[1:] {
		shipped := dateOf(today.AddDate(0, 0, -2))
		eta := dateOf(today.AddDate(0, 0, 3))
		status := models.ShipmentStatusInTransit
		if order.Status == models.OrderStatusDelivered {
			status = models.ShipmentStatusDelivered
		}
		if _, err := shipmentService.CreateShipment(ctx, &models.ShipmentModel{
			OrderID:               &order.ID,
			OriginLocation:        *warehouses[0].Location,
			DestinationLocation:   "Customer Site",
			ShipmentDate:          &shipped,
			EstimatedDeliveryDate: &eta,
			Status:                status,
		}); err != nil {
			return fmt.Errorf("failed to create shipment for order %d: %w", order.ID, err)
		}
	}

	rate := 0.97
	contact := "Dana Reyes"
	if _, err := supplierService.CreateSupplier(ctx, &models.SupplierModel{
		Name:        "Acme Components",
		ContactName: &contact,
		OnTimeRate:  &rate,
	}); err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}

	slog.Info("Demo data created",
		"items", len(items), "warehouses", len(warehouses), "orders", len(orders))
	return nil
}

func dateOf(t time.Time) models.Date {
	return models.NewDate(t.Year(), t.Month(), t.Day())
}
