package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supply-dashboard/supply-dashboard-backend/src/models"
)

func TestShipmentService_CRUD(t *testing.T) {
	gormDB := setupTestDB(t)
	svc := NewShipmentService(gormDB)
	ctx := context.Background()
	item := createTestItem(t, gormDB, "Widget")
	order, err := NewOrderService(gormDB).CreateOrder(ctx, &models.OrderModel{Status: "Shipped", ItemID: &item.ID, Quantity: 1})
	require.NoError(t, err)

	shipDate := models.NewDate(2025, time.March, 1)
	eta := models.NewDate(2025, time.March, 9)
	created, err := svc.CreateShipment(ctx, &models.ShipmentModel{
		OrderID:               &order.ID,
		OriginLocation:        "Shenzhen",
		DestinationLocation:   "Rotterdam",
		ShipmentDate:          &shipDate,
		EstimatedDeliveryDate: &eta,
		Status:                models.ShipmentStatusInTransit,
	})
	require.NoError(t, err)

	fetched, err := svc.GetShipmentByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shenzhen", fetched.OriginLocation)
	assert.Equal(t, "2025-03-01", fetched.ShipmentDate.String())
	assert.Equal(t, "2025-03-09", fetched.EstimatedDeliveryDate.String())
	require.NotNil(t, fetched.OrderID)
	assert.Equal(t, order.ID, *fetched.OrderID)
	assert.Nil(t, fetched.Order, "the order is never loaded")

	_, err = svc.UpdateShipment(ctx, created.ID, &models.ShipmentModel{Status: models.ShipmentStatusDelayed})
	require.NoError(t, err)
	fetched, err = svc.GetShipmentByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Delayed", fetched.Status)
	assert.Nil(t, fetched.ShipmentDate)
	assert.Nil(t, fetched.OrderID)

	require.NoError(t, svc.DeleteShipment(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteShipment(ctx, created.ID), ErrNotFound)
}

func TestShipmentService_GetShipmentsByStatus(t *testing.T) {
	svc := NewShipmentService(setupTestDB(t))
	ctx := context.Background()

	for _, status := range []string{"In Transit", "Delivered", "In Transit", "Pending"} {
		_, err := svc.CreateShipment(ctx, &models.ShipmentModel{Status: status})
		require.NoError(t, err)
	}

	inTransit, err := svc.GetShipmentsByStatus(ctx, "In Transit")
	require.NoError(t, err)
	assert.Len(t, inTransit, 2)

	lower, err := svc.GetShipmentsByStatus(ctx, "in transit")
	require.NoError(t, err)
	assert.Empty(t, lower)

	all, err := svc.GetAllShipments(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
