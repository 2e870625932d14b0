package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supply-dashboard/supply-dashboard-backend/src/models"
)

func TestSupplierService_CRUD(t *testing.T) {
	svc := NewSupplierService(setupTestDB(t))
	ctx := context.Background()
	rate := 92.5

	created, err := svc.CreateSupplier(ctx, &models.SupplierModel{
		Name:        "Supplier A",
		ContactName: strPtr("Ana"),
		Email:       strPtr("ana@supplier-a.test"),
		OnTimeRate:  &rate,
	})
	require.NoError(t, err)

	fetched, err := svc.GetSupplierByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *fetched)

	updated, err := svc.UpdateSupplier(ctx, created.ID, &models.SupplierModel{ID: -1, Name: "Supplier A2"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	fetched, err = svc.GetSupplierByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Supplier A2", fetched.Name)
	assert.Nil(t, fetched.OnTimeRate)

	list, err := svc.GetAllSuppliers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteSupplier(ctx, created.ID))
	_, err = svc.GetSupplierByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
