package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supply-dashboard/supply-dashboard-backend/src/models"
	"github.com/supply-dashboard/supply-dashboard-backend/src/services"
)

type WarehouseController struct {
	service *services.WarehouseService
}

func NewWarehouseController(service *services.WarehouseService) *WarehouseController {
	return &WarehouseController{service: service}
}

// GetAllWarehouses handles GET requests to retrieve all warehouse records
func (c *WarehouseController) GetAllWarehouses(ctx *gin.Context) {
	warehouses, err := c.service.GetAllWarehouses(ctx.Request.Context())
	if err != nil {
		respondError(ctx, "warehouse", err)
		return
	}
	ctx.JSON(http.StatusOK, warehouses)
}

// GetWarehouseByID handles GET requests to retrieve a warehouse record by ID
func (c *WarehouseController) GetWarehouseByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "warehouse")
	if !ok {
		return
	}

	warehouse, err := c.service.GetWarehouseByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, "warehouse", err)
		return
	}
	ctx.JSON(http.StatusOK, warehouse)
}

// CreateWarehouse handles POST requests to create a new warehouse record
func (c *WarehouseController) CreateWarehouse(ctx *gin.Context) {
	var warehouse models.WarehouseModel
	if !bindJSON(ctx, &warehouse) {
		return
	}

	createdWarehouse, err := c.service.CreateWarehouse(ctx.Request.Context(), &warehouse)
	if err != nil {
		respondError(ctx, "warehouse", err)
		return
	}
	ctx.JSON(http.StatusCreated, createdWarehouse)
}

// UpdateWarehouse handles PUT requests to replace an existing warehouse record
func (c *WarehouseController) UpdateWarehouse(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "warehouse")
	if !ok {
		return
	}

	var warehouse models.WarehouseModel
	if !bindJSON(ctx, &warehouse) {
		return
	}

	updatedWarehouse, err := c.service.UpdateWarehouse(ctx.Request.Context(), id, &warehouse)
	if err != nil {
		respondError(ctx, "warehouse", err)
		return
	}
	ctx.JSON(http.StatusOK, updatedWarehouse)
}

// DeleteWarehouse handles DELETE requests to remove a warehouse record
func (c *WarehouseController) DeleteWarehouse(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "warehouse")
	if !ok {
		return
	}

	if err := c.service.DeleteWarehouse(ctx.Request.Context(), id); err != nil {
		respondError(ctx, "warehouse", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
