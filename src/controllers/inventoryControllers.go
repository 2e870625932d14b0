package controllers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supply-dashboard/supply-dashboard-backend/src/models"
	"github.com/supply-dashboard/supply-dashboard-backend/src/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type InventoryController struct {
	service *services.InventoryService
}

func NewInventoryController(service *services.InventoryService) *InventoryController {
	return &InventoryController{service: service}
}

// GetAllInventories handles GET requests to retrieve all inventory records
func (c *InventoryController) GetAllInventories(ctx *gin.Context) {
	inventories, err := c.service.GetAllInventories(ctx.Request.Context())
	if err != nil {
		respondError(ctx, "inventory", err)
		return
	}
	ctx.JSON(http.StatusOK, inventories)
}

// GetInventoriesByWarehouse handles GET requests for the stock held in one warehouse
func (c *InventoryController) GetInventoriesByWarehouse(ctx *gin.Context) {
	warehouseID, ok := parseID(ctx, "warehouseId", "warehouse")
	if !ok {
		return
	}

	inventories, err := c.service.GetInventoriesByWarehouse(ctx.Request.Context(), warehouseID)
	if err != nil {
		respondError(ctx, "inventory", err)
		return
	}
	ctx.JSON(http.StatusOK, inventories)
}

// GetInventoriesByItem handles GET requests for the stock of one item across warehouses
func (c *InventoryController) GetInventoriesByItem(ctx *gin.Context) {
	itemID, ok := parseID(ctx, "itemId", "item")
	if !ok {
		return
	}

	inventories, err := c.service.GetInventoriesByItem(ctx.Request.Context(), itemID)
	if err != nil {
		respondError(ctx, "inventory", err)
		return
	}
	ctx.JSON(http.StatusOK, inventories)
}

// GetInventoryByID handles GET requests to retrieve an inventory record by ID
func (c *InventoryController) GetInventoryByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "inventory")
	if !ok {
		return
	}

	inventory, err := c.service.GetInventoryByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, "inventory", err)
		return
	}
	ctx.JSON(http.StatusOK, inventory)
}

// CreateInventory handles POST requests to create a new inventory record
func (c *InventoryController) CreateInventory(ctx *gin.Context) {
	var inventory models.InventoryModel
	if !bindJSON(ctx, &inventory) {
		return
	}

	created, err := c.service.CreateInventory(ctx.Request.Context(), &inventory)
	if err != nil {
		respondError(ctx, "inventory", err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateInventory handles PUT requests to replace an existing inventory record
func (c *InventoryController) UpdateInventory(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "inventory")
	if !ok {
		return
	}

	var inventory models.InventoryModel
	if !bindJSON(ctx, &inventory) {
		return
	}

	updated, err := c.service.UpdateInventory(ctx.Request.Context(), id, &inventory)
	if err != nil {
		respondError(ctx, "inventory", err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteInventory handles DELETE requests to remove an inventory record
func (c *InventoryController) DeleteInventory(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "inventory")
	if !ok {
		return
	}

	if err := c.service.DeleteInventory(ctx.Request.Context(), id); err != nil {
		respondError(ctx, "inventory", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ExportInventories returns every inventory record as an .xlsx workbook
func (c *InventoryController) ExportInventories(ctx *gin.Context) {
	var buf bytes.Buffer
	if err := c.service.ExportInventoriesToExcel(ctx.Request.Context(), &buf); err != nil {
		respondError(ctx, "inventory", err)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="inventory.xlsx"`)
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
