package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supply-dashboard/supply-dashboard-backend/src/models"
	"github.com/supply-dashboard/supply-dashboard-backend/src/services"
)

// maxImportSize bounds the multipart upload accepted by ImportItems.
const maxImportSize = 10 << 20

type ItemController struct {
	service *services.ItemService
}

func NewItemController(service *services.ItemService) *ItemController {
	return &ItemController{service: service}
}

// GetAllItems handles GET requests to retrieve all item records
func (c *ItemController) GetAllItems(ctx *gin.Context) {
	items, err := c.service.GetAllItems(ctx.Request.Context())
	if err != nil {
		respondError(ctx, "item", err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// GetItemByID handles GET requests to retrieve an item record by ID
func (c *ItemController) GetItemByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "item")
	if !ok {
		return
	}

	item, err := c.service.GetItemByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, "item", err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// CreateItem handles POST requests to create a new item record
func (c *ItemController) CreateItem(ctx *gin.Context) {
	var item models.ItemModel
	if !bindJSON(ctx, &item) {
		return
	}

	createdItem, err := c.service.CreateItem(ctx.Request.Context(), &item)
	if err != nil {
		respondError(ctx, "item", err)
		return
	}
	ctx.JSON(http.StatusCreated, createdItem)
}

// UpdateItem handles PUT requests to replace an existing item record
func (c *ItemController) UpdateItem(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "item")
	if !ok {
		return
	}

	var item models.ItemModel
	if !bindJSON(ctx, &item) {
		return
	}

	updatedItem, err := c.service.UpdateItem(ctx.Request.Context(), id, &item)
	if err != nil {
		respondError(ctx, "item", err)
		return
	}
	ctx.JSON(http.StatusOK, updatedItem)
}

// DeleteItem handles DELETE requests to remove an item record
func (c *ItemController) DeleteItem(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "item")
	if !ok {
		return
	}

	if err := c.service.DeleteItem(ctx.Request.Context(), id); err != nil {
		respondError(ctx, "item", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ImportItems handles multipart uploads of an .xlsx sheet of items
func (c *ItemController) ImportItems(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxImportSize)

	file, _, err := ctx.Request.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	result, err := c.service.ImportItemsFromExcel(ctx.Request.Context(), file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}
