package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supply-dashboard/supply-dashboard-backend/src/models"
	"github.com/supply-dashboard/supply-dashboard-backend/src/services"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// GetAllOrders handles GET requests to retrieve all order records
func (c *OrderController) GetAllOrders(ctx *gin.Context) {
	orders, err := c.service.GetAllOrders(ctx.Request.Context())
	if err != nil {
		respondError(ctx, "order", err)
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// GetOrderByID handles GET requests to retrieve an order record by ID
func (c *OrderController) GetOrderByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "order")
	if !ok {
		return
	}

	order, err := c.service.GetOrderByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, "order", err)
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// GetOrdersByStatus handles GET requests for orders with an exact status, e.g. Processing
func (c *OrderController) GetOrdersByStatus(ctx *gin.Context) {
	orders, err := c.service.GetOrdersByStatus(ctx.Request.Context(), ctx.Param("status"))
	if err != nil {
		respondError(ctx, "order", err)
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// CreateOrder handles POST requests to create a new order record
func (c *OrderController) CreateOrder(ctx *gin.Context) {
	var order models.OrderModel
	if !bindJSON(ctx, &order) {
		return
	}

	created, err := c.service.CreateOrder(ctx.Request.Context(), &order)
	if err != nil {
		respondError(ctx, "order", err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateOrder handles PUT requests to replace an existing order record
func (c *OrderController) UpdateOrder(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "order")
	if !ok {
		return
	}

	var order models.OrderModel
	if !bindJSON(ctx, &order) {
		return
	}

	updated, err := c.service.UpdateOrder(ctx.Request.Context(), id, &order)
	if err != nil {
		respondError(ctx, "order", err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteOrder handles DELETE requests to remove an order record
func (c *OrderController) DeleteOrder(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "order")
	if !ok {
		return
	}

	if err := c.service.DeleteOrder(ctx.Request.Context(), id); err != nil {
		respondError(ctx, "order", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
