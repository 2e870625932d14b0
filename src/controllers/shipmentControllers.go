package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supply-dashboard/supply-dashboard-backend/src/dtos"
	"github.com/supply-dashboard/supply-dashboard-backend/src/services"
)

type ShipmentController struct {
	service *services.ShipmentService
}

func NewShipmentController(service *services.ShipmentService) *ShipmentController {
	return &ShipmentController{service: service}
}

func (c *ShipmentController) GetAllShipments(ctx *gin.Context) {
	shipments, err := c.service.GetAllShipments(ctx.Request.Context())
	if err != nil {
		respondError(ctx, "shipment", err)
		return
	}
	ctx.JSON(http.StatusOK, shipments)
}

func (c *ShipmentController) GetShipmentByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "shipment")
	if !ok {
		return
	}

	shipment, err := c.service.GetShipmentByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, "shipment", err)
		return
	}
	ctx.JSON(http.StatusOK, shipment)
}

func (c *ShipmentController) GetShipmentsByStatus(ctx *gin.Context) {
	shipments, err := c.service.GetShipmentsByStatus(ctx.Request.Context(), ctx.Param("status"))
	if err != nil {
		respondError(ctx, "shipment", err)
		return
	}
	ctx.JSON(http.StatusOK, shipments)
}

func (c *ShipmentController) CreateShipment(ctx *gin.Context) {
	var req dtos.ShipmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	created, err := c.service.CreateShipment(ctx.Request.Context(), req.ToModel())
	if err != nil {
		respondError(ctx, "shipment", err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *ShipmentController) UpdateShipment(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "shipment")
	if !ok {
		return
	}

	var req dtos.ShipmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	updated, err := c.service.UpdateShipment(ctx.Request.Context(), id, req.ToModel())
	if err != nil {
		respondError(ctx, "shipment", err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func (c *ShipmentController) DeleteShipment(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "shipment")
	if !ok {
		return
	}

	if err := c.service.DeleteShipment(ctx.Request.Context(), id); err != nil {
		respondError(ctx, "shipment", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
