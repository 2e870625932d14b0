package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supply-dashboard/supply-dashboard-backend/src/models"
	"github.com/supply-dashboard/supply-dashboard-backend/src/services"
)

type SupplierController struct {
	service *services.SupplierService
}

func NewSupplierController(service *services.SupplierService) *SupplierController {
	return &SupplierController{service: service}
}

func (c *SupplierController) GetAllSuppliers(ctx *gin.Context) {
	suppliers, err := c.service.GetAllSuppliers(ctx.Request.Context())
	if err != nil {
		respondError(ctx, "supplier", err)
		return
	}
	ctx.JSON(http.StatusOK, suppliers)
}

func (c *SupplierController) GetSupplierByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "supplier")
	if !ok {
		return
	}

	supplier, err := c.service.GetSupplierByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, "supplier", err)
		return
	}
	ctx.JSON(http.StatusOK, supplier)
}

func (c *SupplierController) CreateSupplier(ctx *gin.Context) {
	var supplier models.SupplierModel
	if !bindJSON(ctx, &supplier) {
		return
	}

	created, err := c.service.CreateSupplier(ctx.Request.Context(), &supplier)
	if err != nil {
		respondError(ctx, "supplier", err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *SupplierController) UpdateSupplier(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "supplier")
	if !ok {
		return
	}

	var supplier models.SupplierModel
	if !bindJSON(ctx, &supplier) {
		return
	}

	updated, err := c.service.UpdateSupplier(ctx.Request.Context(), id, &supplier)
	if err != nil {
		respondError(ctx, "supplier", err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func (c *SupplierController) DeleteSupplier(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "supplier")
	if !ok {
		return
	}

	if err := c.service.DeleteSupplier(ctx.Request.Context(), id); err != nil {
		respondError(ctx, "supplier", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
