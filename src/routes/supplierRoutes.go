package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/supply-dashboard/supply-dashboard-backend/src/controllers"
	"github.com/supply-dashboard/supply-dashboard-backend/src/services"
)

func SetupSupplierRoutes(api *gin.RouterGroup, service *services.SupplierService) {
	supplierController := controllers.NewSupplierController(service)

	suppliers := api.Group("/suppliers")
	{
		suppliers.GET("", supplierController.GetAllSuppliers)
		suppliers.GET("/:id", supplierController.GetSupplierByID)
		suppliers.POST("", supplierController.CreateSupplier)
		suppliers.PUT("/:id", supplierController.UpdateSupplier)
		suppliers.DELETE("/:id", supplierController.DeleteSupplier)
	}
}
