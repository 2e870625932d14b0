package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/supply-dashboard/supply-dashboard-backend/src/controllers"
	"github.com/supply-dashboard/supply-dashboard-backend/src/services"
)

func SetupWarehouseRoutes(api *gin.RouterGroup, service *services.WarehouseService) {
	warehouseController := controllers.NewWarehouseController(service)

	warehouses := api.Group("/warehouses")
	{
		warehouses.GET("", warehouseController.GetAllWarehouses)
		warehouses.GET("/:id", warehouseController.GetWarehouseByID)
		warehouses.POST("", warehouseController.CreateWarehouse)
		warehouses.PUT("/:id", warehouseController.UpdateWarehouse)
		warehouses.DELETE("/:id", warehouseController.DeleteWarehouse)
	}
}
