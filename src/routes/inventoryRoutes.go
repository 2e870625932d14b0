package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/supply-dashboard/supply-dashboard-backend/src/controllers"
	"github.com/supply-dashboard/supply-dashboard-backend/src/services"
)

func SetupInventoryRoutes(api *gin.RouterGroup, service *services.InventoryService) {
	inventoryController := controllers.NewInventoryController(service)

	inventories := api.Group("/inventories")
	{
		inventories.GET("", inventoryController.GetAllInventories)
		inventories.GET("/export", inventoryController.ExportInventories)
		inventories.GET("/warehouse/:warehouseId", inventoryController.GetInventoriesByWarehouse)
		inventories.GET("/item/:itemId", inventoryController.GetInventoriesByItem)
		inventories.GET("/:id", inventoryController.GetInventoryByID)
		inventories.POST("", inventoryController.CreateInventory)
		inventories.PUT("/:id", inventoryController.UpdateInventory)
		inventories.DELETE("/:id", inventoryController.DeleteInventory)
	}
}
