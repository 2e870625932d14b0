package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/supply-dashboard/supply-dashboard-backend/src/controllers"
	"github.com/supply-dashboard/supply-dashboard-backend/src/services"
)

func SetupItemRoutes(api *gin.RouterGroup, service *services.ItemService) {
	itemController := controllers.NewItemController(service)

	items := api.Group("/items")
	{
		items.GET("", itemController.GetAllItems)
		items.GET("/:id", itemController.GetItemByID)
		items.POST("", itemController.CreateItem)
		items.POST("/import", itemController.ImportItems)
		items.PUT("/:id", itemController.UpdateItem)
		items.DELETE("/:id", itemController.DeleteItem)
	}
}
