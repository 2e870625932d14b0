package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/supply-dashboard/supply-dashboard-backend/src/controllers"
	"github.com/supply-dashboard/supply-dashboard-backend/src/services"
)

func SetupOrderRoutes(api *gin.RouterGroup, service *services.OrderService) {
	orderController := controllers.NewOrderController(service)

	orders := api.Group("/orders")
	{
		orders.GET("", orderController.GetAllOrders)
		orders.GET("/:id", orderController.GetOrderByID)
		orders.GET("/status/:status", orderController.GetOrdersByStatus)
		orders.POST("", orderController.CreateOrder)
		orders.PUT("/:id", orderController.UpdateOrder)
		orders.DELETE("/:id", orderController.DeleteOrder)
	}
}
