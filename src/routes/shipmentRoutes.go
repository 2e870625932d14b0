package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/supply-dashboard/supply-dashboard-backend/src/controllers"
	"github.com/supply-dashboard/supply-dashboard-backend/src/services"
)

func SetupShipmentRoutes(api *gin.RouterGroup, service *services.ShipmentService) {
	shipmentController := controllers.NewShipmentController(service)

	shipments := api.Group("/shipments")
	{
		shipments.GET("", shipmentController.GetAllShipments)
		shipments.GET("/:id", shipmentController.GetShipmentByID)
		shipments.GET("/status/:status", shipmentController.GetShipmentsByStatus)
		shipments.POST("", shipmentController.CreateShipment)
		shipments.PUT("/:id", shipmentController.UpdateShipment)
		shipments.DELETE("/:id", shipmentController.DeleteShipment)
	}
}
