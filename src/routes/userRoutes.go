package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/supply-dashboard/supply-dashboard-backend/src/controllers"
	"github.com/supply-dashboard/supply-dashboard-backend/src/services"
)

func SetupUserRoutes(api *gin.RouterGroup, service *services.UserService) {
	userController := controllers.NewUserController(service)

	users := api.Group("/users")
	{
		users.GET("", userController.GetAllUsers)
		users.GET("/:id", userController.GetUserByID)
		users.GET("/username/:username", userController.GetUserByUsername)
		users.POST("/register", userController.RegisterUser)
		users.PUT("/:id", userController.UpdateUser)
		users.DELETE("/:id", userController.DeleteUser)
	}
}
