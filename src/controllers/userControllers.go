package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supply-dashboard/supply-dashboard-backend/src/dtos"
	"github.com/supply-dashboard/supply-dashboard-backend/src/services"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

// GetAllUsers handles GET requests to retrieve all users
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.service.GetAllUsers(ctx.Request.Context())
	if err != nil {
		respondError(ctx, "user", err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// GetUserByID handles GET requests to retrieve a user by ID
func (c *UserController) GetUserByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "user")
	if !ok {
		return
	}

	user, err := c.service.GetUserByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, "user", err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// GetUserByUsername handles GET requests to look a user up by username
func (c *UserController) GetUserByUsername(ctx *gin.Context) {
	user, err := c.service.GetUserByUsername(ctx.Request.Context(), ctx.Param("username"))
	if err != nil {
		respondError(ctx, "user", err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// RegisterUser handles POST requests to register a new user
func (c *UserController) RegisterUser(ctx *gin.Context) {
	var req dtos.UserRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := c.service.CreateUser(ctx.Request.Context(), req.ToModel())
	if err != nil {
		respondError(ctx, "user", err)
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

// UpdateUser handles PUT requests to replace a user
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "user")
	if !ok {
		return
	}

	var req dtos.UserRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := c.service.UpdateUser(ctx.Request.Context(), id, req.ToModel())
	if err != nil {
		respondError(ctx, "user", err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE requests to remove a user
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "user")
	if !ok {
		return
	}

	if err := c.service.DeleteUser(ctx.Request.Context(), id); err != nil {
		respondError(ctx, "user", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
