package dtos

import "github.com/supply-dashboard/supply-dashboard-backend/src/models"

// UserRequest carries the plain-text password that the stored user never exposes.
type UserRequest struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Email    *string `json:"email"`
	FullName *string `json:"fullName"`
	Role     string  `json:"role"`
}

func (r UserRequest) ToModel() *models.UserModel {
	return &models.UserModel{
		Username: r.Username,
		Password: r.Password,
		Email:    r.Email,
		FullName: r.FullName,
		Role:     r.Role,
	}
}
