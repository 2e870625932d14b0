package services

import (
	"context"
	"errors"

	"github.com/supply-dashboard/supply-dashboard-backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultUserRole is assigned when a user is written without a role.
const DefaultUserRole = "viewer"

type UserService struct {
	users store[models.UserModel]
}

// NewUserService creates a new instance of UserService
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{users: newStore[models.UserModel](db, "user")}
}

// GetAllUsers retrieves all User records from the database
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.UserModel, error) {
	return s.users.findAll(ctx)
}

// GetUserByID retrieves a User record by its ID
func (s *UserService) GetUserByID(ctx context.Context, id int) (*models.UserModel, error) {
	return s.users.findByID(ctx, id)
}

// GetUserByUsername retrieves the User record with the given username
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.UserModel, error) {
	return s.users.findOne(ctx, byColumn("username", username), username)
}

// CreateUser hashes the plain-text password and creates a new User record
func (s *UserService) CreateUser(ctx context.Context, user *models.UserModel) (*models.UserModel, error) {
	user.Id = 0
	if err := prepareUser(user); err != nil {
		return nil, err
	}
	if err := s.users.create(ctx, user); err != nil {
		return nil, translateUserError(err)
	}
	return user, nil
}

// UpdateUser replaces the User record with the given ID, re-hashing the password
func (s *UserService) UpdateUser(ctx context.Context, id int, user *models.UserModel) (*models.UserModel, error) {
	user.Id = id
	if err := prepareUser(user); err != nil {
		return nil, err
	}
	if err := s.users.replace(ctx, id, user); err != nil {
		return nil, translateUserError(err)
	}
	return user, nil
}

// DeleteUser deletes a User record by ID
func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	return s.users.delete(ctx, id)
}

// CheckPassword reports whether password matches the stored hash of user.
func CheckPassword(user *models.UserModel, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}

func prepareUser(user *models.UserModel) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	if user.Role == "" {
		user.Role = DefaultUserRole
	}
	return nil
}

func translateUserError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUsernameTaken
	}
	return err
}
