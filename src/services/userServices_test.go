package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supply-dashboard/supply-dashboard-backend/src/models"
)

func TestUserService_CreateHashesPassword(t *testing.T) {
	svc := NewUserService(setupTestDB(t))
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &models.UserModel{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", user.Password)
	assert.Equal(t, DefaultUserRole, user.Role)

	stored, err := svc.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.Id, stored.Id)
	assert.True(t, CheckPassword(stored, "s3cret"))
	assert.False(t, CheckPassword(stored, "wrong"))
}

func TestUserService_GetUserByUsernameNotFound(t *testing.T) {
	svc := NewUserService(setupTestDB(t))

	_, err := svc.GetUserByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "user alice: record not found")
}

func TestUserService_DuplicateUsername(t *testing.T) {
	svc := NewUserService(setupTestDB(t))
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, &models.UserModel{Username: "alice", Password: "a"})
	require.NoError(t, err)
	bob, err := svc.CreateUser(ctx, &models.UserModel{Username: "bob", Password: "b"})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, &models.UserModel{Username: "alice", Password: "c"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = svc.UpdateUser(ctx, bob.Id, &models.UserModel{Username: "alice", Password: "b"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserService_UpdateAndDelete(t *testing.T) {
	svc := NewUserService(setupTestDB(t))
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &models.UserModel{Username: "alice", Password: "old", Role: "admin"})
	require.NoError(t, err)

	updated, err := svc.UpdateUser(ctx, user.Id, &models.UserModel{Id: 50, Username: "alice2", Password: "new", FullName: strPtr("Alice Liddell")})
	require.NoError(t, err)
	assert.Equal(t, user.Id, updated.Id)
	assert.Equal(t, DefaultUserRole, updated.Role)

	stored, err := svc.GetUserByID(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, "alice2", stored.Username)
	assert.True(t, CheckPassword(stored, "new"))

	users, err := svc.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	require.NoError(t, svc.DeleteUser(ctx, user.Id))
	_, err = svc.GetUserByUsername(ctx, "alice2")
	assert.ErrorIs(t, err, ErrNotFound)
}
