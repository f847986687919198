package user

import (
	"context"
	"testing"
	"time"

	memoryRepo "seminarly/database/repository/memory"
	"seminarly/models"
	"seminarly/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *DefaultUserService {
	return NewDefaultUserService(memoryRepo.NewStore().Users(), time.Hour)
}

func TestVerifyPasswordComplexity(t *testing.T) {
	assert.NoError(t, VerifyPasswordComplexity("Str0ng!pass"))

	for _, pw := range []string{"short1!", "nouppercase1!", "NOLOWERCASE1!", "NoNumbers!!", "NoSymbols123"} {
		err := VerifyPasswordComplexity(pw)
		assert.Error(t, err, pw)
		assert.IsType(t, ValidationError{}, err)
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	resp, err := svc.RegisterUser(ctx, models.UserRegistrationData{
		Name: "Ana", Email: " Ana@Example.com ", Password: "Str0ng!pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", resp.Email)
	assert.Equal(t, models.RoleUser, resp.Role)

	claims, err := utils.ExtractClaims(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, claims.Subject)
	assert.Equal(t, models.RoleUser, claims.Role)

	_, err = svc.RegisterUser(ctx, models.UserRegistrationData{
		Name: "Ana Again", Email: "ana@example.com", Password: "Str0ng!pass",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.AuthenticateUser(ctx, "ana@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.AuthenticateUser(ctx, "nobody@example.com", "Str0ng!pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	login, err := svc.AuthenticateUser(ctx, "ANA@example.com", "Str0ng!pass")
	require.NoError(t, err)
	assert.Equal(t, resp.ID, login.ID)
}

func TestUpdateAndDeleteUser(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	resp, err := svc.RegisterUser(ctx, models.UserRegistrationData{Name: "Ana", Email: "ana@example.com", Password: "Str0ng!pass"})
	require.NoError(t, err)

	name := "Ana Maria"
	updated, err := svc.UpdateUser(ctx, models.UserUpdateRequest{ID: resp.ID, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Name)
	assert.Empty(t, updated.PasswordHash)

	require.NoError(t, svc.DeleteUser(ctx, resp.ID))
	_, err = svc.GetUserByID(ctx, resp.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, svc.DeleteUser(ctx, resp.ID), ErrUserNotFound)
}

func TestEnsureAdmin(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "", ""))
	require.NoError(t, svc.EnsureAdmin(ctx, "admin@example.com", "Adm1n!pass"))
	require.NoError(t, svc.EnsureAdmin(ctx, "admin@example.com", "Adm1n!pass"))

	users, err := svc.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleAdmin, users[0].Role)

	login, err := svc.AuthenticateUser(ctx, "admin@example.com", "Adm1n!pass")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, login.Role)
}

func TestEnsureAdminPromotesExistingUser(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	resp, err := svc.RegisterUser(ctx, models.UserRegistrationData{Name: "Boss", Email: "boss@example.com", Password: "Str0ng!pass"})
	require.NoError(t, err)

	require.NoError(t, svc.EnsureAdmin(ctx, "boss@example.com", ""))
	u, err := svc.GetUserByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, u.Role)
}
