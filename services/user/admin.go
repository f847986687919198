package user

import (
	"context"
	"errors"
	"fmt"

	"seminarly/database"
	"seminarly/models"
	"seminarly/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// GetAllUsers retrieves all users for admin access, excluding sensitive fields.
func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// EnsureAdmin creates the configured admin account, or promotes an existing
// account with that email. It is a no-op when email is empty.
func (s *DefaultUserService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)
	if email == "" {
		return nil
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role == models.RoleAdmin {
			return nil
		}
		utils.GetLogger().Info("promoting configured admin", zap.String("userID", existing.ID))
		return s.Repo.UpdateSetDocument(ctx, existing.ID, bson.M{"role": models.RoleAdmin, "updatedAt": stamp()})
	case !errors.Is(err, database.ErrNotFound):
		return fmt.Errorf("failed to look up admin: %w", err)
	}

	if password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required to create the admin account")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		ID:           uuid.New().String(),
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
	}
	if err := s.Repo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	utils.GetLogger().Info("admin account created", zap.String("userID", admin.ID))
	return nil
}
