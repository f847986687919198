package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"seminarly/database"
	"seminarly/models"
	"seminarly/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func (s *DefaultUserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	u.PasswordHash = ""
	return u, nil
}

// UpdateUser updates non-null profile fields using a partial update.
func (s *DefaultUserService) UpdateUser(ctx context.Context, req models.UserUpdateRequest) (*models.User, error) {
	updateFields := bson.M{
		"updatedAt": stamp(),
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ValidationError{"name cannot be empty"}
		}
		updateFields["name"] = name
	}
	if req.PhoneNumber != nil {
		updateFields["phoneNumber"] = strings.TrimSpace(*req.PhoneNumber)
	}

	if err := s.Repo.UpdateSetDocument(ctx, req.ID, updateFields); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		utils.GetLogger().Error("UpdateUser: update failed", zap.String("userID", req.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.GetUserByID(ctx, req.ID)
}

func (s *DefaultUserService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.Repo.Delete(ctx, userID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	utils.GetLogger().Info("user deleted", zap.String("userID", userID))
	return nil
}
