package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"seminarly/database"
	"seminarly/models"
	"seminarly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser creates a regular user account and returns a session token.
func (s *DefaultUserService) RegisterUser(ctx context.Context, data models.UserRegistrationData) (*AuthResponse, error) {
	email := normalizeEmail(data.Email)
	if email == "" || data.Password == "" || strings.TrimSpace(data.Name) == "" {
		return nil, ValidationError{"name, email and password are required"}
	}
	if err := VerifyPasswordComplexity(data.Password); err != nil {
		return nil, err
	}

	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, database.ErrNotFound) {
		utils.GetLogger().Error("RegisterUser: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(data.Name),
		Email:        email,
		PasswordHash: string(hashed),
		PhoneNumber:  data.PhoneNumber,
		Role:         models.RoleUser,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		utils.GetLogger().Error("RegisterUser: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	utils.GetLogger().Info("user registered", zap.String("userID", u.ID))
	return s.issueToken(u)
}
