package user

import (
	"context"
	"time"

	userRepo "seminarly/database/repository/user"
	"seminarly/models"
)

type UserService interface {
	// Authentication
	RegisterUser(ctx context.Context, data models.UserRegistrationData) (*AuthResponse, error)
	AuthenticateUser(ctx context.Context, email, password string) (*AuthResponse, error)

	// User Management
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, req models.UserUpdateRequest) (*models.User, error)
	DeleteUser(ctx context.Context, userID string) error

	// Admin / Utility
	GetAllUsers(ctx context.Context) ([]models.User, error)
	EnsureAdmin(ctx context.Context, email, password string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	TokenTTL time.Duration
}

func NewDefaultUserService(repo userRepo.UserRepository, tokenTTL time.Duration) *DefaultUserService {
	return &DefaultUserService{Repo: repo, TokenTTL: tokenTTL}
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID          string `json:"id"`
	Token       string `json:"token"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role"`
}
