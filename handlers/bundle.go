package handlers

import (
	userRepoPkg "seminarly/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// User endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetProfileHandler       gin.HandlerFunc
	UpdateProfileHandler    gin.HandlerFunc

	// Seminar endpoints
	ListSeminarsHandler  gin.HandlerFunc
	GetSeminarHandler    gin.HandlerFunc
	CreateSeminarHandler gin.HandlerFunc
	UpdateSeminarHandler gin.HandlerFunc
	DeleteSeminarHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler       gin.HandlerFunc
	GetMyBookingsHandler       gin.HandlerFunc
	GetBookingHandler          gin.HandlerFunc
	ListBookingsHandler        gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc

	// Storage endpoints
	UploadProofHandler gin.HandlerFunc

	// Admin endpoints
	AdminHandler *AdminHandler
}
