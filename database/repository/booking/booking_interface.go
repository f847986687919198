package bookingRepo

import (
	"context"

	"seminarly/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record. It returns database.ErrDuplicate
	// when the user already holds an active booking for the seminar.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// CompareAndSetStatus moves a booking from one payment status to another.
	// It returns database.ErrStatusConflict when the stored status is not from,
	// and database.ErrDuplicate when moving into a held status would give the
	// user a second active booking for the seminar.
	CompareAndSetStatus(ctx context.Context, id string, from, to models.PaymentStatus) (*models.Booking, error)
	// FindActive returns the pending or confirmed booking a user holds for a seminar.
	FindActive(ctx context.Context, userID, seminarID string) (*models.Booking, error)
	// List returns bookings matching the filter, newest first.
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
}
