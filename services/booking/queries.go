package booking

import (
	"context"

	"seminarly/models"
)

// GetBooking returns a booking visible to the principal. Users only see
// their own bookings; others read as not found.
func (s *DefaultBookingService) GetBooking(ctx context.Context, principal models.Principal, bookingID string) (*models.Booking, error) {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() && booking.UserID != principal.UserID {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (s *DefaultBookingService) ListBookingsForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.ListBookings(ctx, models.BookingFilter{UserID: userID})
}

func (s *DefaultBookingService) ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	if filter.Status != "" {
		status, err := ParsePaymentStatus(string(filter.Status))
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}
	bookings, err := s.Bookings.List(ctx, filter)
	if err != nil {
		return nil, storageError("failed to list bookings", err)
	}
	return bookings, nil
}
