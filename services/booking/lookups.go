package booking

import (
	"context"
	"errors"

	"seminarly/database"
	"seminarly/models"
)

func (s *DefaultBookingService) loadSeminar(ctx context.Context, id string) (*models.Seminar, error) {
	seminar, err := s.Seminars.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrSeminarNotFound
		}
		return nil, storageError("failed to load seminar", err)
	}
	return seminar, nil
}

func (s *DefaultBookingService) loadUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storageError("failed to load user", err)
	}
	return user, nil
}

func (s *DefaultBookingService) loadBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, storageError("failed to load booking", err)
	}
	return booking, nil
}
