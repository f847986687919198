package memoryRepo

import (
	"context"
	"sort"
	"time"

	"seminarly/database"
	"seminarly/models"
)

type BookingRepo struct {
	s *Store
}

func (r *BookingRepo) Create(_ context.Context, booking *models.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.bookings[booking.ID]; exists {
		return database.ErrDuplicate
	}
	if booking.PaymentStatus.HoldsSlot() && r.holdsActive(booking.UserID, booking.SeminarID, booking.ID) {
		return database.ErrDuplicate
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	booking.Active = booking.PaymentStatus.HoldsSlot()
	r.s.bookings[booking.ID] = *booking
	return nil
}

func (r *BookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	booking, ok := r.s.bookings[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &booking, nil
}

func (r *BookingRepo) CompareAndSetStatus(_ context.Context, id string, from, to models.PaymentStatus) (*models.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	booking, ok := r.s.bookings[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	if booking.PaymentStatus != from {
		return nil, database.ErrStatusConflict
	}
	if to.HoldsSlot() && r.holdsActive(booking.UserID, booking.SeminarID, booking.ID) {
		return nil, database.ErrDuplicate
	}
	booking.PaymentStatus = to
	booking.Active = to.HoldsSlot()
	booking.UpdatedAt = time.Now()
	r.s.bookings[id] = booking
	return &booking, nil
}

// holdsActive reports whether another booking of the user holds a slot of
// the seminar. Callers hold the store lock.
func (r *BookingRepo) holdsActive(userID, seminarID, exceptID string) bool {
	for id, b := range r.s.bookings {
		if id != exceptID && b.UserID == userID && b.SeminarID == seminarID && b.PaymentStatus.HoldsSlot() {
			return true
		}
	}
	return false
}

func (r *BookingRepo) FindActive(_ context.Context, userID, seminarID string) (*models.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, booking := range r.s.bookings {
		if booking.UserID == userID && booking.SeminarID == seminarID && booking.PaymentStatus.HoldsSlot() {
			b := booking
			return &b, nil
		}
	}
	return nil, database.ErrNotFound
}

func (r *BookingRepo) List(_ context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]models.Booking, 0)
	for _, booking := range r.s.bookings {
		if filter.UserID != "" && booking.UserID != filter.UserID {
			continue
		}
		if filter.SeminarID != "" && booking.SeminarID != filter.SeminarID {
			continue
		}
		if filter.Status != "" && booking.PaymentStatus != filter.Status {
			continue
		}
		out = append(out, booking)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
