package booking

import (
	"context"
	"errors"

	"seminarly/database"
	"seminarly/models"
	"seminarly/services/events"

	"go.uber.org/zap"
)

// UpdateBookingStatus moves a booking to requestedStatus and adjusts the
// seminar's slots when the booking starts or stops holding one.
func (s *DefaultBookingService) UpdateBookingStatus(ctx context.Context, bookingID, requestedStatus string) (*models.Booking, error) {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	seminar, err := s.loadSeminar(ctx, booking.SeminarID)
	if err != nil {
		return nil, err
	}
	user, err := s.loadUser(ctx, booking.UserID)
	if err != nil {
		return nil, err
	}

	requested, err := ParsePaymentStatus(requestedStatus)
	if err != nil {
		return nil, err
	}

	t, err := Plan(booking.PaymentStatus, requested)
	if err != nil {
		return nil, err
	}

	logger := s.Logger.With(
		zap.String("bookingID", booking.ID),
		zap.String("from", string(t.From)),
		zap.String("to", string(t.To)),
		zap.Stringer("delta", t.Delta))

	updated := booking
	if !t.NoOp {
		updated, err = s.applyTransition(ctx, booking, t, logger)
		if err != nil {
			return nil, err
		}
		if latest, err := s.Seminars.GetByID(ctx, seminar.ID); err == nil {
			seminar = latest
		}
		logger.Info("booking status updated")
	}

	routingKey := events.RoutingBookingStatusChanged
	if t.NoOp {
		routingKey = ""
	}
	s.afterCommit(ctx, t.Template, routingKey, t.From, *updated, *seminar, *user)
	return updated, nil
}

func (s *DefaultBookingService) applyTransition(ctx context.Context, booking *models.Booking, t Transition, logger *zap.Logger) (*models.Booking, error) {
	switch t.Delta {
	case DeltaReserve:
		if _, err := s.Ledger.Reserve(ctx, booking.SeminarID); err != nil {
			return nil, err
		}
		updated, err := s.casStatus(ctx, booking.ID, t.From, t.To)
		if err != nil {
			s.compensateReserve(ctx, booking.SeminarID, logger)
			return nil, err
		}
		return updated, nil

	case DeltaRelease:
		updated, err := s.casStatus(ctx, booking.ID, t.From, t.To)
		if err != nil {
			return nil, err
		}
		if _, err := s.Ledger.Release(ctx, booking.SeminarID); err != nil {
			rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.Timeout)
			defer cancel()
			if _, revertErr := s.Bookings.CompareAndSetStatus(rctx, booking.ID, t.To, t.From); revertErr != nil {
				logger.Error("failed to revert status after slot release failed", zap.Error(revertErr))
			}
			return nil, storageError("failed to release slot", err)
		}
		return updated, nil

	default:
		return s.casStatus(ctx, booking.ID, t.From, t.To)
	}
}

func (s *DefaultBookingService) casStatus(ctx context.Context, id string, from, to models.PaymentStatus) (*models.Booking, error) {
	updated, err := s.Bookings.CompareAndSetStatus(ctx, id, from, to)
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, database.ErrStatusConflict):
		return nil, ErrConcurrentUpdate
	case errors.Is(err, database.ErrNotFound):
		return nil, ErrBookingNotFound
	case errors.Is(err, database.ErrDuplicate):
		return nil, ErrAlreadyBooked
	default:
		return nil, storageError("failed to update booking status", err)
	}
}
