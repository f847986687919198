package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"seminarly/database"
	"seminarly/models"
	"seminarly/services/events"
	"seminarly/services/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking reserves one slot of a seminar for the principal.
//
// The slot is reserved before the booking is written and released again if
// the payment intent or the write fails, so a stored booking always holds a
// slot. Notifications and events go out only after the booking is stored.
func (s *DefaultBookingService) CreateBooking(
	ctx context.Context,
	principal models.Principal,
	seminarID string,
	input models.PaymentInput,
) (*models.BookingResult, error) {
	logger := s.Logger.With(zap.String("seminarID", seminarID), zap.String("userID", principal.UserID))

	seminar, err := s.loadSeminar(ctx, seminarID)
	if err != nil {
		return nil, err
	}
	if seminar.SlotsAvailable <= 0 {
		return nil, ErrSeminarFull
	}

	user, err := s.loadUser(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	if _, err := s.Bookings.FindActive(ctx, user.ID, seminar.ID); err == nil {
		return nil, ErrAlreadyBooked
	} else if !errors.Is(err, database.ErrNotFound) {
		return nil, storageError("failed to check existing bookings", err)
	}

	booking := &models.Booking{
		ID:            uuid.New().String(),
		UserID:        user.ID,
		SeminarID:     seminar.ID,
		PaymentStatus: models.PaymentPending,
		Amount:        seminar.Fee,
	}

	// Proof uploads happen before the reservation; a failed upload leaves nothing to undo.
	if input.Proof != nil {
		url, err := s.uploadProof(ctx, input.Proof)
		if err != nil {
			return nil, err
		}
		booking.ProofOfPayment = url
	}

	reserved, err := s.Ledger.Reserve(ctx, seminar.ID)
	if err != nil {
		return nil, err
	}
	logger.Debug("slot reserved", zap.Int("slotsAvailable", reserved.SlotsAvailable))

	result := &models.BookingResult{Booking: booking}

	// Free seminars need no payment intent.
	if input.Proof == nil && payment.ToMinorUnits(seminar.Fee) > 0 {
		intent, err := s.openPaymentIntent(ctx, seminar, user)
		if err != nil {
			s.compensateReserve(ctx, seminar.ID, logger)
			return nil, err
		}
		booking.PaymentIntentID = intent.ID
		result.ClientSecret = intent.ClientSecret
	}

	if err := s.Bookings.Create(ctx, booking); err != nil {
		s.compensateReserve(ctx, seminar.ID, logger)
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrAlreadyBooked
		}
		return nil, storageError("failed to save booking", err)
	}

	logger.Info("booking created", zap.String("bookingID", booking.ID), zap.Bool("proofUploaded", input.Proof != nil))

	s.afterCommit(ctx, models.TemplateBookingReceived, events.RoutingBookingCreated, "", *booking, *seminar, *user)
	return result, nil
}

func (s *DefaultBookingService) uploadProof(ctx context.Context, proof *models.ProofUpload) (string, error) {
	uctx, cancel := s.external(ctx)
	defer cancel()

	url, err := s.Images.Upload(uctx, proof.Body, proof.MimeType)
	if err != nil {
		return "", newError(KindImageStore, "failed to store proof of payment", err)
	}
	return url, nil
}

func (s *DefaultBookingService) openPaymentIntent(ctx context.Context, seminar *models.Seminar, user *models.User) (*models.PaymentIntent, error) {
	pctx, cancel := s.external(ctx)
	defer cancel()

	description := fmt.Sprintf("Seminar booking: %s (%s)", seminar.Title, seminar.Date)
	intent, err := s.Payments.CreatePaymentIntent(pctx, payment.ToMinorUnits(seminar.Fee), description, user.Email)
	if err != nil {
		return nil, newError(KindPaymentGateway, "failed to create payment intent", err)
	}
	return intent, nil
}

// compensateReserve gives back a slot taken by a creation that did not complete.
func (s *DefaultBookingService) compensateReserve(ctx context.Context, seminarID string, logger *zap.Logger) {
	// Detached so a cancelled request still returns its slot.
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.Timeout)
	defer cancel()

	if _, err := s.Ledger.Release(rctx, seminarID); err != nil {
		logger.Error("failed to release slot after aborted booking", zap.Error(err))
	}
}

// afterCommit sends the notification and event for a stored change. An empty
// routingKey skips the event. Failures are logged only.
func (s *DefaultBookingService) afterCommit(
	ctx context.Context,
	tmpl models.NotificationTemplate,
	routingKey string,
	from models.PaymentStatus,
	booking models.Booking,
	seminar models.Seminar,
	user models.User,
) {
	bg := context.WithoutCancel(ctx)

	if s.Cache != nil {
		s.Cache.Invalidate(bg)
	}

	if s.Notifier != nil {
		nctx, cancel := s.external(bg)
		err := s.Notifier.Send(nctx, models.Notification{
			Template:  tmpl,
			Recipient: user.Email,
			Seminar:   seminar,
			User:      user,
			Booking:   booking,
		})
		cancel()
		if err != nil {
			s.Logger.Warn("notification failed",
				zap.String("template", string(tmpl)),
				zap.String("bookingID", booking.ID),
				zap.Error(err))
		}
	}

	if s.Events != nil && routingKey != "" {
		ectx, cancel := s.external(bg)
		err := s.Events.Publish(ectx, routingKey, models.BookingEvent{
			BookingID:  booking.ID,
			UserID:     booking.UserID,
			SeminarID:  booking.SeminarID,
			From:       from,
			Status:     booking.PaymentStatus,
			Amount:     booking.Amount,
			OccurredAt: time.Now().UTC(),
		})
		cancel()
		if err != nil {
			s.Logger.Warn("event publish failed",
				zap.String("routingKey", routingKey),
				zap.String("bookingID", booking.ID),
				zap.Error(err))
		}
	}
}
