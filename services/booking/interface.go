package booking

import (
	"context"
	"time"

	bookingRepo "seminarly/database/repository/booking"
	seminarRepo "seminarly/database/repository/seminar"
	userRepo "seminarly/database/repository/user"
	"seminarly/models"
	"seminarly/services/events"
	"seminarly/services/notification"
	"seminarly/services/payment"
	"seminarly/services/storage"

	"go.uber.org/zap"
)

// BookingService reserves seminar slots and moves bookings through their payment lifecycle.
type BookingService interface {
	CreateBooking(ctx context.Context, principal models.Principal, seminarID string, input models.PaymentInput) (*models.BookingResult, error)
	UpdateBookingStatus(ctx context.Context, bookingID, requestedStatus string) (*models.Booking, error)

	GetBooking(ctx context.Context, principal models.Principal, bookingID string) (*models.Booking, error)
	ListBookingsForUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Seminars seminarRepo.SeminarRepository
	Bookings bookingRepo.BookingRepository
	Users    userRepo.UserRepository
	Ledger   *SlotLedger
	Payments payment.Gateway
	Images   storage.ImageStore
	Notifier notification.NotificationService
	Events   events.Publisher
	Logger   *zap.Logger
	// Timeout bounds each external call (payment, upload, notification, event).
	Timeout time.Duration
	// Cache is invalidated after every committed change; optional.
	Cache CacheInvalidator
}

// CacheInvalidator drops cached read models that depend on bookings.
type CacheInvalidator interface {
	Invalidate(ctx context.Context)
}

func NewDefaultBookingService(
	seminars seminarRepo.SeminarRepository,
	bookings bookingRepo.BookingRepository,
	users userRepo.UserRepository,
	payments payment.Gateway,
	images storage.ImageStore,
	notifier notification.NotificationService,
	publisher events.Publisher,
	logger *zap.Logger,
	timeout time.Duration,
) *DefaultBookingService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &DefaultBookingService{
		Seminars: seminars,
		Bookings: bookings,
		Users:    users,
		Ledger:   NewSlotLedger(seminars),
		Payments: payments,
		Images:   images,
		Notifier: notifier,
		Events:   publisher,
		Logger:   logger,
		Timeout:  timeout,
	}
}

func (s *DefaultBookingService) external(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.Timeout)
}
