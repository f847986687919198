package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"seminarly/models"
	"seminarly/services/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func proofInput() models.PaymentInput {
	return models.PaymentInput{Proof: &models.ProofUpload{
		Body:     strings.NewReader("png-bytes"),
		MimeType: "image/png",
		Filename: "receipt.png",
	}}
}

func TestProofOfPaymentScenario(t *testing.T) {
	f := newFixture(t)
	f.seedSeminar(t, "s1", 500, 3)
	principal := f.seedUser(t, "u1")
	ctx := context.Background()

	result, err := f.svc.CreateBooking(ctx, principal, "s1", proofInput())
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, result.Booking.PaymentStatus)
	assert.Equal(t, "https://images.example.com/proof.png", result.Booking.ProofOfPayment)
	assert.Empty(t, result.ClientSecret)
	assert.Empty(t, f.gateway.amounts)
	assert.Equal(t, 2, f.slots(t, "s1"))

	rejected, err := f.svc.UpdateBookingStatus(ctx, result.Booking.ID, "rejected")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentRejected, rejected.PaymentStatus)
	assert.Equal(t, 3, f.slots(t, "s1"))

	confirmed, err := f.svc.UpdateBookingStatus(ctx, result.Booking.ID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentConfirmed, confirmed.PaymentStatus)
	assert.Equal(t, 2, f.slots(t, "s1"))

	assert.Equal(t, []models.NotificationTemplate{
		models.TemplateBookingReceived,
		models.TemplateBookingRejected,
		models.TemplateBookingConfirmed,
	}, f.notifier.templates())
	assert.Equal(t, []string{
		events.RoutingBookingCreated,
		events.RoutingBookingStatusChanged,
		events.RoutingBookingStatusChanged,
	}, f.publisher.keys)
}

func TestCreateBookingOpensPaymentIntent(t *testing.T) {
	f := newFixture(t)
	f.seedSeminar(t, "s1", 500, 3)
	principal := f.seedUser(t, "u1")

	result, err := f.svc.CreateBooking(context.Background(), principal, "s1", models.PaymentInput{})
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret", result.ClientSecret)
	assert.Equal(t, "pi_123", result.Booking.PaymentIntentID)
	assert.Empty(t, result.Booking.ProofOfPayment)
	assert.Equal(t, []int64{50000}, f.gateway.amounts)
	assert.Equal(t, 2, f.slots(t, "s1"))
}

func TestCreateBookingFullSeminarMutatesNothing(t *testing.T) {
	f := newFixture(t)
	f.seedSeminar(t, "s1", 500, 0)
	principal := f.seedUser(t, "u1")

	_, err := f.svc.CreateBooking(context.Background(), principal, "s1", proofInput())
	assert.ErrorIs(t, err, ErrSeminarFull)
	assert.Equal(t, 0, f.slots(t, "s1"))
	assert.Zero(t, f.images.uploaded)
	assert.Empty(t, f.notifier.sent)

	bookings, err := f.store.Bookings().List(context.Background(), models.BookingFilter{})
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestCreateBookingNotFound(t *testing.T) {
	f := newFixture(t)
	f.seedSeminar(t, "s1", 500, 1)

	_, err := f.svc.CreateBooking(context.Background(), models.Principal{UserID: "u1"}, "missing", models.PaymentInput{})
	assert.ErrorIs(t, err, ErrSeminarNotFound)

	_, err = f.svc.CreateBooking(context.Background(), models.Principal{UserID: "ghost"}, "s1", models.PaymentInput{})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, 1, f.slots(t, "s1"))
}

func TestCreateBookingRejectsDuplicate(t *testing.T) {
	f := newFixture(t)
	f.seedSeminar(t, "s1", 500, 3)
	principal := f.seedUser(t, "u1")

	_, err := f.svc.CreateBooking(context.Background(), principal, "s1", proofInput())
	require.NoError(t, err)

	_, err = f.svc.CreateBooking(context.Background(), principal, "s1", proofInput())
	assert.ErrorIs(t, err, ErrAlreadyBooked)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, 2, f.slots(t, "s1"))
}

func TestCreateBookingReleasesSlotWhenPaymentFails(t *testing.T) {
	f := newFixture(t)
	f.seedSeminar(t, "s1", 500, 3)
	principal := f.seedUser(t, "u1")
	f.gateway.err = errors.New("card network down")

	_, err := f.svc.CreateBooking(context.Background(), principal, "s1", models.PaymentInput{})
	require.Error(t, err)
	assert.Equal(t, KindPaymentGateway, KindOf(err))
	assert.Equal(t, 3, f.slots(t, "s1"))
	assert.Empty(t, f.notifier.sent)
}

func TestCreateBookingReleasesSlotWhenSaveFails(t *testing.T) {
	f := newFixture(t)
	f.seedSeminar(t, "s1", 500, 3)
	principal := f.seedUser(t, "u1")
	f.svc.Bookings = failingCreateRepo{BookingRepository: f.store.Bookings()}

	_, err := f.svc.CreateBooking(context.Background(), principal, "s1", proofInput())
	require.Error(t, err)
	assert.Equal(t, KindStorage, KindOf(err))
	assert.Equal(t, 3, f.slots(t, "s1"))
}

func TestCreateBookingImageStoreFailure(t *testing.T) {
	f := newFixture(t)
	f.seedSeminar(t, "s1", 500, 3)
	principal := f.seedUser(t, "u1")
	f.images.err = errors.New("upstream timeout")

	_, err := f.svc.CreateBooking(context.Background(), principal, "s1", proofInput())
	require.Error(t, err)
	assert.Equal(t, KindImageStore, KindOf(err))
	assert.Equal(t, 3, f.slots(t, "s1"))
}

func TestNotificationFailureDoesNotFailBooking(t *testing.T) {
	f := newFixture(t)
	f.seedSeminar(t, "s1", 500, 3)
	principal := f.seedUser(t, "u1")
	f.notifier.err = errors.New("mail provider down")

	result, err := f.svc.CreateBooking(context.Background(), principal, "s1", proofInput())
	require.NoError(t, err)
	assert.Equal(t, 2, f.slots(t, "s1"))

	updated, err := f.svc.UpdateBookingStatus(context.Background(), result.Booking.ID, "rejected")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentRejected, updated.PaymentStatus)
	assert.Equal(t, 3, f.slots(t, "s1"))
}

func TestConcurrentCreateOnLastSlot(t *testing.T) {
	f := newFixture(t)
	f.seedSeminar(t, "s1", 500, 1)

	const n = 20
	principals := make([]models.Principal, n)
	for i := range principals {
		principals[i] = f.seedUser(t, fmt.Sprintf("u%d", i))
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		full      int
	)
	for _, p := range principals {
		wg.Add(1)
		go func(p models.Principal) {
			defer wg.Done()
			_, err := f.svc.CreateBooking(context.Background(), p, "s1", models.PaymentInput{})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrSeminarFull):
				full++
			}
		}(p)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, n-1, full)
	assert.Equal(t, 0, f.slots(t, "s1"))
}

func TestUpdateBookingStatusTransitions(t *testing.T) {
	tests := []struct {
		name      string
		steps     []string
		wantSlots int
	}{
		{"pending to confirmed keeps slot", []string{"confirmed"}, 2},
		{"confirmed to confirmed is a no-op", []string{"confirmed", "confirmed"}, 2},
		{"pending to rejected releases", []string{"rejected"}, 3},
		{"rejected twice releases once", []string{"rejected", "rejected"}, 3},
		{"rejected to pending reserves", []string{"rejected", "pending"}, 2},
		{"confirmed to pending keeps slot", []string{"confirmed", "pending"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.seedSeminar(t, "s1", 500, 3)
			principal := f.seedUser(t, "u1")

			result, err := f.svc.CreateBooking(context.Background(), principal, "s1", proofInput())
			require.NoError(t, err)

			for _, step := range tt.steps {
				_, err := f.svc.UpdateBookingStatus(context.Background(), result.Booking.ID, step)
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantSlots, f.slots(t, "s1"))
		})
	}
}

func TestUpdateBookingStatusInvalid(t *testing.T) {
	f := newFixture(t)
	f.seedSeminar(t, "s1", 500, 3)
	principal := f.seedUser(t, "u1")

	result, err := f.svc.CreateBooking(context.Background(), principal, "s1", proofInput())
	require.NoError(t, err)
	sentBefore := len(f.notifier.sent)

	_, err = f.svc.UpdateBookingStatus(context.Background(), result.Booking.ID, "cancelled")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, KindInvalidStatus, KindOf(err))

	stored, err := f.store.Bookings().GetByID(context.Background(), result.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, stored.PaymentStatus)
	assert.Equal(t, 2, f.slots(t, "s1"))
	assert.Len(t, f.notifier.sent, sentBefore)
}

func TestUpdateBookingStatusReserveOnFullSeminar(t *testing.T) {
	f := newFixture(t)
	f.seedSeminar(t, "s1", 500, 1)
	first := f.seedUser(t, "u1")
	second := f.seedUser(t, "u2")
	ctx := context.Background()

	booked, err := f.svc.CreateBooking(ctx, first, "s1", proofInput())
	require.NoError(t, err)
	_, err = f.svc.UpdateBookingStatus(ctx, booked.Booking.ID, "rejected")
	require.NoError(t, err)

	_, err = f.svc.CreateBooking(ctx, second, "s1", proofInput())
	require.NoError(t, err)

	_, err = f.svc.UpdateBookingStatus(ctx, booked.Booking.ID, "confirmed")
	assert.ErrorIs(t, err, ErrSeminarFull)

	stored, err := f.store.Bookings().GetByID(ctx, booked.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentRejected, stored.PaymentStatus)
	assert.Equal(t, 0, f.slots(t, "s1"))
}

func TestUpdateBookingStatusNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.UpdateBookingStatus(context.Background(), "missing", "confirmed")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestConcurrentRejectReleasesOnce(t *testing.T) {
	f := newFixture(t)
	f.seedSeminar(t, "s1", 500, 3)
	principal := f.seedUser(t, "u1")

	result, err := f.svc.CreateBooking(context.Background(), principal, "s1", proofInput())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.svc.UpdateBookingStatus(context.Background(), result.Booking.ID, "rejected")
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, f.slots(t, "s1"))
}

func TestGetBookingHidesOtherUsers(t *testing.T) {
	f := newFixture(t)
	f.seedSeminar(t, "s1", 500, 3)
	owner := f.seedUser(t, "u1")
	other := f.seedUser(t, "u2")
	ctx := context.Background()

	result, err := f.svc.CreateBooking(ctx, owner, "s1", proofInput())
	require.NoError(t, err)

	_, err = f.svc.GetBooking(ctx, owner, result.Booking.ID)
	assert.NoError(t, err)

	_, err = f.svc.GetBooking(ctx, other, result.Booking.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = f.svc.GetBooking(ctx, models.Principal{UserID: "admin", Role: models.RoleAdmin}, result.Booking.ID)
	assert.NoError(t, err)

	mine, err := f.svc.ListBookingsForUser(ctx, owner.UserID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = f.svc.ListBookings(ctx, models.BookingFilter{Status: "cancelled"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestConcurrentCreateSameUserHoldsOneSlot(t *testing.T) {
	f := newFixture(t)
	f.gateway.delay = 20 * time.Millisecond
	f.seedSeminar(t, "s1", 500, 10)
	principal := f.seedUser(t, "u1")

	const n = 5
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		duplicate int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.CreateBooking(context.Background(), principal, "s1", models.PaymentInput{})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrAlreadyBooked):
				duplicate++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, n-1, duplicate)
	assert.Equal(t, 9, f.slots(t, "s1"))

	active, err := f.store.Bookings().List(context.Background(), models.BookingFilter{UserID: "u1", SeminarID: "s1"})
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestReopenRejectedBookingWhileAnotherIsActive(t *testing.T) {
	f := newFixture(t)
	f.seedSeminar(t, "s1", 500, 5)
	principal := f.seedUser(t, "u1")
	ctx := context.Background()

	first, err := f.svc.CreateBooking(ctx, principal, "s1", proofInput())
	require.NoError(t, err)
	_, err = f.svc.UpdateBookingStatus(ctx, first.Booking.ID, "rejected")
	require.NoError(t, err)

	_, err = f.svc.CreateBooking(ctx, principal, "s1", proofInput())
	require.NoError(t, err)
	assert.Equal(t, 4, f.slots(t, "s1"))

	_, err = f.svc.UpdateBookingStatus(ctx, first.Booking.ID, "confirmed")
	assert.ErrorIs(t, err, ErrAlreadyBooked)
	assert.Equal(t, KindConflict, KindOf(err))

	stored, err := f.store.Bookings().GetByID(ctx, first.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentRejected, stored.PaymentStatus)
	assert.Equal(t, 4, f.slots(t, "s1"))
}

func TestNoOpStatusUpdateNotifiesWithoutEvent(t *testing.T) {
	f := newFixture(t)
	f.seedSeminar(t, "s1", 500, 3)
	principal := f.seedUser(t, "u1")
	ctx := context.Background()

	result, err := f.svc.CreateBooking(ctx, principal, "s1", proofInput())
	require.NoError(t, err)
	_, err = f.svc.UpdateBookingStatus(ctx, result.Booking.ID, "confirmed")
	require.NoError(t, err)
	_, err = f.svc.UpdateBookingStatus(ctx, result.Booking.ID, "confirmed")
	require.NoError(t, err)

	assert.Equal(t, []models.NotificationTemplate{
		models.TemplateBookingReceived,
		models.TemplateBookingConfirmed,
		models.TemplateBookingConfirmed,
	}, f.notifier.templates())
	assert.Equal(t, []string{
		events.RoutingBookingCreated,
		events.RoutingBookingStatusChanged,
	}, f.publisher.keys)
	assert.Equal(t, 2, f.slots(t, "s1"))
}

func TestFreeSeminarSkipsPaymentIntent(t *testing.T) {
	f := newFixture(t)
	f.seedSeminar(t, "free", 0, 2)
	principal := f.seedUser(t, "u1")

	result, err := f.svc.CreateBooking(context.Background(), principal, "free", models.PaymentInput{})
	require.NoError(t, err)
	assert.Empty(t, result.ClientSecret)
	assert.Empty(t, result.Booking.PaymentIntentID)
	assert.Empty(t, f.gateway.amounts)
	assert.Equal(t, models.PaymentPending, result.Booking.PaymentStatus)
	assert.Equal(t, 1, f.slots(t, "free"))
}
