package seminar

import (
	"context"
	"testing"

	bookingRepo "seminarly/database/repository/booking"
	memoryRepo "seminarly/database/repository/memory"
	seminarRepo "seminarly/database/repository/seminar"
	"seminarly/models"
	"seminarly/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newService() (*DefaultSeminarService, *memoryRepo.Store) {
	store := memoryRepo.NewStore()
	return NewDefaultSeminarService(store.Seminars(), store.Bookings()), store
}

func validInput() models.SeminarInput {
	return models.SeminarInput{
		Title: "Practical Go", Date: "2026-11-02", StartTime: "10:00", EndTime: "12:00",
		Venue: "Hall A", Fee: 500, SlotsAvailable: 3,
	}
}

func TestCreateSeminar(t *testing.T) {
	svc, _ := newService()

	created, err := svc.CreateSeminar(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 3, created.SlotsAvailable)

	bad := validInput()
	bad.StartTime, bad.EndTime = "14:00", "09:00"
	_, err = svc.CreateSeminar(context.Background(), bad)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestListSeminarsOrderedByDate(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	later := validInput()
	later.Date = "2026-12-01"
	_, err := svc.CreateSeminar(ctx, later)
	require.NoError(t, err)
	_, err = svc.CreateSeminar(ctx, validInput())
	require.NoError(t, err)

	seminars, err := svc.ListSeminars(ctx)
	require.NoError(t, err)
	require.Len(t, seminars, 2)
	assert.Equal(t, "2026-11-02", seminars[0].Date)
	assert.Equal(t, "2026-12-01", seminars[1].Date)
}

func TestUpdateSeminar(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	created, err := svc.CreateSeminar(ctx, validInput())
	require.NoError(t, err)

	title := "Advanced Go"
	fee := 750.0
	updated, err := svc.UpdateSeminar(ctx, created.ID, models.SeminarUpdateRequest{Title: &title, Fee: &fee})
	require.NoError(t, err)
	assert.Equal(t, "Advanced Go", updated.Title)
	assert.Equal(t, 750.0, updated.Fee)
	assert.Equal(t, 3, updated.SlotsAvailable)

	end := "09:00"
	_, err = svc.UpdateSeminar(ctx, created.ID, models.SeminarUpdateRequest{EndTime: &end})
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = svc.UpdateSeminar(ctx, "missing", models.SeminarUpdateRequest{Title: &title})
	assert.ErrorIs(t, err, ErrSeminarNotFound)
}

func TestDeleteSeminarWithHeldBookings(t *testing.T) {
	svc, store := newService()
	ctx := context.Background()

	created, err := svc.CreateSeminar(ctx, validInput())
	require.NoError(t, err)
	require.NoError(t, store.Bookings().Create(ctx, &models.Booking{
		ID: "b1", UserID: "u1", SeminarID: created.ID, PaymentStatus: models.PaymentPending,
	}))

	assert.ErrorIs(t, svc.DeleteSeminar(ctx, created.ID), ErrSeminarHasBookings)

	_, err = store.Bookings().CompareAndSetStatus(ctx, "b1", models.PaymentPending, models.PaymentRejected)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteSeminar(ctx, created.ID))

	_, err = svc.GetSeminar(ctx, created.ID)
	assert.ErrorIs(t, err, ErrSeminarNotFound)
}

// bookingDuringDelete stores a held booking just before the seminar is removed.
type bookingDuringDelete struct {
	seminarRepo.SeminarRepository
	bookings bookingRepo.BookingRepository
}

func (r bookingDuringDelete) Delete(ctx context.Context, id string) error {
	if err := r.bookings.Create(ctx, &models.Booking{
		ID: "late", UserID: "u9", SeminarID: id, PaymentStatus: models.PaymentPending,
	}); err != nil {
		return err
	}
	return r.SeminarRepository.Delete(ctx, id)
}

func TestDeleteSeminarReportsBookingsStoredDuringDelete(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	previous := utils.Logger
	utils.Logger = zap.New(core)
	t.Cleanup(func() { utils.Logger = previous })

	store := memoryRepo.NewStore()
	svc := NewDefaultSeminarService(
		bookingDuringDelete{SeminarRepository: store.Seminars(), bookings: store.Bookings()},
		store.Bookings(),
	)
	ctx := context.Background()

	created, err := svc.CreateSeminar(ctx, validInput())
	require.NoError(t, err)
	require.NoError(t, svc.DeleteSeminar(ctx, created.ID))

	entries := logs.FilterMessage("deleted seminar still has active bookings").All()
	require.Len(t, entries, 1)
	assert.Equal(t, created.ID, entries[0].ContextMap()["seminarID"])
	assert.Equal(t, []interface{}{"late"}, entries[0].ContextMap()["bookingIDs"])
}
