package seminar

import (
	"context"
	"errors"

	bookingRepo "seminarly/database/repository/booking"
	seminarRepo "seminarly/database/repository/seminar"
	"seminarly/models"
)

var (
	ErrSeminarNotFound    = errors.New("seminar not found")
	ErrInvalidWindow      = errors.New("startTime must be before endTime")
	ErrSeminarHasBookings = errors.New("seminar still has pending or confirmed bookings")
)

type SeminarService interface {
	CreateSeminar(ctx context.Context, input models.SeminarInput) (*models.Seminar, error)
	GetSeminar(ctx context.Context, id string) (*models.Seminar, error)
	ListSeminars(ctx context.Context) ([]models.Seminar, error)
	UpdateSeminar(ctx context.Context, id string, req models.SeminarUpdateRequest) (*models.Seminar, error)
	DeleteSeminar(ctx context.Context, id string) error
}

type DefaultSeminarService struct {
	Repo     seminarRepo.SeminarRepository
	Bookings bookingRepo.BookingRepository
}

func NewDefaultSeminarService(repo seminarRepo.SeminarRepository, bookings bookingRepo.BookingRepository) *DefaultSeminarService {
	return &DefaultSeminarService{Repo: repo, Bookings: bookings}
}
