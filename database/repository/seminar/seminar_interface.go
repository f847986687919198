package seminarRepo

import (
	"context"

	"seminarly/models"
)

// SeminarRepository defines methods for seminar data access.
type SeminarRepository interface {
	// GetByID retrieves a seminar by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Seminar, error)
	// GetAll retrieves all seminars ordered by date and start time.
	GetAll(ctx context.Context) ([]models.Seminar, error)
	// Create inserts a new seminar record.
	Create(ctx context.Context, seminar *models.Seminar) error
	// Update applies a partial set of fields to a seminar. slotsAvailable is never accepted here.
	Update(ctx context.Context, id string, fields map[string]any) error
	// Delete removes a seminar record by its ID.
	Delete(ctx context.Context, id string) error
	// ReserveSlot atomically decrements slotsAvailable when it is above zero.
	// It returns database.ErrNoSlotsLeft when the seminar is full.
	ReserveSlot(ctx context.Context, id string) (*models.Seminar, error)
	// ReleaseSlot atomically increments slotsAvailable.
	ReleaseSlot(ctx context.Context, id string) (*models.Seminar, error)
	// Count returns the number of seminars.
	Count(ctx context.Context) (int64, error)
}
