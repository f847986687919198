package booking

import (
	"context"
	"errors"

	"seminarly/database"
	seminarRepo "seminarly/database/repository/seminar"
	"seminarly/models"
)

// SlotLedger moves seminar capacity. Both operations are single atomic
// storage updates; the ledger never reads and then writes.
type SlotLedger struct {
	Seminars seminarRepo.SeminarRepository
}

func NewSlotLedger(repo seminarRepo.SeminarRepository) *SlotLedger {
	return &SlotLedger{Seminars: repo}
}

// Reserve takes one slot, failing with ErrSeminarFull when none are left.
func (l *SlotLedger) Reserve(ctx context.Context, seminarID string) (*models.Seminar, error) {
	seminar, err := l.Seminars.ReserveSlot(ctx, seminarID)
	switch {
	case err == nil:
		return seminar, nil
	case errors.Is(err, database.ErrNoSlotsLeft):
		return nil, ErrSeminarFull
	case errors.Is(err, database.ErrNotFound):
		return nil, ErrSeminarNotFound
	default:
		return nil, storageError("failed to reserve slot", err)
	}
}

// Release gives one slot back.
func (l *SlotLedger) Release(ctx context.Context, seminarID string) (*models.Seminar, error) {
	seminar, err := l.Seminars.ReleaseSlot(ctx, seminarID)
	switch {
	case err == nil:
		return seminar, nil
	case errors.Is(err, database.ErrNotFound):
		return nil, ErrSeminarNotFound
	default:
		return nil, storageError("failed to release slot", err)
	}
}

// Apply performs the ledger side of a planned transition.
func (l *SlotLedger) Apply(ctx context.Context, seminarID string, delta LedgerDelta) error {
	var err error
	switch delta {
	case DeltaReserve:
		_, err = l.Reserve(ctx, seminarID)
	case DeltaRelease:
		_, err = l.Release(ctx, seminarID)
	}
	return err
}
