package seminar

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"seminarly/database"
	"seminarly/models"
	"seminarly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultSeminarService) CreateSeminar(ctx context.Context, input models.SeminarInput) (*models.Seminar, error) {
	if !utils.ValidSlotWindow(input.StartTime, input.EndTime) {
		return nil, ErrInvalidWindow
	}

	seminar := &models.Seminar{
		ID:             uuid.New().String(),
		Title:          strings.TrimSpace(input.Title),
		Description:    input.Description,
		Speaker:        input.Speaker,
		Date:           input.Date,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		Venue:          strings.TrimSpace(input.Venue),
		Fee:            input.Fee,
		SlotsAvailable: input.SlotsAvailable,
	}
	if err := s.Repo.Create(ctx, seminar); err != nil {
		return nil, fmt.Errorf("failed to create seminar: %w", err)
	}

	utils.GetLogger().Info("seminar created", zap.String("seminarID", seminar.ID), zap.Int("slots", seminar.SlotsAvailable))
	return seminar, nil
}

func (s *DefaultSeminarService) GetSeminar(ctx context.Context, id string) (*models.Seminar, error) {
	seminar, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrSeminarNotFound
		}
		return nil, fmt.Errorf("failed to fetch seminar: %w", err)
	}
	return seminar, nil
}

func (s *DefaultSeminarService) ListSeminars(ctx context.Context) ([]models.Seminar, error) {
	seminars, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list seminars: %w", err)
	}
	return seminars, nil
}

// UpdateSeminar applies the non-nil fields of req. Capacity only changes through bookings.
func (s *DefaultSeminarService) UpdateSeminar(ctx context.Context, id string, req models.SeminarUpdateRequest) (*models.Seminar, error) {
	current, err := s.GetSeminar(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{"updatedAt": time.Now()}
	start, end := current.StartTime, current.EndTime

	if req.Title != nil {
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Speaker != nil {
		fields["speaker"] = *req.Speaker
	}
	if req.Date != nil {
		fields["date"] = *req.Date
	}
	if req.StartTime != nil {
		start = *req.StartTime
		fields["startTime"] = start
	}
	if req.EndTime != nil {
		end = *req.EndTime
		fields["endTime"] = end
	}
	if req.Venue != nil {
		fields["venue"] = strings.TrimSpace(*req.Venue)
	}
	if req.Fee != nil {
		fields["fee"] = *req.Fee
	}

	if !utils.ValidSlotWindow(start, end) {
		return nil, ErrInvalidWindow
	}

	if err := s.Repo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrSeminarNotFound
		}
		return nil, fmt.Errorf("failed to update seminar: %w", err)
	}
	return s.GetSeminar(ctx, id)
}

// DeleteSeminar removes a seminar that no longer has bookings holding a slot.
// The guard and the delete are separate writes, so a booking stored in
// between is reported after the fact rather than prevented.
func (s *DefaultSeminarService) DeleteSeminar(ctx context.Context, id string) error {
	if _, err := s.GetSeminar(ctx, id); err != nil {
		return err
	}

	held, err := s.heldBookings(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check seminar bookings: %w", err)
	}
	if len(held) > 0 {
		return ErrSeminarHasBookings
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrSeminarNotFound
		}
		return fmt.Errorf("failed to delete seminar: %w", err)
	}

	logger := utils.GetLogger()
	logger.Info("seminar deleted", zap.String("seminarID", id))

	if orphaned, err := s.heldBookings(ctx, id); err != nil {
		logger.Warn("failed to re-check bookings of deleted seminar", zap.String("seminarID", id), zap.Error(err))
	} else if len(orphaned) > 0 {
		ids := make([]string, 0, len(orphaned))
		for _, b := range orphaned {
			ids = append(ids, b.ID)
		}
		logger.Error("deleted seminar still has active bookings",
			zap.String("seminarID", id), zap.Strings("bookingIDs", ids))
	}
	return nil
}

// heldBookings returns the pending and confirmed bookings of a seminar.
func (s *DefaultSeminarService) heldBookings(ctx context.Context, id string) ([]models.Booking, error) {
	if s.Bookings == nil {
		return nil, nil
	}
	var out []models.Booking
	for _, status := range []models.PaymentStatus{models.PaymentPending, models.PaymentConfirmed} {
		bookings, err := s.Bookings.List(ctx, models.BookingFilter{SeminarID: id, Status: status})
		if err != nil {
			return nil, err
		}
		out = append(out, bookings...)
	}
	return out, nil
}
