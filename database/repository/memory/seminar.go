package memoryRepo

import (
	"context"
	"time"

	"seminarly/database"
	"seminarly/models"
)

type SeminarRepo struct {
	s *Store
}

func (r *SeminarRepo) GetByID(_ context.Context, id string) (*models.Seminar, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	seminar, ok := r.s.seminars[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &seminar, nil
}

func (r *SeminarRepo) GetAll(_ context.Context) ([]models.Seminar, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return sortedSeminars(r.s.seminars), nil
}

func (r *SeminarRepo) Create(_ context.Context, seminar *models.Seminar) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.seminars[seminar.ID]; exists {
		return database.ErrDuplicate
	}
	now := time.Now()
	seminar.CreatedAt = now
	seminar.UpdatedAt = now
	r.s.seminars[seminar.ID] = *seminar
	return nil
}

func (r *SeminarRepo) Update(_ context.Context, id string, fields map[string]any) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	seminar, ok := r.s.seminars[id]
	if !ok {
		return database.ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "title":
			seminar.Title, _ = value.(string)
		case "description":
			seminar.Description, _ = value.(string)
		case "speaker":
			seminar.Speaker, _ = value.(string)
		case "date":
			seminar.Date, _ = value.(string)
		case "startTime":
			seminar.StartTime, _ = value.(string)
		case "endTime":
			seminar.EndTime, _ = value.(string)
		case "venue":
			seminar.Venue, _ = value.(string)
		case "fee":
			seminar.Fee, _ = value.(float64)
		}
	}
	seminar.UpdatedAt = time.Now()
	r.s.seminars[id] = seminar
	return nil
}

func (r *SeminarRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.seminars[id]; !ok {
		return database.ErrNotFound
	}
	delete(r.s.seminars, id)
	return nil
}

func (r *SeminarRepo) ReserveSlot(_ context.Context, id string) (*models.Seminar, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	seminar, ok := r.s.seminars[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	if seminar.SlotsAvailable <= 0 {
		return nil, database.ErrNoSlotsLeft
	}
	seminar.SlotsAvailable--
	seminar.UpdatedAt = time.Now()
	r.s.seminars[id] = seminar
	return &seminar, nil
}

func (r *SeminarRepo) ReleaseSlot(_ context.Context, id string) (*models.Seminar, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	seminar, ok := r.s.seminars[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	seminar.SlotsAvailable++
	seminar.UpdatedAt = time.Now()
	r.s.seminars[id] = seminar
	return &seminar, nil
}

func (r *SeminarRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.seminars)), nil
}
