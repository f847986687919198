// Package memoryRepo keeps every collection in process memory. It backs
// STORE_DRIVER=memory and the service tests.
package memoryRepo

import (
	"sort"
	"sync"

	analyticsRepo "seminarly/database/repository/analytics"
	bookingRepo "seminarly/database/repository/booking"
	seminarRepo "seminarly/database/repository/seminar"
	userRepo "seminarly/database/repository/user"
	"seminarly/models"
)

// Store holds all collections behind one lock so slot counters and booking
// statuses change atomically with respect to each other.
type Store struct {
	mu       sync.Mutex
	seminars map[string]models.Seminar
	bookings map[string]models.Booking
	users    map[string]models.User
}

func NewStore() *Store {
	return &Store{
		seminars: make(map[string]models.Seminar),
		bookings: make(map[string]models.Booking),
		users:    make(map[string]models.User),
	}
}

func (s *Store) Seminars() seminarRepo.SeminarRepository       { return &SeminarRepo{s: s} }
func (s *Store) Bookings() bookingRepo.BookingRepository       { return &BookingRepo{s: s} }
func (s *Store) Users() userRepo.UserRepository                { return &UserRepo{s: s} }
func (s *Store) Analytics() analyticsRepo.AnalyticsRepository { return &AnalyticsRepo{s: s} }

func sortedSeminars(m map[string]models.Seminar) []models.Seminar {
	out := make([]models.Seminar, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].ID < out[j].ID
	})
	return out
}
