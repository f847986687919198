package memoryRepo

import (
	"context"
	"sort"

	"seminarly/models"
)

type AnalyticsRepo struct {
	s *Store
}

func (r *AnalyticsRepo) BookingsByStatus(_ context.Context) (map[models.PaymentStatus]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	counts := map[models.PaymentStatus]int64{
		models.PaymentPending:   0,
		models.PaymentConfirmed: 0,
		models.PaymentRejected:  0,
	}
	for _, booking := range r.s.bookings {
		counts[booking.PaymentStatus]++
	}
	return counts, nil
}

func (r *AnalyticsRepo) ConfirmedRevenue(_ context.Context) (float64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var total float64
	for _, booking := range r.s.bookings {
		if booking.PaymentStatus == models.PaymentConfirmed {
			total += booking.Amount
		}
	}
	return total, nil
}

func (r *AnalyticsRepo) PerSeminar(_ context.Context) ([]models.SeminarBookingStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	bySeminar := make(map[string]*models.SeminarBookingStats)
	for _, booking := range r.s.bookings {
		row, ok := bySeminar[booking.SeminarID]
		if !ok {
			row = &models.SeminarBookingStats{SeminarID: booking.SeminarID}
			if seminar, found := r.s.seminars[booking.SeminarID]; found {
				row.Title = seminar.Title
				row.SlotsAvailable = seminar.SlotsAvailable
			}
			bySeminar[booking.SeminarID] = row
		}
		switch booking.PaymentStatus {
		case models.PaymentPending:
			row.Pending++
		case models.PaymentConfirmed:
			row.Confirmed++
		case models.PaymentRejected:
			row.Rejected++
		}
	}

	out := make([]models.SeminarBookingStats, 0, len(bySeminar))
	for _, row := range bySeminar {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SeminarID < out[j].SeminarID })
	return out, nil
}
