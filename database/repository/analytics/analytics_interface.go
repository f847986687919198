package analyticsRepo

import (
	"context"

	"seminarly/models"
)

// AnalyticsRepository computes read-only aggregates for the admin dashboard.
type AnalyticsRepository interface {
	// BookingsByStatus counts bookings per payment status.
	BookingsByStatus(ctx context.Context) (map[models.PaymentStatus]int64, error)
	// ConfirmedRevenue sums the amount of confirmed bookings.
	ConfirmedRevenue(ctx context.Context) (float64, error)
	// PerSeminar counts bookings per seminar and status, joined with the seminar's title and remaining slots.
	PerSeminar(ctx context.Context) ([]models.SeminarBookingStats, error)
}
