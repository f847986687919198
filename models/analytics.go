package models

import "time"

// SeminarBookingStats counts bookings for one seminar.
type SeminarBookingStats struct {
	SeminarID      string `bson:"_id" json:"seminarId"`
	Title          string `bson:"title,omitempty" json:"title,omitempty"`
	Pending        int    `bson:"pending" json:"pending"`
	Confirmed      int    `bson:"confirmed" json:"confirmed"`
	Rejected       int    `bson:"rejected" json:"rejected"`
	SlotsAvailable int    `bson:"slotsAvailable,omitempty" json:"slotsAvailable"`
}

// AnalyticsSummary is the admin dashboard snapshot.
type AnalyticsSummary struct {
	TotalUsers       int64                   `json:"totalUsers"`
	TotalSeminars    int64                   `json:"totalSeminars"`
	TotalBookings    int64                   `json:"totalBookings"`
	BookingsByStatus map[PaymentStatus]int64 `json:"bookingsByStatus"`
	ConfirmedRevenue float64                 `json:"confirmedRevenue"`
	PerSeminar       []SeminarBookingStats   `json:"perSeminar"`
	GeneratedAt      time.Time               `json:"generatedAt"`
}

// BookingEvent is published when a booking is created or changes status.
type BookingEvent struct {
	BookingID  string        `json:"bookingId"`
	UserID     string        `json:"userId"`
	SeminarID  string        `json:"seminarId"`
	From       PaymentStatus `json:"from,omitempty"`
	Status     PaymentStatus `json:"status"`
	Amount     float64       `json:"amount"`
	OccurredAt time.Time     `json:"occurredAt"`
}
