package models

// NotificationTemplate names an outbound email template.
type NotificationTemplate string

const (
	TemplateBookingReceived  NotificationTemplate = "booking-received"
	TemplateBookingConfirmed NotificationTemplate = "booking-confirmed"
	TemplateBookingRejected  NotificationTemplate = "booking-rejected"
	TemplateBookingPending   NotificationTemplate = "booking-pending"
)

// Notification is one message to a single recipient about a booking.
type Notification struct {
	Template  NotificationTemplate `json:"template"`
	Recipient string               `json:"recipient"`
	Seminar   Seminar              `json:"seminar"`
	User      User                 `json:"user"`
	Booking   Booking              `json:"booking"`
}
