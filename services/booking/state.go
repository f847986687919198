package booking

import (
	"fmt"
	"strings"

	"seminarly/models"
)

// LedgerDelta is the slot movement a status transition requires.
type LedgerDelta int

const (
	DeltaNone LedgerDelta = iota
	DeltaReserve
	DeltaRelease
)

func (d LedgerDelta) String() string {
	switch d {
	case DeltaReserve:
		return "reserve"
	case DeltaRelease:
		return "release"
	default:
		return "none"
	}
}

// Transition is the outcome of planning a status change.
type Transition struct {
	From     models.PaymentStatus
	To       models.PaymentStatus
	Delta    LedgerDelta
	Template models.NotificationTemplate
	// NoOp is set when From equals To; nothing is written.
	NoOp bool
}

// ParsePaymentStatus accepts only the three known statuses.
func ParsePaymentStatus(raw string) (models.PaymentStatus, error) {
	switch models.PaymentStatus(strings.TrimSpace(raw)) {
	case models.PaymentPending:
		return models.PaymentPending, nil
	case models.PaymentConfirmed:
		return models.PaymentConfirmed, nil
	case models.PaymentRejected:
		return models.PaymentRejected, nil
	}
	return "", newError(KindInvalidStatus, ErrInvalidStatus.Message, fmt.Errorf("got %q", raw))
}

// TemplateFor returns the notification sent when a booking enters status.
func TemplateFor(status models.PaymentStatus) (models.NotificationTemplate, error) {
	switch status {
	case models.PaymentConfirmed:
		return models.TemplateBookingConfirmed, nil
	case models.PaymentRejected:
		return models.TemplateBookingRejected, nil
	case models.PaymentPending:
		return models.TemplateBookingPending, nil
	}
	return "", newError(KindInvalidStatus, ErrInvalidStatus.Message, fmt.Errorf("no template for %q", status))
}

// Plan computes the ledger delta for moving a booking from current to requested.
// A slot is held while the booking is pending or confirmed, so only crossings
// of that boundary touch the ledger.
func Plan(current, requested models.PaymentStatus) (Transition, error) {
	tmpl, err := TemplateFor(requested)
	if err != nil {
		return Transition{}, err
	}

	t := Transition{From: current, To: requested, Template: tmpl}
	if current == requested {
		t.NoOp = true
		return t, nil
	}

	switch {
	case current.HoldsSlot() && !requested.HoldsSlot():
		t.Delta = DeltaRelease
	case !current.HoldsSlot() && requested.HoldsSlot():
		t.Delta = DeltaReserve
	default:
		t.Delta = DeltaNone
	}
	return t, nil
}
