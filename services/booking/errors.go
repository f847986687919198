package booking

import (
	"errors"
	"fmt"
)

// ErrorKind classifies booking failures so the HTTP layer can map them to status codes.
type ErrorKind string

const (
	KindNotFound          ErrorKind = "notFound"
	KindCapacityExhausted ErrorKind = "capacityExhausted"
	KindInvalidStatus     ErrorKind = "invalidStatus"
	KindConflict          ErrorKind = "conflict"
	KindPaymentGateway    ErrorKind = "paymentGateway"
	KindStorage           ErrorKind = "storage"
	KindImageStore        ErrorKind = "imageStore"
)

// BookingError is returned by every BookingService operation that fails.
type BookingError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *BookingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

// Is matches the sentinels below by kind and message, so errors.Is works on
// freshly built errors that carry a cause.
func (e *BookingError) Is(target error) bool {
	t, ok := target.(*BookingError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

var (
	ErrSeminarNotFound  = &BookingError{Kind: KindNotFound, Message: "seminar not found"}
	ErrUserNotFound     = &BookingError{Kind: KindNotFound, Message: "user not found"}
	ErrBookingNotFound  = &BookingError{Kind: KindNotFound, Message: "booking not found"}
	ErrSeminarFull      = &BookingError{Kind: KindCapacityExhausted, Message: "no slots available for this seminar"}
	ErrInvalidStatus    = &BookingError{Kind: KindInvalidStatus, Message: "payment status must be one of pending, confirmed, rejected"}
	ErrAlreadyBooked    = &BookingError{Kind: KindConflict, Message: "user already holds a booking for this seminar"}
	ErrConcurrentUpdate = &BookingError{Kind: KindConflict, Message: "booking status changed concurrently, retry"}
)

func newError(kind ErrorKind, msg string, err error) *BookingError {
	return &BookingError{Kind: kind, Message: msg, Err: err}
}

func storageError(msg string, err error) *BookingError {
	return newError(KindStorage, msg, err)
}

// KindOf returns the kind of a BookingError anywhere in err's chain, or
// KindStorage for anything else.
func KindOf(err error) ErrorKind {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindStorage
}
