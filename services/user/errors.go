package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError is a client input problem, such as a weak password.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}
