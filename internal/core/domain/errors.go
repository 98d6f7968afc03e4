package domain

import "errors"

var (
	ErrUserExists         = errors.New("username already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrUnauthorized covers every bearer token failure: bad signature, expiry,
	// missing subject and unknown user all collapse into it.
	ErrUnauthorized = errors.New("could not validate credentials")
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrCompanyNotFound = errors.New("company not found")
	ErrDriveNotFound   = errors.New("drive not found")
	ErrOfferNotFound   = errors.New("offer not found")
)

// IsNotFound reports whether err is one of the entity lookup misses.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrStudentNotFound) ||
		errors.Is(err, ErrCompanyNotFound) ||
		errors.Is(err, ErrDriveNotFound) ||
		errors.Is(err, ErrOfferNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// ErrInvalidInput is returned when a service receives fields that fail its own
// checks (the HTTP layer validates first, so this is mostly reached from the CLI
// and tests).
var ErrInvalidInput = errors.New("invalid input")
