package domain

import "errors"

// Error kinds of the service. Handlers map these deterministically to HTTP
// statuses; anything outside this set is reported as an internal error.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicatePlate = errors.New("duplicate license plate")
	ErrInvalidInput   = errors.New("invalid input")
	ErrWrongPassword  = errors.New("current password is incorrect")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("invalid token")
)
