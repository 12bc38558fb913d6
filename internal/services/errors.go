package services

import "errors"

// Error taxonomy returned to the session layer. Callers match with
// errors.Is and re-prompt the operator; none of these are fatal to the
// process.
var (
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrNotFound           = errors.New("not found")
	ErrFlightNotFound     = errors.New("flight not found")
	ErrSeatUnavailable    = errors.New("seat unavailable")
	ErrAlreadyCancelled   = errors.New("booking already cancelled")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
