package models

import "errors"

// Domain errors shared across layers. Handlers map these onto HTTP status
// codes; repositories and usecases return them wrapped with context.
var (
	ErrValidation        = errors.New("invalid request")
	ErrNotFound          = errors.New("not found")
	ErrInvalidOTP        = errors.New("invalid or expired verification code")
	ErrInvalidEnvelope   = errors.New("invalid or expired verification envelope")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid ride status transition")
)
