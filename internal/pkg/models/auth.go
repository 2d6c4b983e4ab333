package models

import "github.com/google/uuid"

// RegisterRequest represents a phone registration request
type RegisterRequest struct {
	MSISDN string `json:"msisdn" validate:"required"`
}

// RegisterResponse acknowledges an issued verification code
type RegisterResponse struct {
	MSISDN    string `json:"msisdn"`
	ExpiresIn int64  `json:"expires_in"` // seconds until the code expires
}

// VerifyRequest represents a phone OTP verification request
type VerifyRequest struct {
	MSISDN string `json:"msisdn" validate:"required"`
	Code   string `json:"code" validate:"required"`
}

// EmailOTPRequest represents an email verification request carrying the
// profile fields to apply once the code is confirmed.
type EmailOTPRequest struct {
	Email        string `json:"email" validate:"required"`
	FullName     string `json:"fullname"`
	VehicleType  string `json:"vehicle_type,omitempty"`
	VehiclePlate string `json:"vehicle_plate,omitempty"`
}

// EmailOTPResponse returns the signed envelope the caller must present
// together with the emailed code.
type EmailOTPResponse struct {
	Envelope  string `json:"envelope"`
	ExpiresIn int64  `json:"expires_in"` // seconds until the envelope expires
}

// EmailVerifyRequest represents the second step of the email flow
type EmailVerifyRequest struct {
	Code     string `json:"code" validate:"required"`
	Envelope string `json:"envelope" validate:"required"`
}

// AuthResponse represents a successful authentication
type AuthResponse struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	ExpiresAt int64     `json:"expires_at"` // unix seconds
}

// PendingKind discriminates the channel a pending profile was captured on
type PendingKind string

const (
	PendingKindPhone PendingKind = "phone"
	PendingKindEmail PendingKind = "email"
)

// PendingProfile carries the not-yet-verified identity fields bound into a
// signed envelope between the request and verify steps of a flow.
type PendingProfile struct {
	Kind         PendingKind `json:"kind"`
	MSISDN       string      `json:"msisdn,omitempty"`
	Email        string      `json:"email,omitempty"`
	FullName     string      `json:"fullname,omitempty"`
	Role         string      `json:"role"`
	VehicleType  string      `json:"vehicle_type,omitempty"`
	VehiclePlate string      `json:"vehicle_plate,omitempty"`
}

// Identifier returns the verification-store key for the profile's channel.
func (p PendingProfile) Identifier() string {
	if p.Kind == PendingKindPhone {
		return p.MSISDN
	}
	return p.Email
}
