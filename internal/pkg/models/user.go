package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleRider  = "rider"
	RoleDriver = "driver"
)

// User represents an account in the system (either rider or driver)
type User struct {
	ID         uuid.UUID      `json:"id" db:"id"`
	MSISDN     string         `json:"msisdn" db:"msisdn"`
	Email      string         `json:"email,omitempty" db:"email"`
	FullName   string         `json:"fullname" db:"fullname"`
	Role       string         `json:"role" db:"role"`
	IsActive   bool           `json:"is_active" db:"is_active"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at" db:"updated_at"`
	DriverInfo *DriverProfile `json:"driver_info,omitempty" db:"-"`
}

// DriverProfile represents additional information for users who are drivers
type DriverProfile struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	VehicleType  string    `json:"vehicle_type" db:"vehicle_type"`
	VehiclePlate string    `json:"vehicle_plate" db:"vehicle_plate"`
	Verified     bool      `json:"verified" db:"verified"`
}

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleRider || role == RoleDriver
}
