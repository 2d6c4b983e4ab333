package models

import (
	"time"

	"github.com/google/uuid"
)

// BeaconRequest represents a driver's availability toggle
type BeaconRequest struct {
	IsActive  bool    `json:"is_active"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// BeaconEvent represents an availability change published to the event bus
type BeaconEvent struct {
	DriverID  uuid.UUID  `json:"driver_id"`
	IsActive  bool       `json:"is_active"`
	Location  Coordinate `json:"location"`
	Geohash   string     `json:"geohash"`
	Timestamp time.Time  `json:"timestamp"`
}
