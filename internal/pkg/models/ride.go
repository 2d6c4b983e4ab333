package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the status of a ride
type RideStatus string

const (
	RideStatusRequested RideStatus = "requested"
	RideStatusAccepted  RideStatus = "accepted"
	RideStatusOngoing   RideStatus = "ongoing"
	RideStatusCompleted RideStatus = "completed"
	RideStatusCancelled RideStatus = "cancelled"
)

// rideTransitions lists the allowed next statuses for each status.
var rideTransitions = map[RideStatus][]RideStatus{
	RideStatusRequested: {RideStatusAccepted, RideStatusCancelled},
	RideStatusAccepted:  {RideStatusOngoing, RideStatusCancelled},
	RideStatusOngoing:   {RideStatusCompleted},
}

// ValidRideStatus reports whether s is a known ride status.
func ValidRideStatus(s RideStatus) bool {
	switch s {
	case RideStatusRequested, RideStatusAccepted, RideStatusOngoing,
		RideStatusCompleted, RideStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether a ride may move from one status to the next.
func (s RideStatus) CanTransition(next RideStatus) bool {
	for _, allowed := range rideTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Ride represents a ride record
type Ride struct {
	RideID             uuid.UUID  `json:"ride_id"`
	RiderID            uuid.UUID  `json:"rider_id"`
	DriverID           *uuid.UUID `json:"driver_id,omitempty"`
	Pickup             Coordinate `json:"pickup"`
	Destination        Coordinate `json:"destination"`
	PickupAddress      string     `json:"pickup_address,omitempty"`
	DestinationAddress string     `json:"destination_address,omitempty"`
	Status             RideStatus `json:"status"`
	EstimatedFare      float64    `json:"estimated_fare"`
	Currency           string     `json:"currency"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// RequestRideRequest represents a rider's ride request payload
type RequestRideRequest struct {
	Pickup             Coordinate `json:"pickup"`
	Destination        Coordinate `json:"destination"`
	PickupAddress      string     `json:"pickup_address"`
	DestinationAddress string     `json:"destination_address"`
}

// UpdateRideStatusRequest represents a driver's status update payload
type UpdateRideStatusRequest struct {
	Status RideStatus `json:"status"`
}

// RideEvent represents a ride lifecycle change published to the event bus
type RideEvent struct {
	RideID    uuid.UUID  `json:"ride_id"`
	RiderID   uuid.UUID  `json:"rider_id"`
	DriverID  *uuid.UUID `json:"driver_id,omitempty"`
	Status    RideStatus `json:"status"`
	Timestamp time.Time  `json:"timestamp"`
}
