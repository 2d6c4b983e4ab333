package gateway

import (
	natspkg "github.com/antarid/antar/internal/pkg/nats"
	"github.com/antarid/antar/services/rides"
)

// RideGW handles ride gateway operations
type RideGW struct {
	natsClient *natspkg.Client
}

// NewRideGW creates a new gateway instance publishing over NATS
func NewRideGW(natsClient *natspkg.Client) rides.RideGW {
	return &RideGW{
		natsClient: natsClient,
	}
}
