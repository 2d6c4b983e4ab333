package rides

import (
	"context"

	"github.com/antarid/antar/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/antarid/antar/services/rides RideGW

// RideGW defines the ride gateways interface
type RideGW interface {
	PublishRideRequested(ctx context.Context, event *models.RideEvent) error
	PublishRideStatusChanged(ctx context.Context, event *models.RideEvent) error
}
