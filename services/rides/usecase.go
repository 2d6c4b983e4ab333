package rides

import (
	"context"

	"github.com/google/uuid"

	"github.com/antarid/antar/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/antarid/antar/services/rides RideUC

// RideUC represents the ride usecase interface
type RideUC interface {
	// Fare quotes
	QuoteFare(ctx context.Context, req *models.RidePriceRequest) (*models.FareQuote, error)

	// Ride lifecycle
	RequestRide(ctx context.Context, riderID uuid.UUID, req *models.RequestRideRequest) (*models.Ride, error)
	ListRiderRides(ctx context.Context, riderID uuid.UUID) ([]*models.Ride, error)
	ListDriverRides(ctx context.Context, driverID uuid.UUID) ([]*models.Ride, error)
	UpdateRideStatus(ctx context.Context, rideID, driverID uuid.UUID, req *models.UpdateRideStatusRequest) (*models.Ride, error)
}
