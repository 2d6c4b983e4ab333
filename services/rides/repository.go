package rides

import (
	"context"

	"github.com/google/uuid"

	"github.com/antarid/antar/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/antarid/antar/services/rides RideRepo

// RideRepo defines the ride repository interface
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) (*models.Ride, error)
	GetRideByID(ctx context.Context, id uuid.UUID) (*models.Ride, error)
	ListRidesByRider(ctx context.Context, riderID uuid.UUID) ([]*models.Ride, error)
	ListRidesByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Ride, error)
	// UpdateRideStatus persists the ride's driver assignment and status,
	// guarded by the status the caller read. A concurrent transition makes
	// the guard miss and the update is rejected.
	UpdateRideStatus(ctx context.Context, ride *models.Ride, expected models.RideStatus) error
}
