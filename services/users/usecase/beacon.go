package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/antarid/antar/internal/pkg/geo"
	"github.com/antarid/antar/internal/pkg/logger"
	"github.com/antarid/antar/internal/pkg/models"
)

// UpdateBeaconStatus records a driver's availability toggle and announces
// it on the event bus.
func (u *UserUC) UpdateBeaconStatus(ctx context.Context, driverID uuid.UUID, req *models.BeaconRequest) error {
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		return fmt.Errorf("%w: coordinates out of range", models.ErrValidation)
	}

	location := models.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}
	event := &models.BeaconEvent{
		DriverID:  driverID,
		IsActive:  req.IsActive,
		Location:  location,
		Geohash:   geo.Encode(location, geo.BeaconPrecision),
		Timestamp: models.Now(),
	}

	if err := u.beaconRepo.UpdateBeacon(ctx, event); err != nil {
		return fmt.Errorf("failed to store beacon: %w", err)
	}

	if err := u.userGW.PublishBeaconEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to publish beacon event: %w", err)
	}

	logger.InfoCtx(ctx, "Updated driver beacon",
		logger.String("driver_id", driverID.String()),
		logger.Bool("is_active", req.IsActive),
		logger.String("geohash", event.Geohash))

	return nil
}
