package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/antarid/antar/internal/pkg/constants"
	"github.com/antarid/antar/internal/pkg/models"
	"github.com/antarid/antar/internal/pkg/observability"
)

// beaconTTL bounds how long a beacon is trusted without a refresh. A driver
// whose app stops pinging falls out of the store on its own.
const beaconTTL = 15 * time.Minute

// UpdateBeacon stores the driver's latest beacon state. Active drivers are
// also indexed in the shared geo set so they can be found by proximity
// queries; inactive drivers are removed from it. The hash carries the TTL,
// so readers treat a geo member without a live hash as offline.
func (r *BeaconRepo) UpdateBeacon(ctx context.Context, event *models.BeaconEvent) error {
	// Redis is optional at startup; without it there is nowhere to keep
	// availability state.
	if r.redisClient == nil {
		return fmt.Errorf("beacon store is not configured")
	}

	key := fmt.Sprintf(constants.KeyDriverBeacon, event.DriverID.String())

	err := r.redisClient.HSet(ctx, key,
		constants.FieldLatitude, event.Location.Latitude,
		constants.FieldLongitude, event.Location.Longitude,
		constants.FieldGeohash, event.Geohash,
		constants.FieldTimestamp, event.Timestamp.Unix(),
		constants.FieldActive, event.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to store beacon state: %w", err)
	}
	if err := r.redisClient.Expire(ctx, key, beaconTTL); err != nil {
		return fmt.Errorf("failed to set beacon expiry: %w", err)
	}

	member := event.DriverID.String()
	if event.IsActive {
		err = r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo,
			event.Location.Longitude, event.Location.Latitude, member)
	} else {
		err = r.redisClient.GeoRemove(ctx, constants.KeyDriverGeo, member)
	}
	if err != nil {
		return fmt.Errorf("failed to update driver geo index: %w", err)
	}

	if count, err := r.redisClient.ZCard(ctx, constants.KeyDriverGeo); err == nil {
		observability.DriversOnline.Set(float64(count))
	}

	return nil
}
