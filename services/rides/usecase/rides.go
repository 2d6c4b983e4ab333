package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/antarid/antar/internal/pkg/logger"
	"github.com/antarid/antar/internal/pkg/models"
	"github.com/antarid/antar/internal/pkg/observability"
	"github.com/antarid/antar/internal/pkg/pricing"
	"github.com/antarid/antar/internal/utils"
)

func validCoordinate(c models.Coordinate) bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// RequestRide creates a ride for the session rider with an estimated fare
// at neutral factors and announces it on the event bus.
func (u *RideUC) RequestRide(ctx context.Context, riderID uuid.UUID, req *models.RequestRideRequest) (*models.Ride, error) {
	if !validCoordinate(req.Pickup) || !validCoordinate(req.Destination) {
		return nil, fmt.Errorf("%w: coordinates out of range", models.ErrValidation)
	}

	quote := u.estimator.Estimate(req.Pickup, req.Destination, pricing.DefaultFactors())

	ride := &models.Ride{
		RiderID:            riderID,
		Pickup:             req.Pickup,
		Destination:        req.Destination,
		PickupAddress:      utils.SanitizeString(req.PickupAddress),
		DestinationAddress: utils.SanitizeString(req.DestinationAddress),
		Status:             models.RideStatusRequested,
		EstimatedFare:      quote.Price,
		Currency:           quote.Currency,
	}

	created, err := u.rideRepo.CreateRide(ctx, ride)
	if err != nil {
		return nil, fmt.Errorf("failed to create ride: %w", err)
	}

	event := &models.RideEvent{
		RideID:    created.RideID,
		RiderID:   created.RiderID,
		Status:    created.Status,
		Timestamp: models.Now(),
	}
	if err := u.rideGW.PublishRideRequested(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to publish ride event: %w", err)
	}

	observability.RidesRequestedTotal.Inc()
	logger.InfoCtx(ctx, "Created ride request",
		logger.String("ride_id", created.RideID.String()),
		logger.String("rider_id", riderID.String()),
		logger.Float64("estimated_fare", created.EstimatedFare))

	return created, nil
}

// ListRiderRides returns the rider's rides, newest first.
func (u *RideUC) ListRiderRides(ctx context.Context, riderID uuid.UUID) ([]*models.Ride, error) {
	list, err := u.rideRepo.ListRidesByRider(ctx, riderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}
	return list, nil
}

// ListDriverRides returns the rides assigned to the driver, newest first.
func (u *RideUC) ListDriverRides(ctx context.Context, driverID uuid.UUID) ([]*models.Ride, error) {
	list, err := u.rideRepo.ListRidesByDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}
	return list, nil
}

// UpdateRideStatus applies a driver's status transition. Accepting an open
// ride assigns the driver; every other transition requires the ride to
// already belong to the caller.
func (u *RideUC) UpdateRideStatus(ctx context.Context, rideID, driverID uuid.UUID, req *models.UpdateRideStatusRequest) (*models.Ride, error) {
	next := req.Status
	if !models.ValidRideStatus(next) {
		return nil, fmt.Errorf("%w: unknown status %q", models.ErrValidation, next)
	}

	ride, err := u.rideRepo.GetRideByID(ctx, rideID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ride: %w", err)
	}

	switch {
	case ride.DriverID == nil:
		if next != models.RideStatusAccepted {
			return nil, fmt.Errorf("%w: ride is not assigned to this driver", models.ErrForbidden)
		}
	case *ride.DriverID != driverID:
		return nil, fmt.Errorf("%w: ride belongs to another driver", models.ErrForbidden)
	}

	from := ride.Status
	if !from.CanTransition(next) {
		return nil, fmt.Errorf("%w: %s to %s", models.ErrInvalidTransition, from, next)
	}

	ride.Status = next
	if next == models.RideStatusAccepted {
		ride.DriverID = &driverID
	}

	if err := u.rideRepo.UpdateRideStatus(ctx, ride, from); err != nil {
		return nil, fmt.Errorf("failed to update ride status: %w", err)
	}

	event := &models.RideEvent{
		RideID:    ride.RideID,
		RiderID:   ride.RiderID,
		DriverID:  ride.DriverID,
		Status:    ride.Status,
		Timestamp: models.Now(),
	}
	if err := u.rideGW.PublishRideStatusChanged(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to publish ride event: %w", err)
	}

	observability.RideStatusTotal.WithLabelValues(string(next)).Inc()
	logger.InfoCtx(ctx, "Updated ride status",
		logger.String("ride_id", ride.RideID.String()),
		logger.String("driver_id", driverID.String()),
		logger.String("from", string(from)),
		logger.String("to", string(next)))

	return ride, nil
}
