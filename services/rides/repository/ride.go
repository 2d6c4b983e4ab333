package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/antarid/antar/internal/pkg/models"
)

const rideColumns = `id, rider_id, driver_id,
	pickup_latitude, pickup_longitude, destination_latitude, destination_longitude,
	pickup_address, destination_address, status, estimated_fare, currency,
	created_at, updated_at`

// rideRow is the flat database shape of a ride. The coordinate pairs fold
// back into models.Coordinate on the way out.
type rideRow struct {
	ID                   uuid.UUID     `db:"id"`
	RiderID              uuid.UUID     `db:"rider_id"`
	DriverID             uuid.NullUUID `db:"driver_id"`
	PickupLatitude       float64       `db:"pickup_latitude"`
	PickupLongitude      float64       `db:"pickup_longitude"`
	DestinationLatitude  float64       `db:"destination_latitude"`
	DestinationLongitude float64       `db:"destination_longitude"`
	PickupAddress        string        `db:"pickup_address"`
	DestinationAddress   string        `db:"destination_address"`
	Status               string        `db:"status"`
	EstimatedFare        float64       `db:"estimated_fare"`
	Currency             string        `db:"currency"`
	CreatedAt            time.Time     `db:"created_at"`
	UpdatedAt            time.Time     `db:"updated_at"`
}

func newRideRow(ride *models.Ride) rideRow {
	row := rideRow{
		ID:                   ride.RideID,
		RiderID:              ride.RiderID,
		PickupLatitude:       ride.Pickup.Latitude,
		PickupLongitude:      ride.Pickup.Longitude,
		DestinationLatitude:  ride.Destination.Latitude,
		DestinationLongitude: ride.Destination.Longitude,
		PickupAddress:        ride.PickupAddress,
		DestinationAddress:   ride.DestinationAddress,
		Status:               string(ride.Status),
		EstimatedFare:        ride.EstimatedFare,
		Currency:             ride.Currency,
		CreatedAt:            ride.CreatedAt,
		UpdatedAt:            ride.UpdatedAt,
	}
	if ride.DriverID != nil {
		row.DriverID = uuid.NullUUID{UUID: *ride.DriverID, Valid: true}
	}
	return row
}

func (r rideRow) toRide() *models.Ride {
	ride := &models.Ride{
		RideID:             r.ID,
		RiderID:            r.RiderID,
		Pickup:             models.Coordinate{Latitude: r.PickupLatitude, Longitude: r.PickupLongitude},
		Destination:        models.Coordinate{Latitude: r.DestinationLatitude, Longitude: r.DestinationLongitude},
		PickupAddress:      r.PickupAddress,
		DestinationAddress: r.DestinationAddress,
		Status:             models.RideStatus(r.Status),
		EstimatedFare:      r.EstimatedFare,
		Currency:           r.Currency,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
	if r.DriverID.Valid {
		driverID := r.DriverID.UUID
		ride.DriverID = &driverID
	}
	return ride
}

// CreateRide creates a new ride in the database
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) (*models.Ride, error) {
	if ride.RideID == uuid.Nil {
		ride.RideID = uuid.New()
	}
	now := time.Now().UTC()
	ride.CreatedAt = now
	ride.UpdatedAt = now

	query := `
		INSERT INTO rides (id, rider_id, driver_id,
			pickup_latitude, pickup_longitude, destination_latitude, destination_longitude,
			pickup_address, destination_address, status, estimated_fare, currency,
			created_at, updated_at
		) VALUES (:id, :rider_id, :driver_id,
			:pickup_latitude, :pickup_longitude, :destination_latitude, :destination_longitude,
			:pickup_address, :destination_address, :status, :estimated_fare, :currency,
			:created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, newRideRow(ride)); err != nil {
		return nil, fmt.Errorf("failed to insert ride: %w", err)
	}

	return ride, nil
}

// GetRideByID retrieves a ride by ID
func (r *RideRepo) GetRideByID(ctx context.Context, id uuid.UUID) (*models.Ride, error) {
	query := fmt.Sprintf("SELECT %s FROM rides WHERE id = $1", rideColumns)

	var row rideRow
	if err := r.db.GetContext(ctx, &row, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ride %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}

	return row.toRide(), nil
}

// ListRidesByRider returns the rider's rides, newest first.
func (r *RideRepo) ListRidesByRider(ctx context.Context, riderID uuid.UUID) ([]*models.Ride, error) {
	return r.listRidesByField(ctx, "rider_id", riderID)
}

// ListRidesByDriver returns the rides assigned to the driver, newest first.
func (r *RideRepo) ListRidesByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Ride, error) {
	return r.listRidesByField(ctx, "driver_id", driverID)
}

func (r *RideRepo) listRidesByField(ctx context.Context, field string, id uuid.UUID) ([]*models.Ride, error) {
	query := fmt.Sprintf("SELECT %s FROM rides WHERE %s = $1 ORDER BY created_at DESC", rideColumns, field)

	var rows []rideRow
	if err := r.db.SelectContext(ctx, &rows, query, id.String()); err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}

	rides := make([]*models.Ride, 0, len(rows))
	for _, row := range rows {
		rides = append(rides, row.toRide())
	}
	return rides, nil
}

// UpdateRideStatus persists the ride's driver assignment and status. The
// expected status guards against a concurrent transition; when the guard
// misses nothing is written and the caller gets a transition error.
func (r *RideRepo) UpdateRideStatus(ctx context.Context, ride *models.Ride, expected models.RideStatus) error {
	ride.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE rides SET driver_id = $1, status = $2, updated_at = $3
		WHERE id = $4 AND status = $5
	`
	res, err := r.db.ExecContext(ctx, query,
		ride.DriverID, string(ride.Status), ride.UpdatedAt, ride.RideID, string(expected))
	if err != nil {
		return fmt.Errorf("failed to update ride: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update ride: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: ride moved out of %s", models.ErrInvalidTransition, expected)
	}

	return nil
}
