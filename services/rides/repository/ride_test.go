package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antarid/antar/internal/pkg/models"
)

var rideColumnNames = []string{
	"id", "rider_id", "driver_id",
	"pickup_latitude", "pickup_longitude", "destination_latitude", "destination_longitude",
	"pickup_address", "destination_address", "status", "estimated_fare", "currency",
	"created_at", "updated_at",
}

func setupRideRepoTest(t *testing.T) (*RideRepo, sqlmock.Sqlmock, func()) {
	// Create SQL mock
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	// Create sqlx DB with mock
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &RideRepo{db: sqlxDB}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func rideRows() *sqlmock.Rows {
	return sqlmock.NewRows(rideColumnNames)
}

func addRideRow(rows *sqlmock.Rows, id, riderID uuid.UUID, driverID interface{}, status string, createdAt time.Time) *sqlmock.Rows {
	return rows.AddRow(id, riderID, driverID,
		-6.175392, 106.827153, -6.914744, 107.609810,
		"Monas", "Gedung Sate", status, 27.5, "USD",
		createdAt, createdAt)
}

func TestCreateRide(t *testing.T) {
	testCases := []struct {
		name       string
		ride       models.Ride
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, created *models.Ride, err error)
	}{
		{
			name: "Success",
			ride: models.Ride{
				RiderID:       uuid.MustParse("550e8400-e29b-41d4-a716-446655440020"),
				Pickup:        models.Coordinate{Latitude: -6.175392, Longitude: 106.827153},
				Destination:   models.Coordinate{Latitude: -6.914744, Longitude: 107.609810},
				Status:        models.RideStatusRequested,
				EstimatedFare: 27.5,
				Currency:      "USD",
			},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO rides").
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			assertFunc: func(t *testing.T, created *models.Ride, err error) {
				assert.NoError(t, err)
				require.NotNil(t, created)
				assert.NotEqual(t, uuid.Nil, created.RideID)
				assert.False(t, created.CreatedAt.IsZero())
				assert.Equal(t, created.CreatedAt, created.UpdatedAt)
			},
		},
		{
			name: "Insert Error",
			ride: models.Ride{
				RiderID: uuid.MustParse("550e8400-e29b-41d4-a716-446655440021"),
				Status:  models.RideStatusRequested,
			},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO rides").
					WillReturnError(errors.New("insert error"))
			},
			assertFunc: func(t *testing.T, created *models.Ride, err error) {
				assert.Error(t, err)
				assert.Nil(t, created)
				assert.Contains(t, err.Error(), "failed to insert ride")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			repo, mock, cleanup := setupRideRepoTest(t)
			defer cleanup()

			// Apply mocks
			tc.mockSetup(mock)

			// Execute
			ride := tc.ride
			created, err := repo.CreateRide(context.Background(), &ride)

			// Assert
			tc.assertFunc(t, created, err)

			// Verify all expectations were met
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetRideByID(t *testing.T) {
	testCases := []struct {
		name       string
		rideID     uuid.UUID
		mockSetup  func(mock sqlmock.Sqlmock, rideID uuid.UUID)
		assertFunc func(t *testing.T, ride *models.Ride, err error)
	}{
		{
			name:   "Success - Unassigned",
			rideID: uuid.MustParse("550e8400-e29b-41d4-a716-446655440030"),
			mockSetup: func(mock sqlmock.Sqlmock, rideID uuid.UUID) {
				riderID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440031")
				rows := addRideRow(rideRows(), rideID, riderID, nil, "requested", time.Now())
				mock.ExpectQuery("^SELECT (.+) FROM rides WHERE id").
					WithArgs(rideID.String()).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, ride *models.Ride, err error) {
				assert.NoError(t, err)
				require.NotNil(t, ride)
				assert.Nil(t, ride.DriverID)
				assert.Equal(t, models.RideStatusRequested, ride.Status)
				assert.Equal(t, -6.175392, ride.Pickup.Latitude)
				assert.Equal(t, 107.609810, ride.Destination.Longitude)
				assert.Equal(t, "Monas", ride.PickupAddress)
				assert.Equal(t, 27.5, ride.EstimatedFare)
			},
		},
		{
			name:   "Success - Assigned Driver",
			rideID: uuid.MustParse("550e8400-e29b-41d4-a716-446655440032"),
			mockSetup: func(mock sqlmock.Sqlmock, rideID uuid.UUID) {
				riderID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440033")
				driverID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440034")
				rows := addRideRow(rideRows(), rideID, riderID, driverID, "accepted", time.Now())
				mock.ExpectQuery("^SELECT (.+) FROM rides WHERE id").
					WithArgs(rideID.String()).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, ride *models.Ride, err error) {
				assert.NoError(t, err)
				require.NotNil(t, ride)
				require.NotNil(t, ride.DriverID)
				assert.Equal(t, "550e8400-e29b-41d4-a716-446655440034", ride.DriverID.String())
				assert.Equal(t, models.RideStatusAccepted, ride.Status)
			},
		},
		{
			name:   "Not Found",
			rideID: uuid.MustParse("550e8400-e29b-41d4-a716-446655440035"),
			mockSetup: func(mock sqlmock.Sqlmock, rideID uuid.UUID) {
				mock.ExpectQuery("^SELECT (.+) FROM rides WHERE id").
					WithArgs(rideID.String()).
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, ride *models.Ride, err error) {
				assert.Error(t, err)
				assert.Nil(t, ride)
				assert.ErrorIs(t, err, models.ErrNotFound)
				assert.Contains(t, err.Error(), "ride not found")
			},
		},
		{
			name:   "Database Error",
			rideID: uuid.MustParse("550e8400-e29b-41d4-a716-446655440036"),
			mockSetup: func(mock sqlmock.Sqlmock, rideID uuid.UUID) {
				mock.ExpectQuery("^SELECT (.+) FROM rides WHERE id").
					WithArgs(rideID.String()).
					WillReturnError(errors.New("connection error"))
			},
			assertFunc: func(t *testing.T, ride *models.Ride, err error) {
				assert.Error(t, err)
				assert.Nil(t, ride)
				assert.NotErrorIs(t, err, models.ErrNotFound)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			repo, mock, cleanup := setupRideRepoTest(t)
			defer cleanup()

			// Apply mocks
			tc.mockSetup(mock, tc.rideID)

			// Execute
			ride, err := repo.GetRideByID(context.Background(), tc.rideID)

			// Assert
			tc.assertFunc(t, ride, err)

			// Verify all expectations were met
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListRidesByRider(t *testing.T) {
	riderID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440040")

	t.Run("Newest First", func(t *testing.T) {
		repo, mock, cleanup := setupRideRepoTest(t)
		defer cleanup()

		newer := uuid.MustParse("550e8400-e29b-41d4-a716-446655440041")
		older := uuid.MustParse("550e8400-e29b-41d4-a716-446655440042")
		rows := rideRows()
		rows = addRideRow(rows, newer, riderID, nil, "requested", time.Now())
		rows = addRideRow(rows, older, riderID, nil, "completed", time.Now().Add(-time.Hour))
		mock.ExpectQuery("^SELECT (.+) FROM rides WHERE rider_id = (.+) ORDER BY created_at DESC").
			WithArgs(riderID.String()).
			WillReturnRows(rows)

		rides, err := repo.ListRidesByRider(context.Background(), riderID)

		assert.NoError(t, err)
		require.Len(t, rides, 2)
		assert.Equal(t, newer, rides[0].RideID)
		assert.Equal(t, older, rides[1].RideID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No Rides", func(t *testing.T) {
		repo, mock, cleanup := setupRideRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("^SELECT (.+) FROM rides WHERE rider_id").
			WithArgs(riderID.String()).
			WillReturnRows(rideRows())

		rides, err := repo.ListRidesByRider(context.Background(), riderID)

		assert.NoError(t, err)
		assert.NotNil(t, rides)
		assert.Empty(t, rides)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		repo, mock, cleanup := setupRideRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("^SELECT (.+) FROM rides WHERE rider_id").
			WithArgs(riderID.String()).
			WillReturnError(errors.New("connection error"))

		rides, err := repo.ListRidesByRider(context.Background(), riderID)

		assert.Error(t, err)
		assert.Nil(t, rides)
		assert.Contains(t, err.Error(), "failed to list rides")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListRidesByDriver(t *testing.T) {
	driverID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440050")

	repo, mock, cleanup := setupRideRepoTest(t)
	defer cleanup()

	rideID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440051")
	riderID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440052")
	rows := addRideRow(rideRows(), rideID, riderID, driverID, "ongoing", time.Now())
	mock.ExpectQuery("^SELECT (.+) FROM rides WHERE driver_id = (.+) ORDER BY created_at DESC").
		WithArgs(driverID.String()).
		WillReturnRows(rows)

	rides, err := repo.ListRidesByDriver(context.Background(), driverID)

	assert.NoError(t, err)
	require.Len(t, rides, 1)
	require.NotNil(t, rides[0].DriverID)
	assert.Equal(t, driverID, *rides[0].DriverID)
	assert.Equal(t, models.RideStatusOngoing, rides[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRideStatus(t *testing.T) {
	rideID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440060")
	riderID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440061")
	driverID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440062")

	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupRideRepoTest(t)
		defer cleanup()

		mock.ExpectExec("^UPDATE rides SET driver_id").
			WillReturnResult(sqlmock.NewResult(0, 1))

		ride := &models.Ride{
			RideID:   rideID,
			RiderID:  riderID,
			DriverID: &driverID,
			Status:   models.RideStatusAccepted,
		}

		err := repo.UpdateRideStatus(context.Background(), ride, models.RideStatusRequested)

		assert.NoError(t, err)
		assert.False(t, ride.UpdatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Guard Miss", func(t *testing.T) {
		repo, mock, cleanup := setupRideRepoTest(t)
		defer cleanup()

		// Another transition landed first, so the guarded update matches
		// no row.
		mock.ExpectExec("^UPDATE rides SET driver_id").
			WillReturnResult(sqlmock.NewResult(0, 0))

		ride := &models.Ride{
			RideID:   rideID,
			RiderID:  riderID,
			DriverID: &driverID,
			Status:   models.RideStatusAccepted,
		}

		err := repo.UpdateRideStatus(context.Background(), ride, models.RideStatusRequested)

		assert.Error(t, err)
		assert.ErrorIs(t, err, models.ErrInvalidTransition)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		repo, mock, cleanup := setupRideRepoTest(t)
		defer cleanup()

		mock.ExpectExec("^UPDATE rides SET driver_id").
			WillReturnError(errors.New("connection error"))

		ride := &models.Ride{
			RideID:  rideID,
			RiderID: riderID,
			Status:  models.RideStatusCancelled,
		}

		err := repo.UpdateRideStatus(context.Background(), ride, models.RideStatusRequested)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to update ride")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
