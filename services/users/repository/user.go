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

const userColumns = "id, msisdn, email, fullname, role, is_active, created_at, updated_at"

// CreateUser creates a new user in the database
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO users (id, msisdn, email, fullname, role,
			is_active, created_at, updated_at
		) VALUES (:id, :msisdn, :email, :fullname, :role,
			:is_active, :created_at, :updated_at)
	`
	if _, err = tx.NamedExecContext(ctx, query, user); err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	if user.DriverInfo != nil {
		user.DriverInfo.UserID = user.ID
		driverQuery := `
			INSERT INTO driver_profiles (user_id, vehicle_type, vehicle_plate, verified)
			VALUES (:user_id, :vehicle_type, :vehicle_plate, :verified)
		`
		if _, err = tx.NamedExecContext(ctx, driverQuery, user.DriverInfo); err != nil {
			return nil, fmt.Errorf("failed to insert driver profile: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return user, nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getUserByField(ctx, "id", id.String())
}

// GetUserByMSISDN retrieves a user by MSISDN
func (r *UserRepo) GetUserByMSISDN(ctx context.Context, msisdn string) (*models.User, error) {
	return r.getUserByField(ctx, "msisdn", msisdn)
}

// GetUserByEmail retrieves a user by email address
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUserByField(ctx, "email", email)
}

// getUserByField is a helper function to get a user by a specific field
func (r *UserRepo) getUserByField(ctx context.Context, field, value string) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE %s = $1", userColumns, field)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.Role == models.RoleDriver {
		driver, err := r.getDriverInfo(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		user.DriverInfo = driver
	}

	return &user, nil
}

// UpsertByEmail creates the identity on first verification and refreshes
// the profile fields on subsequent ones. An account that already became a
// driver keeps that role.
func (r *UserRepo) UpsertByEmail(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now().UTC()

	query := fmt.Sprintf(`
		INSERT INTO users (id, msisdn, email, fullname, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (email) WHERE email <> '' DO UPDATE SET
			fullname = CASE WHEN EXCLUDED.fullname <> '' THEN EXCLUDED.fullname ELSE users.fullname END,
			msisdn = CASE WHEN EXCLUDED.msisdn <> '' THEN EXCLUDED.msisdn ELSE users.msisdn END,
			role = CASE WHEN users.role = 'driver' THEN users.role ELSE EXCLUDED.role END,
			is_active = TRUE,
			updated_at = EXCLUDED.updated_at
		RETURNING %s
	`, userColumns)

	var out models.User
	err := r.db.QueryRowxContext(ctx, query,
		user.ID, user.MSISDN, user.Email, user.FullName, user.Role,
		true, now, now,
	).StructScan(&out)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return &out, nil
}

// AttachDriverProfile stores vehicle details for a driver and promotes the
// account's role in the same transaction.
func (r *UserRepo) AttachDriverProfile(ctx context.Context, profile *models.DriverProfile) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	roleQuery := `UPDATE users SET role = $1, updated_at = $2 WHERE id = $3`
	if _, err = tx.ExecContext(ctx, roleQuery, models.RoleDriver, time.Now().UTC(), profile.UserID); err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}

	profileQuery := `
		INSERT INTO driver_profiles (user_id, vehicle_type, vehicle_plate, verified)
		VALUES (:user_id, :vehicle_type, :vehicle_plate, :verified)
		ON CONFLICT (user_id) DO UPDATE SET
			vehicle_type = EXCLUDED.vehicle_type,
			vehicle_plate = EXCLUDED.vehicle_plate
	`
	if _, err = tx.NamedExecContext(ctx, profileQuery, profile); err != nil {
		return fmt.Errorf("failed to upsert driver profile: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// getDriverInfo retrieves driver information for a user
func (r *UserRepo) getDriverInfo(ctx context.Context, userID uuid.UUID) (*models.DriverProfile, error) {
	query := `SELECT user_id, vehicle_type, vehicle_plate, verified FROM driver_profiles WHERE user_id = $1`

	var driver models.DriverProfile
	err := r.db.GetContext(ctx, &driver, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get driver info: %w", err)
	}
	return &driver, nil
}
