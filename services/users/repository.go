package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/antarid/antar/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/antarid/antar/services/users UserRepo,BeaconRepo

// UserRepo defines the user repository interface
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByMSISDN(ctx context.Context, msisdn string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpsertByEmail(ctx context.Context, user *models.User) (*models.User, error)
	AttachDriverProfile(ctx context.Context, profile *models.DriverProfile) error
}

// BeaconRepo stores driver availability for lookup by proximity.
type BeaconRepo interface {
	UpdateBeacon(ctx context.Context, event *models.BeaconEvent) error
}
