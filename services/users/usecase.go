package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/antarid/antar/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/antarid/antar/services/users UserUC

// UserUC represents the user usecase interface
type UserUC interface {
	// Phone verification flow
	Register(ctx context.Context, req *models.RegisterRequest, role string) (*models.RegisterResponse, error)
	VerifyOTP(ctx context.Context, req *models.VerifyRequest, role string) (*models.AuthResponse, error)

	// Email verification flow
	RequestEmailOTP(ctx context.Context, req *models.EmailOTPRequest, role string) (*models.EmailOTPResponse, error)
	VerifyEmailOTP(ctx context.Context, req *models.EmailVerifyRequest) (*models.AuthResponse, error)

	// Profile
	GetMe(ctx context.Context, userID uuid.UUID) (*models.User, error)

	// Driver availability
	UpdateBeaconStatus(ctx context.Context, driverID uuid.UUID, req *models.BeaconRequest) error
}
