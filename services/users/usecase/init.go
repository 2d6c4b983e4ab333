package usecase

import (
	"github.com/antarid/antar/internal/pkg/models"
	"github.com/antarid/antar/internal/pkg/otp"
	"github.com/antarid/antar/services/users"
)

type UserUC struct {
	userRepo   users.UserRepo
	beaconRepo users.BeaconRepo
	userGW     users.UserGW
	otpStore   otp.Store
	cfg        *models.Config
}

// NewUserUC creates a new user usecase instance
func NewUserUC(
	userRepo users.UserRepo,
	beaconRepo users.BeaconRepo,
	userGW users.UserGW,
	otpStore otp.Store,
	cfg *models.Config,
) *UserUC {
	return &UserUC{
		userRepo:   userRepo,
		beaconRepo: beaconRepo,
		userGW:     userGW,
		otpStore:   otpStore,
		cfg:        cfg,
	}
}
