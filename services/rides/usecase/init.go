package usecase

import (
	"github.com/antarid/antar/internal/pkg/pricing"
	"github.com/antarid/antar/services/rides"
)

type RideUC struct {
	rideRepo  rides.RideRepo
	rideGW    rides.RideGW
	estimator *pricing.Estimator
}

// NewRideUC creates a new ride usecase instance
func NewRideUC(
	rideRepo rides.RideRepo,
	rideGW rides.RideGW,
	estimator *pricing.Estimator,
) *RideUC {
	return &RideUC{
		rideRepo:  rideRepo,
		rideGW:    rideGW,
		estimator: estimator,
	}
}
