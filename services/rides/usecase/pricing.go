package usecase

import (
	"context"
	"fmt"

	"github.com/antarid/antar/internal/pkg/logger"
	"github.com/antarid/antar/internal/pkg/models"
	"github.com/antarid/antar/internal/pkg/observability"
	"github.com/antarid/antar/internal/pkg/pricing"
)

// QuoteFare computes a fare estimate for a prospective trip. Quotes are
// pure: nothing is persisted or cached.
func (u *RideUC) QuoteFare(ctx context.Context, req *models.RidePriceRequest) (*models.FareQuote, error) {
	if req.Pickup == nil || req.Destination == nil {
		return nil, fmt.Errorf("%w: pickup and destination are required", models.ErrValidation)
	}
	if req.SurgeMultiplier == nil {
		return nil, fmt.Errorf("%w: surgeMultiplier is required", models.ErrValidation)
	}

	factors := pricing.DefaultFactors()
	factors.Surge = *req.SurgeMultiplier
	if req.TrafficFactor != nil {
		factors.Traffic = *req.TrafficFactor
	}
	if req.WeatherFactor != nil {
		factors.Weather = *req.WeatherFactor
	}
	if req.TimeFactor != nil {
		factors.Time = *req.TimeFactor
	}
	// A non-positive multiplier would drive the fare to zero or below, so
	// it is rejected here rather than passed through the estimator.
	if factors.Surge <= 0 || factors.Traffic <= 0 || factors.Weather <= 0 || factors.Time <= 0 {
		return nil, fmt.Errorf("%w: fare factors must be positive", models.ErrValidation)
	}

	quote := u.estimator.Estimate(*req.Pickup, *req.Destination, factors)

	observability.FareQuotesTotal.Inc()
	logger.DebugCtx(ctx, "Served fare quote",
		logger.Float64("distance_km", quote.DistanceKm),
		logger.Float64("price", quote.Price))

	return &quote, nil
}
