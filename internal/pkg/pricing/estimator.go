package pricing

import (
	"math"

	"github.com/antarid/antar/internal/pkg/geo"
	"github.com/antarid/antar/internal/pkg/models"
)

// Default fare parameters, used when configuration leaves them unset.
const (
	DefaultBaseFare  = 5.0
	DefaultRatePerKm = 2.0
)

// Factors holds the multiplicative fare adjustments. Every field must be a
// positive number; callers substitute 1.0 for adjustments they do not apply.
type Factors struct {
	Surge   float64
	Traffic float64
	Weather float64
	Time    float64
}

// DefaultFactors returns a neutral set of adjustments.
func DefaultFactors() Factors {
	return Factors{Surge: 1.0, Traffic: 1.0, Weather: 1.0, Time: 1.0}
}

// Estimator computes fare quotes from trip distance and adjustment factors.
// It holds configuration only and is safe for concurrent use.
type Estimator struct {
	baseFare  float64
	ratePerKm float64
	currency  string
}

// NewEstimator creates an estimator from pricing configuration, falling
// back to default parameters for unset values.
func NewEstimator(cfg models.PricingConfig) *Estimator {
	baseFare := cfg.BaseFare
	if baseFare == 0 {
		baseFare = DefaultBaseFare
	}
	ratePerKm := cfg.RatePerKm
	if ratePerKm == 0 {
		ratePerKm = DefaultRatePerKm
	}
	return &Estimator{
		baseFare:  baseFare,
		ratePerKm: ratePerKm,
		currency:  cfg.Currency,
	}
}

// Estimate calculates the fare for a trip between pickup and destination:
// the base fare plus the per-kilometer rate over the great-circle distance,
// scaled by each adjustment factor, rounded to 2 decimal places.
func (e *Estimator) Estimate(pickup, destination models.Coordinate, f Factors) models.FareQuote {
	distanceKm := geo.Distance(pickup, destination)

	fare := (e.baseFare + distanceKm*e.ratePerKm) * f.Surge * f.Traffic * f.Weather * f.Time

	return models.FareQuote{
		Price:      Round2(fare),
		DistanceKm: distanceKm,
		Currency:   e.currency,
	}
}

// Round2 rounds a monetary amount to 2 decimal places, half away from zero.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
