package pricing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/antarid/antar/internal/pkg/models"
)

func TestEstimateZeroDistance(t *testing.T) {
	estimator := NewEstimator(models.PricingConfig{})
	point := models.Coordinate{Latitude: -6.175392, Longitude: 106.827153}

	quote := estimator.Estimate(point, point, DefaultFactors())

	// With no distance only the base fare remains.
	assert.Equal(t, DefaultBaseFare, quote.Price)
	assert.InDelta(t, 0.0, quote.DistanceKm, 0.001)
}

func TestEstimateDefaults(t *testing.T) {
	estimator := NewEstimator(models.PricingConfig{Currency: "USD"})
	pickup := models.Coordinate{Latitude: 0, Longitude: 0}
	destination := models.Coordinate{Latitude: 0, Longitude: 0.1} // ~11.13 km

	quote := estimator.Estimate(pickup, destination, DefaultFactors())

	// fare = 5.0 + distance * 2.0 with neutral factors
	expected := Round2(DefaultBaseFare + quote.DistanceKm*DefaultRatePerKm)
	assert.Equal(t, expected, quote.Price)
	assert.Equal(t, "USD", quote.Currency)
	assert.InDelta(t, 11.13, quote.DistanceKm, 0.05)
}

func TestEstimateFactorComposition(t *testing.T) {
	estimator := NewEstimator(models.PricingConfig{})
	pickup := models.Coordinate{Latitude: -6.175392, Longitude: 106.827153}
	destination := models.Coordinate{Latitude: -6.914744, Longitude: 107.609810}

	tests := []struct {
		name    string
		factors Factors
		scale   float64
	}{
		{name: "neutral", factors: Factors{Surge: 1, Traffic: 1, Weather: 1, Time: 1}, scale: 1.0},
		{name: "double surge", factors: Factors{Surge: 2, Traffic: 1, Weather: 1, Time: 1}, scale: 2.0},
		{name: "half time factor", factors: Factors{Surge: 1, Traffic: 1, Weather: 1, Time: 0.5}, scale: 0.5},
		{name: "combined factors", factors: Factors{Surge: 1.5, Traffic: 1.2, Weather: 1.1, Time: 1}, scale: 1.5 * 1.2 * 1.1},
	}

	base := estimator.Estimate(pickup, destination, DefaultFactors())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := estimator.Estimate(pickup, destination, tt.factors)
			assert.InDelta(t, base.Price*tt.scale, quote.Price, 0.015)
		})
	}
}

func TestEstimateConfiguredRates(t *testing.T) {
	estimator := NewEstimator(models.PricingConfig{BaseFare: 10, RatePerKm: 3, Currency: "IDR"})
	point := models.Coordinate{Latitude: 1, Longitude: 1}

	quote := estimator.Estimate(point, point, DefaultFactors())

	assert.Equal(t, 10.0, quote.Price)
	assert.Equal(t, "IDR", quote.Currency)
}

func TestEstimatePriceRounding(t *testing.T) {
	estimator := NewEstimator(models.PricingConfig{})
	pickup := models.Coordinate{Latitude: 0, Longitude: 0}
	destination := models.Coordinate{Latitude: 0, Longitude: 0.03}

	quote := estimator.Estimate(pickup, destination, Factors{Surge: 1.17, Traffic: 1.03, Weather: 1, Time: 1})

	// Two decimal places survive a formatting round trip.
	assert.Equal(t, quote.Price, Round2(quote.Price))
	formatted := fmt.Sprintf("%.2f", quote.Price)
	assert.Regexp(t, `^\d+\.\d{2}$`, formatted)
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{5.004, 5.0},
		{5.006, 5.01},
		{12.3449, 12.34},
		{12.3451, 12.35},
		{0.0, 0.0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, Round2(tt.in), 1e-9, "Round2(%v)", tt.in)
	}
}
