package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antarid/antar/internal/pkg/models"
	"github.com/antarid/antar/internal/pkg/pricing"
	"github.com/antarid/antar/services/rides/mocks"
)

func floatPtr(v float64) *float64 {
	return &v
}

var (
	monas      = models.Coordinate{Latitude: -6.175392, Longitude: 106.827153}
	gedungSate = models.Coordinate{Latitude: -6.902454, Longitude: 107.618881}
)

func TestQuoteFare_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRideRepo(ctrl)
	mockGW := mocks.NewMockRideGW(ctrl)
	estimator := pricing.NewEstimator(models.PricingConfig{Currency: "USD"})

	uc := NewRideUC(mockRepo, mockGW, estimator)

	req := &models.RidePriceRequest{
		Pickup:          &monas,
		Destination:     &gedungSate,
		SurgeMultiplier: floatPtr(1.0),
	}

	// Act
	quote, err := uc.QuoteFare(context.Background(), req)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, quote)
	assert.Greater(t, quote.DistanceKm, 100.0)
	assert.Equal(t, pricing.Round2(pricing.DefaultBaseFare+quote.DistanceKm*pricing.DefaultRatePerKm), quote.Price)
	assert.Equal(t, "USD", quote.Currency)
}

func TestQuoteFare_FactorsScaleMultiplicatively(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRideRepo(ctrl)
	mockGW := mocks.NewMockRideGW(ctrl)
	estimator := pricing.NewEstimator(models.PricingConfig{})

	uc := NewRideUC(mockRepo, mockGW, estimator)

	neutral, err := uc.QuoteFare(context.Background(), &models.RidePriceRequest{
		Pickup:          &monas,
		Destination:     &gedungSate,
		SurgeMultiplier: floatPtr(1.0),
	})
	require.NoError(t, err)

	// Act
	scaled, err := uc.QuoteFare(context.Background(), &models.RidePriceRequest{
		Pickup:          &monas,
		Destination:     &gedungSate,
		SurgeMultiplier: floatPtr(2.0),
		TrafficFactor:   floatPtr(1.5),
	})

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, neutral.Price*2.0*1.5, scaled.Price, 0.015)
}

func TestQuoteFare_MissingCoordinates(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRideRepo(ctrl)
	mockGW := mocks.NewMockRideGW(ctrl)

	uc := NewRideUC(mockRepo, mockGW, pricing.NewEstimator(models.PricingConfig{}))

	req := &models.RidePriceRequest{
		Destination:     &gedungSate,
		SurgeMultiplier: floatPtr(1.0),
	}

	// Act
	quote, err := uc.QuoteFare(context.Background(), req)

	// Assert
	assert.Nil(t, quote)
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Contains(t, err.Error(), "pickup and destination are required")
}

func TestQuoteFare_MissingSurgeMultiplier(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRideRepo(ctrl)
	mockGW := mocks.NewMockRideGW(ctrl)

	uc := NewRideUC(mockRepo, mockGW, pricing.NewEstimator(models.PricingConfig{}))

	req := &models.RidePriceRequest{
		Pickup:      &monas,
		Destination: &gedungSate,
	}

	// Act
	quote, err := uc.QuoteFare(context.Background(), req)

	// Assert
	assert.Nil(t, quote)
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Contains(t, err.Error(), "surgeMultiplier is required")
}

func TestQuoteFare_NonPositiveFactors(t *testing.T) {
	testCases := []struct {
		name string
		req  *models.RidePriceRequest
	}{
		{
			name: "Zero Surge",
			req: &models.RidePriceRequest{
				Pickup:          &monas,
				Destination:     &gedungSate,
				SurgeMultiplier: floatPtr(0),
			},
		},
		{
			name: "Negative Surge",
			req: &models.RidePriceRequest{
				Pickup:          &monas,
				Destination:     &gedungSate,
				SurgeMultiplier: floatPtr(-1.0),
			},
		},
		{
			name: "Zero Traffic Factor",
			req: &models.RidePriceRequest{
				Pickup:          &monas,
				Destination:     &gedungSate,
				SurgeMultiplier: floatPtr(1.0),
				TrafficFactor:   floatPtr(0),
			},
		},
		{
			name: "Negative Weather Factor",
			req: &models.RidePriceRequest{
				Pickup:          &monas,
				Destination:     &gedungSate,
				SurgeMultiplier: floatPtr(1.0),
				WeatherFactor:   floatPtr(-0.5),
			},
		},
		{
			name: "Zero Time Factor",
			req: &models.RidePriceRequest{
				Pickup:          &monas,
				Destination:     &gedungSate,
				SurgeMultiplier: floatPtr(1.0),
				TimeFactor:      floatPtr(0),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockRideRepo(ctrl)
			mockGW := mocks.NewMockRideGW(ctrl)

			uc := NewRideUC(mockRepo, mockGW, pricing.NewEstimator(models.PricingConfig{}))

			// Act
			quote, err := uc.QuoteFare(context.Background(), tc.req)

			// Assert
			assert.Nil(t, quote)
			assert.ErrorIs(t, err, models.ErrValidation)
			assert.Contains(t, err.Error(), "fare factors must be positive")
		})
	}
}

func TestQuoteFare_ZeroDistance(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRideRepo(ctrl)
	mockGW := mocks.NewMockRideGW(ctrl)

	uc := NewRideUC(mockRepo, mockGW, pricing.NewEstimator(models.PricingConfig{}))

	req := &models.RidePriceRequest{
		Pickup:          &monas,
		Destination:     &monas,
		SurgeMultiplier: floatPtr(1.0),
	}

	// Act
	quote, err := uc.QuoteFare(context.Background(), req)

	// Assert: identical endpoints leave just the base fare.
	require.NoError(t, err)
	assert.Equal(t, pricing.DefaultBaseFare, quote.Price)
	assert.InDelta(t, 0.0, quote.DistanceKm, 0.001)
}
