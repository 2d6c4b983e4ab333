package gateway

import (
	"context"
	"fmt"

	"github.com/antarid/antar/internal/pkg/constants"
	"github.com/antarid/antar/internal/pkg/logger"
	"github.com/antarid/antar/internal/pkg/models"
)

// PublishRideRequested announces a freshly created ride to NATS
func (g *RideGW) PublishRideRequested(ctx context.Context, event *models.RideEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectRideRequested, event); err != nil {
		return fmt.Errorf("failed to publish ride requested event: %w", err)
	}

	logger.DebugCtx(ctx, "Published ride requested event",
		logger.String("ride_id", event.RideID.String()),
		logger.String("rider_id", event.RiderID.String()))
	return nil
}

// PublishRideStatusChanged publishes a ride lifecycle transition to NATS
func (g *RideGW) PublishRideStatusChanged(ctx context.Context, event *models.RideEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectRideStatusChanged, event); err != nil {
		return fmt.Errorf("failed to publish ride status event: %w", err)
	}

	logger.DebugCtx(ctx, "Published ride status event",
		logger.String("ride_id", event.RideID.String()),
		logger.String("status", string(event.Status)))
	return nil
}
