package gateway

import (
	"context"
	"fmt"

	"github.com/antarid/antar/internal/pkg/constants"
	"github.com/antarid/antar/internal/pkg/logger"
	"github.com/antarid/antar/internal/pkg/models"
	"github.com/antarid/antar/internal/utils"
)

// PublishSMSNotification hands an issued phone code to the SMS delivery worker
func (g *UserGW) PublishSMSNotification(ctx context.Context, event *models.SMSNotificationEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectNotifySMS, event); err != nil {
		return fmt.Errorf("failed to publish sms notification: %w", err)
	}

	logger.DebugCtx(ctx, "Published SMS notification event",
		logger.String("msisdn", utils.MaskMSISDN(event.MSISDN)))
	return nil
}

// PublishEmailNotification hands an issued email code to the mail delivery worker
func (g *UserGW) PublishEmailNotification(ctx context.Context, event *models.EmailNotificationEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectNotifyEmail, event); err != nil {
		return fmt.Errorf("failed to publish email notification: %w", err)
	}

	logger.DebugCtx(ctx, "Published email notification event",
		logger.String("email", utils.MaskEmail(event.Email)))
	return nil
}

// PublishBeaconEvent publishes a driver availability change to NATS
func (g *UserGW) PublishBeaconEvent(ctx context.Context, event *models.BeaconEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectDriverBeacon, event); err != nil {
		return fmt.Errorf("failed to publish beacon event: %w", err)
	}

	logger.DebugCtx(ctx, "Published beacon event",
		logger.String("driver_id", event.DriverID.String()),
		logger.Bool("is_active", event.IsActive))
	return nil
}
