package users

import (
	"context"

	"github.com/antarid/antar/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/antarid/antar/services/users UserGW

// UserGW defines the user gateways interface
type UserGW interface {
	PublishSMSNotification(ctx context.Context, event *models.SMSNotificationEvent) error
	PublishEmailNotification(ctx context.Context, event *models.EmailNotificationEvent) error
	PublishBeaconEvent(ctx context.Context, event *models.BeaconEvent) error
}
