package gateway

import (
	natspkg "github.com/antarid/antar/internal/pkg/nats"
	"github.com/antarid/antar/services/users"
)

// UserGW handles user gateway operations
type UserGW struct {
	natsClient *natspkg.Client
}

// NewUserGW creates a new gateway instance publishing over NATS
func NewUserGW(natsClient *natspkg.Client) users.UserGW {
	return &UserGW{
		natsClient: natsClient,
	}
}
