package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/antarid/antar/internal/pkg/database"
)

// RideRepo persists rides in PostgreSQL.
type RideRepo struct {
	db *sqlx.DB
}

// NewRideRepo creates a new ride repository instance
func NewRideRepo(client *database.PostgresClient) *RideRepo {
	return &RideRepo{db: client.DB}
}
