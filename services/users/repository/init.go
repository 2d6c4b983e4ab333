package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/antarid/antar/internal/pkg/database"
)

// UserRepo persists identities in PostgreSQL.
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(client *database.PostgresClient) *UserRepo {
	return &UserRepo{db: client.DB}
}

// BeaconRepo keeps driver availability in Redis.
type BeaconRepo struct {
	redisClient *database.RedisClient
}

// NewBeaconRepo creates a new beacon repository instance
func NewBeaconRepo(redisClient *database.RedisClient) *BeaconRepo {
	return &BeaconRepo{redisClient: redisClient}
}
