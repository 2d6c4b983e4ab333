package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/antarid/antar/internal/pkg/models"
)

// GetMe returns the caller's profile.
func (u *UserUC) GetMe(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return user, nil
}
