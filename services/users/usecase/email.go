package usecase

import (
	"context"
	"fmt"
	"time"

	jwtpkg "github.com/antarid/antar/internal/pkg/jwt"
	"github.com/antarid/antar/internal/pkg/logger"
	"github.com/antarid/antar/internal/pkg/models"
	"github.com/antarid/antar/internal/pkg/observability"
	"github.com/antarid/antar/internal/utils"
)

// RequestEmailOTP issues a code keyed by the email and returns a signed
// envelope binding the submitted profile fields to that code. The profile
// is not persisted until the code is verified.
func (u *UserUC) RequestEmailOTP(ctx context.Context, req *models.EmailOTPRequest, role string) (*models.EmailOTPResponse, error) {
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", models.ErrValidation, role)
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: invalid email address", models.ErrValidation)
	}
	if role == models.RoleDriver && (req.VehicleType == "" || req.VehiclePlate == "") {
		return nil, fmt.Errorf("%w: vehicle type and plate are required for drivers", models.ErrValidation)
	}

	ttl := time.Duration(u.cfg.OTP.TTLSeconds) * time.Second
	entry, err := u.otpStore.Issue(ctx, req.Email, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to issue verification code: %w", err)
	}

	profile := models.PendingProfile{
		Kind:         models.PendingKindEmail,
		Email:        req.Email,
		FullName:     utils.SanitizeString(req.FullName),
		Role:         role,
		VehicleType:  utils.SanitizeString(req.VehicleType),
		VehiclePlate: utils.SanitizeString(req.VehiclePlate),
	}

	envelope, envelopeExpiresAt, err := jwtpkg.SignEnvelope(profile, entry.Code, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to sign verification envelope: %w", err)
	}

	event := &models.EmailNotificationEvent{
		Email:     req.Email,
		FullName:  profile.FullName,
		Code:      entry.Code,
		ExpiresAt: entry.ExpiresAt,
	}
	if err := u.userGW.PublishEmailNotification(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to publish email notification: %w", err)
	}

	observability.OTPIssuedTotal.WithLabelValues("email").Inc()
	logger.InfoCtx(ctx, "Issued email verification code",
		logger.String("email", utils.MaskEmail(req.Email)),
		logger.String("role", role))

	return &models.EmailOTPResponse{
		Envelope:  envelope,
		ExpiresIn: envelopeExpiresAt - time.Now().Unix(),
	}, nil
}

// VerifyEmailOTP checks the envelope and the code, then creates or updates
// the identity from the pending profile and returns a session token.
func (u *UserUC) VerifyEmailOTP(ctx context.Context, req *models.EmailVerifyRequest) (*models.AuthResponse, error) {
	claims, err := jwtpkg.ParseEnvelope(req.Envelope, u.cfg)
	if err != nil {
		return nil, err
	}
	profile := claims.Profile

	ok, err := u.otpStore.Validate(ctx, profile.Identifier(), req.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to validate verification code: %w", err)
	}
	if !ok {
		observability.OTPValidatedTotal.WithLabelValues("email", "failure").Inc()
		return nil, models.ErrInvalidOTP
	}
	observability.OTPValidatedTotal.WithLabelValues("email", "success").Inc()

	user, err := u.userRepo.UpsertByEmail(ctx, &models.User{
		Email:    profile.Email,
		MSISDN:   profile.MSISDN,
		FullName: profile.FullName,
		Role:     profile.Role,
		IsActive: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	if profile.Role == models.RoleDriver {
		driverProfile := &models.DriverProfile{
			UserID:       user.ID,
			VehicleType:  profile.VehicleType,
			VehiclePlate: profile.VehiclePlate,
		}
		if err := u.userRepo.AttachDriverProfile(ctx, driverProfile); err != nil {
			return nil, fmt.Errorf("failed to attach driver profile: %w", err)
		}
		user.Role = models.RoleDriver
		user.DriverInfo = driverProfile
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.MSISDN, user.Role, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.InfoCtx(ctx, "Finalized email verification",
		logger.String("user_id", user.ID.String()),
		logger.String("email", utils.MaskEmail(profile.Email)),
		logger.String("role", user.Role))

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}
