package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	jwtpkg "github.com/antarid/antar/internal/pkg/jwt"
	"github.com/antarid/antar/internal/pkg/logger"
	"github.com/antarid/antar/internal/pkg/models"
	"github.com/antarid/antar/internal/pkg/observability"
	"github.com/antarid/antar/internal/utils"
)

// Register issues a verification code for the MSISDN and hands it to the
// SMS delivery worker. No identity is touched until the code is verified.
func (u *UserUC) Register(ctx context.Context, req *models.RegisterRequest, role string) (*models.RegisterResponse, error) {
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", models.ErrValidation, role)
	}

	msisdn, err := utils.NormalizeMSISDN(req.MSISDN)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	ttl := time.Duration(u.cfg.OTP.TTLSeconds) * time.Second
	entry, err := u.otpStore.Issue(ctx, msisdn, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to issue verification code: %w", err)
	}

	event := &models.SMSNotificationEvent{
		MSISDN:    msisdn,
		Code:      entry.Code,
		ExpiresAt: entry.ExpiresAt,
	}
	if err := u.userGW.PublishSMSNotification(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to publish SMS notification: %w", err)
	}

	observability.OTPIssuedTotal.WithLabelValues("sms").Inc()
	logger.InfoCtx(ctx, "Issued phone verification code",
		logger.String("msisdn", utils.MaskMSISDN(msisdn)),
		logger.String("role", role))

	return &models.RegisterResponse{
		MSISDN:    msisdn,
		ExpiresIn: int64(entry.ExpiresAt.Sub(entry.IssuedAt).Seconds()),
	}, nil
}

// VerifyOTP validates the submitted code, creates the account on first
// login and returns a session token.
func (u *UserUC) VerifyOTP(ctx context.Context, req *models.VerifyRequest, role string) (*models.AuthResponse, error) {
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", models.ErrValidation, role)
	}

	msisdn, err := utils.NormalizeMSISDN(req.MSISDN)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	ok, err := u.otpStore.Validate(ctx, msisdn, req.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to validate verification code: %w", err)
	}
	if !ok {
		observability.OTPValidatedTotal.WithLabelValues("sms", "failure").Inc()
		return nil, models.ErrInvalidOTP
	}
	observability.OTPValidatedTotal.WithLabelValues("sms", "success").Inc()

	user, err := u.userRepo.GetUserByMSISDN(ctx, msisdn)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		user, err = u.userRepo.CreateUser(ctx, &models.User{
			MSISDN:   msisdn,
			Role:     role,
			IsActive: true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		logger.InfoCtx(ctx, "Created account from phone verification",
			logger.String("user_id", user.ID.String()),
			logger.String("role", user.Role))
	}

	// Ownership of the number is proven; the stored role wins over the
	// route the caller happened to use.
	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.MSISDN, user.Role, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}
