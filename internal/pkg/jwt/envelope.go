package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/antarid/antar/internal/pkg/models"
)

// DefaultEnvelopeTTL bounds how long a pending-profile envelope stays
// presentable when configuration leaves the lifetime unset.
const DefaultEnvelopeTTL = 5 * time.Minute

// EnvelopeClaims binds a pending profile to the verification code that was
// issued for it. The envelope travels back to the client and must be
// presented together with the code on the verify step.
type EnvelopeClaims struct {
	Profile models.PendingProfile `json:"profile"`
	Code    string                `json:"code"`
	jwt.StandardClaims
}

// SignEnvelope signs a pending profile and its code into a compact token.
// Envelopes are signed with their own secret so a session token can never
// stand in for one, and vice versa.
func SignEnvelope(profile models.PendingProfile, code string, cfg *models.Config) (string, int64, error) {
	ttl := DefaultEnvelopeTTL
	if cfg.OTP.EnvelopeTTLSeconds > 0 {
		ttl = time.Duration(cfg.OTP.EnvelopeTTLSeconds) * time.Second
	}
	now := time.Now()
	expiresAt := now.Add(ttl).Unix()

	claims := EnvelopeClaims{
		Profile: profile,
		Code:    code,
		StandardClaims: jwt.StandardClaims{
			Subject:   profile.Identifier(),
			Issuer:    cfg.JWT.Issuer,
			IssuedAt:  now.Unix(),
			ExpiresAt: expiresAt,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.OTP.EnvelopeSecret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ParseEnvelope verifies an envelope's signature and expiry and returns its
// claims. Any failure surfaces as models.ErrInvalidEnvelope so callers can
// map it to a single client-facing error.
func ParseEnvelope(tokenString string, cfg *models.Config) (*EnvelopeClaims, error) {
	claims := &EnvelopeClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.OTP.EnvelopeSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidEnvelope, err)
	}
	if !token.Valid {
		return nil, models.ErrInvalidEnvelope
	}

	switch claims.Profile.Kind {
	case models.PendingKindPhone, models.PendingKindEmail:
	default:
		return nil, fmt.Errorf("%w: unknown profile kind %q", models.ErrInvalidEnvelope, claims.Profile.Kind)
	}

	return claims, nil
}
