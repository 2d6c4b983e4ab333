package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/antarid/antar/internal/pkg/jwt"
	"github.com/antarid/antar/internal/pkg/models"
	"github.com/antarid/antar/internal/pkg/otp"
	"github.com/antarid/antar/services/users/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "test-issuer",
		},
		OTP: models.OTPConfig{
			TTLSeconds:         300,
			EnvelopeSecret:     "test-envelope-secret",
			EnvelopeTTLSeconds: 300,
		},
	}
}

func TestRegister_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockBeaconRepo := mocks.NewMockBeaconRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	store := otp.NewMemoryStore()
	defer store.Close()

	uc := NewUserUC(mockRepo, mockBeaconRepo, mockGW, store, testConfig())

	var published *models.SMSNotificationEvent
	mockGW.EXPECT().
		PublishSMSNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.SMSNotificationEvent) error {
			published = event
			return nil
		})

	// Act
	resp, err := uc.Register(context.Background(), &models.RegisterRequest{MSISDN: "08123456789"}, models.RoleRider)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "628123456789", resp.MSISDN)
	assert.Equal(t, int64(300), resp.ExpiresIn)

	require.NotNil(t, published)
	assert.Equal(t, "628123456789", published.MSISDN)
	assert.Len(t, published.Code, 4)

	// The published code is the one the store validates.
	ok, err := store.Validate(context.Background(), "628123456789", published.Code)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegister_InvalidMSISDN(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockBeaconRepo := mocks.NewMockBeaconRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	store := otp.NewMemoryStore()
	defer store.Close()

	uc := NewUserUC(mockRepo, mockBeaconRepo, mockGW, store, testConfig())

	// Act
	resp, err := uc.Register(context.Background(), &models.RegisterRequest{MSISDN: "12345"}, models.RoleRider)

	// Assert
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestRegister_UnknownRole(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockBeaconRepo := mocks.NewMockBeaconRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	store := otp.NewMemoryStore()
	defer store.Close()

	uc := NewUserUC(mockRepo, mockBeaconRepo, mockGW, store, testConfig())

	// Act
	resp, err := uc.Register(context.Background(), &models.RegisterRequest{MSISDN: "08123456789"}, "admin")

	// Assert
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Contains(t, err.Error(), "unknown role")
}

func TestRegister_PublishError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockBeaconRepo := mocks.NewMockBeaconRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	store := otp.NewMemoryStore()
	defer store.Close()

	uc := NewUserUC(mockRepo, mockBeaconRepo, mockGW, store, testConfig())

	mockGW.EXPECT().
		PublishSMSNotification(gomock.Any(), gomock.Any()).
		Return(errors.New("nats unavailable"))

	// Act
	resp, err := uc.Register(context.Background(), &models.RegisterRequest{MSISDN: "08123456789"}, models.RoleRider)

	// Assert
	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish SMS notification")
}

func TestVerifyOTP_Success_NewUser(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockBeaconRepo := mocks.NewMockBeaconRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	store := otp.NewMemoryStore()
	defer store.Close()

	uc := NewUserUC(mockRepo, mockBeaconRepo, mockGW, store, testConfig())

	entry, err := store.Issue(context.Background(), "628123456789", 0)
	require.NoError(t, err)

	userID := uuid.New()
	mockRepo.EXPECT().
		GetUserByMSISDN(gomock.Any(), "628123456789").
		Return(nil, fmt.Errorf("user %w", models.ErrNotFound))
	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) (*models.User, error) {
			assert.Equal(t, "628123456789", user.MSISDN)
			assert.Equal(t, models.RoleRider, user.Role)
			assert.True(t, user.IsActive)
			user.ID = userID
			return user, nil
		})

	// Act
	resp, err := uc.VerifyOTP(context.Background(), &models.VerifyRequest{MSISDN: "08123456789", Code: entry.Code}, models.RoleRider)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, userID, resp.UserID)
	assert.Equal(t, models.RoleRider, resp.Role)
	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresAt, int64(0))

	// The token carries the identity the session middleware reads back.
	claims, err := jwtpkg.ValidateToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, models.RoleRider, (*claims)["role"])
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockBeaconRepo := mocks.NewMockBeaconRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	store := otp.NewMemoryStore()
	defer store.Close()

	uc := NewUserUC(mockRepo, mockBeaconRepo, mockGW, store, testConfig())

	entry, err := store.Issue(context.Background(), "628123456789", 0)
	require.NoError(t, err)

	wrong := "0000"
	if entry.Code == wrong {
		wrong = "0001"
	}

	// Act
	resp, err := uc.VerifyOTP(context.Background(), &models.VerifyRequest{MSISDN: "08123456789", Code: wrong}, models.RoleRider)

	// Assert
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, models.ErrInvalidOTP)
}

func TestVerifyOTP_NoIssuedCode(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockBeaconRepo := mocks.NewMockBeaconRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	store := otp.NewMemoryStore()
	defer store.Close()

	uc := NewUserUC(mockRepo, mockBeaconRepo, mockGW, store, testConfig())

	// Act
	resp, err := uc.VerifyOTP(context.Background(), &models.VerifyRequest{MSISDN: "08123456789", Code: "1234"}, models.RoleRider)

	// Assert
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, models.ErrInvalidOTP)
}

func TestVerifyOTP_StoredRoleWins(t *testing.T) {
	// Arrange: the number already belongs to a driver account, but the
	// caller came through the rider route.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockBeaconRepo := mocks.NewMockBeaconRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	store := otp.NewMemoryStore()
	defer store.Close()

	uc := NewUserUC(mockRepo, mockBeaconRepo, mockGW, store, testConfig())

	entry, err := store.Issue(context.Background(), "628123456789", 0)
	require.NoError(t, err)

	existing := &models.User{
		ID:       uuid.New(),
		MSISDN:   "628123456789",
		FullName: "Dewi Driver",
		Role:     models.RoleDriver,
		IsActive: true,
	}
	mockRepo.EXPECT().
		GetUserByMSISDN(gomock.Any(), "628123456789").
		Return(existing, nil)

	// Act
	resp, err := uc.VerifyOTP(context.Background(), &models.VerifyRequest{MSISDN: "08123456789", Code: entry.Code}, models.RoleRider)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.RoleDriver, resp.Role)
	assert.Equal(t, existing.ID, resp.UserID)
}

func TestVerifyOTP_LookupError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockBeaconRepo := mocks.NewMockBeaconRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	store := otp.NewMemoryStore()
	defer store.Close()

	uc := NewUserUC(mockRepo, mockBeaconRepo, mockGW, store, testConfig())

	entry, err := store.Issue(context.Background(), "628123456789", 0)
	require.NoError(t, err)

	mockRepo.EXPECT().
		GetUserByMSISDN(gomock.Any(), "628123456789").
		Return(nil, errors.New("connection reset"))

	// Act
	resp, err := uc.VerifyOTP(context.Background(), &models.VerifyRequest{MSISDN: "08123456789", Code: entry.Code}, models.RoleRider)

	// Assert
	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to look up user")
}

func TestVerifyOTP_CreateUserError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockBeaconRepo := mocks.NewMockBeaconRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	store := otp.NewMemoryStore()
	defer store.Close()

	uc := NewUserUC(mockRepo, mockBeaconRepo, mockGW, store, testConfig())

	entry, err := store.Issue(context.Background(), "628123456789", 0)
	require.NoError(t, err)

	mockRepo.EXPECT().
		GetUserByMSISDN(gomock.Any(), "628123456789").
		Return(nil, fmt.Errorf("user %w", models.ErrNotFound))
	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("duplicate key"))

	// Act
	resp, err := uc.VerifyOTP(context.Background(), &models.VerifyRequest{MSISDN: "08123456789", Code: entry.Code}, models.RoleRider)

	// Assert
	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create user")
}
