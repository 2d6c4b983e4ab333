package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/antarid/antar/internal/pkg/models"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		data       interface{}
	}{
		{
			name:       "Success with string data",
			statusCode: http.StatusOK,
			message:    "Operation successful",
			data:       "test data",
		},
		{
			name:       "Success with map data",
			statusCode: http.StatusCreated,
			message:    "Resource created",
			data:       map[string]interface{}{"id": "123", "name": "test"},
		},
		{
			name:       "Success with nil data",
			statusCode: http.StatusOK,
			message:    "Success",
			data:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(t)

			err := SuccessResponse(c, tt.statusCode, tt.message, tt.data)
			assert.NoError(t, err)
			assert.Equal(t, tt.statusCode, rec.Code)

			var response Response
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.True(t, response.Success)
			assert.Equal(t, tt.message, response.Message)
		})
	}
}

func TestErrorResponseHandler(t *testing.T) {
	c, rec := newTestContext(t)

	err := ErrorResponseHandler(c, http.StatusBadRequest, "invalid payload")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.False(t, response.Success)
	assert.Equal(t, "invalid payload", response.Error)
	assert.Equal(t, http.StatusBadRequest, response.Code)
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "not found",
			err:        models.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantError:  models.ErrNotFound.Error(),
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("loading ride: %w", models.ErrNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "forbidden",
			err:        models.ErrForbidden,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "invalid otp",
			err:        models.ErrInvalidOTP,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid envelope",
			err:        models.ErrInvalidEnvelope,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid transition",
			err:        models.ErrInvalidTransition,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown error hides internals",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(t)

			err := FromError(c, tt.err)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var response ErrorResponse
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.False(t, response.Success)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, response.Error)
			}
		})
	}
}

func TestTooManyRequestsResponse(t *testing.T) {
	c, rec := newTestContext(t)

	err := TooManyRequestsResponse(c, "")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var response ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Too many requests", response.Error)
}
