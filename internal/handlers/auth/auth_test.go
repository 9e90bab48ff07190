package auth

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/shareit/shareit/internal/domain"
	authservice "github.com/shareit/shareit/internal/service/authservice"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	input := authservice.RegisterInput{
		FullName: "Alice Smith",
		Email:    "alice@example.com",
		Password: "password123",
		Role:     "borrower",
	}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"full_name":"Alice Smith","email":"alice@example.com","password":"password123","role":"borrower"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), input).Return(&domain.User{
					ID:    1,
					Email: "alice@example.com",
					Role:  domain.RoleBorrower,
				}, nil)
				service.EXPECT().GenerateToken(1, domain.RoleBorrower).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Email already taken",
			body: `{"full_name":"Alice Smith","email":"alice@example.com","password":"password123","role":"borrower"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), input).Return(nil, authservice.ErrEmailTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "email already taken",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Password too short",
			body:          `{"email":"alice@example.com","password":"short"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"full_name":"Alice Smith","email":"alice@example.com","password":"password123","role":"borrower"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), input).Return(&domain.User{
					ID:    1,
					Email: "alice@example.com",
					Role:  domain.RoleBorrower,
				}, nil)
				service.EXPECT().GenerateToken(1, domain.RoleBorrower).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "Bearer some-jwt-token", w.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"email":"alice@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "alice@example.com", "password123").Return(&domain.User{
					ID:   1,
					Role: domain.RoleBorrower,
				}, nil)
				service.EXPECT().GenerateToken(1, domain.RoleBorrower).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"email":"alice@example.com","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "alice@example.com", "wrong").Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "Bearer some-jwt-token", w.Header().Get("Authorization"))
			}
		})
	}
}
