package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/shareit/shareit/internal/domain"
	"github.com/shareit/shareit/internal/dto"
	ledgerservice "github.com/shareit/shareit/internal/service/ledgerservice"
	"github.com/shareit/shareit/pkg/auth"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedCtx() context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, 1)
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().Balance(authedCtx(), 1).Return(decimal.NewFromFloat(250.50), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{Balance: 250.50},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().Balance(authedCtx(), 1).Return(decimal.Zero, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/wallet/balance", nil)
			r = r.WithContext(authedCtx())
			w := httptest.NewRecorder()

			handler.GetBalance(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestTopUpHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		body           string
		idempotencyKey string
		prepareMock    func()
		expectedCode   int
		expectedError  string
	}{
		{
			name:           "Successful top-up",
			body:           `{"amount":500,"card":"2404815702"}`,
			idempotencyKey: "key-1",
			prepareMock: func() {
				service.EXPECT().
					TopUp(authedCtx(), 1, decimal.NewFromFloat(500), "topup:1:key-1", "wallet top-up").
					Return(decimal.NewFromFloat(500), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:           "Generated key when header absent",
			body:           `{"amount":500}`,
			idempotencyKey: "",
			prepareMock: func() {
				service.EXPECT().
					TopUp(authedCtx(), 1, decimal.NewFromFloat(500), gomock.Any(), "wallet top-up").
					Return(decimal.NewFromFloat(500), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"amount":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:           "Oversized idempotency key",
			body:           `{"amount":500}`,
			idempotencyKey: strings.Repeat("k", maxIdempotencyKeyLen+1),
			prepareMock:    func() {},
			expectedCode:   http.StatusBadRequest,
			expectedError:  "Idempotency-Key must not exceed 100 characters",
		},
		{
			name:           "Key at the limit passes through",
			body:           `{"amount":500}`,
			idempotencyKey: strings.Repeat("k", maxIdempotencyKeyLen),
			prepareMock: func() {
				service.EXPECT().
					TopUp(authedCtx(), 1, decimal.NewFromFloat(500), "topup:1:"+strings.Repeat("k", maxIdempotencyKeyLen), "wallet top-up").
					Return(decimal.NewFromFloat(500), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid card number",
			body:          `{"amount":500,"card":"1234567890"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid card number",
		},
		{
			name:           "Invalid amount",
			body:           `{"amount":-5}`,
			idempotencyKey: "key-2",
			prepareMock: func() {
				service.EXPECT().
					TopUp(authedCtx(), 1, decimal.NewFromFloat(-5), "topup:1:key-2", "wallet top-up").
					Return(decimal.Zero, ledgerservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid amount",
		},
		{
			name:           "Replayed key with different amount",
			body:           `{"amount":500}`,
			idempotencyKey: "key-3",
			prepareMock: func() {
				service.EXPECT().
					TopUp(authedCtx(), 1, decimal.NewFromFloat(500), "topup:1:key-3", "wallet top-up").
					Return(decimal.Zero, ledgerservice.ErrOpConflict)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:           "Internal server error",
			body:           `{"amount":500}`,
			idempotencyKey: "key-4",
			prepareMock: func() {
				service.EXPECT().
					TopUp(authedCtx(), 1, decimal.NewFromFloat(500), "topup:1:key-4", "wallet top-up").
					Return(decimal.Zero, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/wallet/topup", bytes.NewBufferString(tt.body))
			r = r.WithContext(authedCtx())
			if tt.idempotencyKey != "" {
				r.Header.Set("Idempotency-Key", tt.idempotencyKey)
			}
			w := httptest.NewRecorder()

			handler.TopUp(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetHistoryHandler(t *testing.T) {
	handler, service := NewMock(t)
	timeNow := time.Now()
	bookingID := 12

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().History(authedCtx(), 1, 100).Return([]domain.LedgerEntry{
					{
						ID:          2,
						EntryType:   domain.EntryTypeHold,
						Amount:      decimal.NewFromInt(-300),
						BookingID:   &bookingID,
						Description: "deposit hold",
						CreatedAt:   timeNow,
					},
					{
						ID:          1,
						EntryType:   domain.EntryTypeTopup,
						Amount:      decimal.NewFromInt(500),
						Description: "wallet top-up",
						CreatedAt:   timeNow,
					},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().History(authedCtx(), 1, 100).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/wallet/history", nil)
			r = r.WithContext(authedCtx())
			w := httptest.NewRecorder()

			handler.GetHistory(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.LedgerEntryResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
				assert.Equal(t, domain.EntryTypeHold, body[0].EntryType)
				assert.Equal(t, &bookingID, body[0].BookingID)
			}
		})
	}
}
