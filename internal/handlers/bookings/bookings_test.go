package bookings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/shareit/shareit/internal/domain"
	"github.com/shareit/shareit/internal/dto"
	bookingservice "github.com/shareit/shareit/internal/service/bookingservice"
	ledgerservice "github.com/shareit/shareit/internal/service/ledgerservice"
	"github.com/shareit/shareit/pkg/auth"
)

func NewMock(t *testing.T) (*BookingHandler, *MockService, *MockAvailability) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	availability := NewMockAvailability(ctrl)
	handler := New(service, availability)
	defer ctrl.Finish()
	return handler, service, availability
}

func authedCtx() context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, 1)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:           12,
		ItemID:       7,
		BorrowerID:   1,
		LenderID:     3,
		StartDate:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
		TotalDeposit: decimal.NewFromInt(30),
		Status:       domain.BookingStatusPending,
		ItemTitle:    "cordless drill",
		LenderName:   "Lena Ortiz",
		BorrowerName: "Boris Vance",
	}
}

func TestCreateBookingHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	body := `{"item_id":7,"start_date":"2025-03-10T00:00:00Z","end_date":"2025-03-13T00:00:00Z","reason":"weekend project"}`
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful booking request",
			body: body,
			prepareMock: func() {
				service.EXPECT().
					Request(authedCtx(), 1, 7, start, end, "weekend project").
					Return(sampleBooking(), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Item unavailable",
			body: body,
			prepareMock: func() {
				service.EXPECT().
					Request(authedCtx(), 1, 7, start, end, "weekend project").
					Return(nil, bookingservice.ErrItemUnavailable)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "item unavailable",
		},
		{
			name: "Own item",
			body: body,
			prepareMock: func() {
				service.EXPECT().
					Request(authedCtx(), 1, 7, start, end, "weekend project").
					Return(nil, bookingservice.ErrOwnItem)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "cannot book your own item",
		},
		{
			name: "Insufficient funds",
			body: body,
			prepareMock: func() {
				service.EXPECT().
					Request(authedCtx(), 1, 7, start, end, "weekend project").
					Return(nil, ledgerservice.ErrInsufficientFunds)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient funds",
		},
		{
			name: "Internal server error",
			body: body,
			prepareMock: func() {
				service.EXPECT().
					Request(authedCtx(), 1, 7, start, end, "weekend project").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(tt.body))
			r = r.WithContext(authedCtx())
			w := httptest.NewRecorder()

			handler.CreateBooking(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.BookingResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 12, body.ID)
				assert.Equal(t, domain.BookingStatusPending, body.Status)
			}
		})
	}
}

func TestGetBookingsHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().GetUserBookings(authedCtx(), 1).Return([]domain.Booking{*sampleBooking()}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetUserBookings(authedCtx(), 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
			r = r.WithContext(authedCtx())
			w := httptest.NewRecorder()

			handler.GetBookings(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.BookingResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
				assert.Equal(t, "cordless drill", body[0].ItemTitle)
				assert.Equal(t, "Lena Ortiz", body[0].LenderName)
				assert.Equal(t, "Boris Vance", body[0].BorrowerName)
			}
		})
	}
}

func TestGetPendingHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().GetPendingForLender(authedCtx(), 1).Return([]domain.Booking{*sampleBooking()}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/bookings/pending", nil)
	r = r.WithContext(authedCtx())
	w := httptest.NewRecorder()

	handler.GetPending(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetActiveItemsHandler(t *testing.T) {
	handler, _, availability := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				availability.EXPECT().ActiveItems(authedCtx()).Return(map[int]int{7: 3, 9: 0}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				availability.EXPECT().ActiveItems(authedCtx()).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/bookings/active-items", nil)
			r = r.WithContext(authedCtx())
			w := httptest.NewRecorder()

			handler.GetActiveItems(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ActiveItemsResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, map[int]int{7: 3, 9: 0}, body.Active)
			}
		})
	}
}

func TestGetBookingHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful retrieval",
			id:   "12",
			prepareMock: func() {
				service.EXPECT().GetByID(gomock.Any(), 1, 12).Return(sampleBooking(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid booking id",
			id:            "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid booking id",
		},
		{
			name: "Booking not found",
			id:   "12",
			prepareMock: func() {
				service.EXPECT().GetByID(gomock.Any(), 1, 12).Return(nil, bookingservice.ErrBookingNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "booking not found",
		},
		{
			name: "Not a booking party",
			id:   "12",
			prepareMock: func() {
				service.EXPECT().GetByID(gomock.Any(), 1, 12).Return(nil, bookingservice.ErrForbidden)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/bookings/"+tt.id, nil)
			r = r.WithContext(authedCtx())
			r = withURLParam(r, "id", tt.id)
			w := httptest.NewRecorder()

			handler.GetBooking(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestDecideBookingHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		id            string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Accept a pending booking",
			id:   "12",
			body: `{"status":"accepted"}`,
			prepareMock: func() {
				accepted := sampleBooking()
				accepted.Status = domain.BookingStatusAccepted
				service.EXPECT().Decide(gomock.Any(), 1, 12, domain.BookingStatusAccepted).Return(accepted, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid booking id",
			id:            "abc",
			body:          `{"status":"accepted"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid booking id",
		},
		{
			name:          "Invalid request body",
			id:            "12",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Transition not allowed",
			id:   "12",
			body: `{"status":"returned"}`,
			prepareMock: func() {
				service.EXPECT().Decide(gomock.Any(), 1, 12, domain.BookingStatusReturned).Return(nil, bookingservice.ErrInvalidTransition)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "invalid transition",
		},
		{
			name: "Frozen by open dispute",
			id:   "12",
			body: `{"status":"returned"}`,
			prepareMock: func() {
				service.EXPECT().Decide(gomock.Any(), 1, 12, domain.BookingStatusReturned).Return(nil, bookingservice.ErrDisputeOpen)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "booking frozen by open dispute",
		},
		{
			name: "Wrong side of the booking",
			id:   "12",
			body: `{"status":"accepted"}`,
			prepareMock: func() {
				service.EXPECT().Decide(gomock.Any(), 1, 12, domain.BookingStatusAccepted).Return(nil, bookingservice.ErrForbidden)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPatch, "/api/bookings/"+tt.id, bytes.NewBufferString(tt.body))
			r = r.WithContext(authedCtx())
			r = withURLParam(r, "id", tt.id)
			w := httptest.NewRecorder()

			handler.DecideBooking(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}
