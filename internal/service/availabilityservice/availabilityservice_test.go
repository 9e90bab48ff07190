package availabilityservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/shareit/shareit/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockBookingRepo) {
	ctrl := gomock.NewController(t)
	bookingRepo := NewMockBookingRepo(ctrl)
	service := New(bookingRepo, 15*time.Second)
	service.now = func() time.Time {
		return time.Date(2024, 11, 10, 13, 30, 0, 0, time.UTC)
	}
	defer ctrl.Finish()
	return service, bookingRepo
}

func TestDaysRemaining(t *testing.T) {
	endAt := func(day int) time.Time {
		return time.Date(2024, 11, day, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name         string
		prepareMock  func(repo *MockBookingRepo)
		expectedDays *int
		expectedErr  error
	}{
		{
			name: "No active booking means rentable",
			prepareMock: func(repo *MockBookingRepo) {
				repo.EXPECT().FindActiveByItemID(gomock.Any(), 7).Return(nil, nil)
			},
			expectedDays: nil,
		},
		{
			name: "Three days until the booking ends",
			prepareMock: func(repo *MockBookingRepo) {
				repo.EXPECT().FindActiveByItemID(gomock.Any(), 7).Return(&domain.Booking{
					ItemID:  7,
					EndDate: endAt(13),
				}, nil)
			},
			expectedDays: intPtr(3),
		},
		{
			name: "Overdue booking clamps to zero",
			prepareMock: func(repo *MockBookingRepo) {
				repo.EXPECT().FindActiveByItemID(gomock.Any(), 7).Return(&domain.Booking{
					ItemID:  7,
					EndDate: endAt(8),
				}, nil)
			},
			expectedDays: intPtr(0),
		},
		{
			name: "Repository error propagates",
			prepareMock: func(repo *MockBookingRepo) {
				repo.EXPECT().FindActiveByItemID(gomock.Any(), 7).Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			days, err := service.DaysRemaining(context.Background(), 7)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedDays, days)
		})
	}
}

func TestActiveItems(t *testing.T) {
	t.Run("Missing snapshot triggers a refresh", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindAllActive(gomock.Any()).Return([]domain.Booking{
			{ItemID: 7, EndDate: time.Date(2024, 11, 13, 0, 0, 0, 0, time.UTC)},
			{ItemID: 9, EndDate: time.Date(2024, 11, 11, 0, 0, 0, 0, time.UTC)},
		}, nil)

		active, err := service.ActiveItems(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, map[int]int{7: 3, 9: 1}, active)
	})

	t.Run("Fresh snapshot is served without hitting the store", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindAllActive(gomock.Any()).Return([]domain.Booking{
			{ItemID: 7, EndDate: time.Date(2024, 11, 13, 0, 0, 0, 0, time.UTC)},
		}, nil).Times(1)

		first, err := service.ActiveItems(context.Background())
		assert.NoError(t, err)

		// The snapshot was stamped with the frozen clock, so it is fresh.
		second, err := service.ActiveItems(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Refresh error propagates", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindAllActive(gomock.Any()).Return(nil, errors.New("db error"))

		_, err := service.ActiveItems(context.Background())
		assert.Error(t, err)
	})
}

func intPtr(v int) *int {
	return &v
}
