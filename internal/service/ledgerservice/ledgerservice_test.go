package ledgerservice

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/shareit/shareit/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockLedgerRepo) {
	ctrl := gomock.NewController(t)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	service := New(ledgerRepo, decimal.NewFromInt(100000))
	defer ctrl.Finish()
	return service, ledgerRepo
}

func TestBalance(t *testing.T) {
	service, ledgerRepo := NewMock(t)

	tests := []struct {
		name            string
		userID          int
		prepareMock     func()
		expectedBalance decimal.Decimal
		expectedError   error
	}{
		{
			name:   "Retrieve balance successfully",
			userID: 1,
			prepareMock: func() {
				ledgerRepo.EXPECT().BalanceByUserID(gomock.Any(), 1).Return(decimal.NewFromInt(500), nil)
			},
			expectedBalance: decimal.NewFromInt(500),
			expectedError:   nil,
		},
		{
			name:   "Error retrieving balance",
			userID: 1,
			prepareMock: func() {
				ledgerRepo.EXPECT().BalanceByUserID(gomock.Any(), 1).Return(decimal.Zero, errors.New("db error"))
			},
			expectedBalance: decimal.Zero,
			expectedError:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			balance, err := service.Balance(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.True(t, tt.expectedBalance.Equal(balance))
			}
		})
	}
}

func TestTopUp(t *testing.T) {
	service, ledgerRepo := NewMock(t)

	tests := []struct {
		name            string
		amount          decimal.Decimal
		opRef           string
		prepareMock     func()
		expectedBalance decimal.Decimal
		expectedError   error
	}{
		{
			name:   "Successful top-up",
			amount: decimal.NewFromInt(100),
			opRef:  "topup:1:a",
			prepareMock: func() {
				ledgerRepo.EXPECT().FindByOpRef(gomock.Any(), "topup:1:a").Return(nil, nil)
				ledgerRepo.EXPECT().BalanceByUserID(gomock.Any(), 1).Return(decimal.NewFromInt(500), nil)
				ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(&domain.LedgerEntry{ID: 1}, nil)
			},
			expectedBalance: decimal.NewFromInt(600),
		},
		{
			name:          "Zero amount rejected",
			amount:        decimal.Zero,
			opRef:         "topup:1:b",
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Negative amount rejected",
			amount:        decimal.NewFromInt(-10),
			opRef:         "topup:1:c",
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Amount above the limit rejected",
			amount:        decimal.NewFromInt(100001),
			opRef:         "topup:1:d",
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Replayed op_ref does not credit twice",
			amount: decimal.NewFromInt(100),
			opRef:  "topup:1:a",
			prepareMock: func() {
				ledgerRepo.EXPECT().FindByOpRef(gomock.Any(), "topup:1:a").Return(&domain.LedgerEntry{
					UserID:    1,
					EntryType: domain.EntryTypeTopup,
					Amount:    decimal.NewFromInt(100),
					OpRef:     "topup:1:a",
				}, nil)
				ledgerRepo.EXPECT().BalanceByUserID(gomock.Any(), 1).Return(decimal.NewFromInt(600), nil)
			},
			expectedBalance: decimal.NewFromInt(600),
		},
		{
			name:   "Replayed op_ref with different amount conflicts",
			amount: decimal.NewFromInt(250),
			opRef:  "topup:1:a",
			prepareMock: func() {
				ledgerRepo.EXPECT().FindByOpRef(gomock.Any(), "topup:1:a").Return(&domain.LedgerEntry{
					UserID:    1,
					EntryType: domain.EntryTypeTopup,
					Amount:    decimal.NewFromInt(100),
					OpRef:     "topup:1:a",
				}, nil)
			},
			expectedError: ErrOpConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			balance, err := service.TopUp(context.Background(), 1, tt.amount, tt.opRef, "wallet top-up")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.True(t, tt.expectedBalance.Equal(balance), "got %s", balance)
			}
		})
	}
}

func TestHold(t *testing.T) {
	service, ledgerRepo := NewMock(t)
	bookingID := 12

	tests := []struct {
		name            string
		amount          decimal.Decimal
		prepareMock     func()
		expectedBalance decimal.Decimal
		expectedError   error
	}{
		{
			name:   "Hold 300 from a balance of 500 leaves 200",
			amount: decimal.NewFromInt(300),
			prepareMock: func() {
				ledgerRepo.EXPECT().FindByOpRef(gomock.Any(), "booking:12:hold").Return(nil, nil)
				ledgerRepo.EXPECT().BalanceByUserID(gomock.Any(), 1).Return(decimal.NewFromInt(500), nil)
				ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						assert.Equal(t, domain.EntryTypeHold, entry.EntryType)
						assert.True(t, entry.Amount.Equal(decimal.NewFromInt(-300)))
						assert.Equal(t, bookingID, *entry.BookingID)
						return entry, nil
					})
			},
			expectedBalance: decimal.NewFromInt(200),
		},
		{
			name:   "Insufficient balance fails before writing",
			amount: decimal.NewFromInt(300),
			prepareMock: func() {
				ledgerRepo.EXPECT().FindByOpRef(gomock.Any(), "booking:12:hold").Return(nil, nil)
				ledgerRepo.EXPECT().BalanceByUserID(gomock.Any(), 1).Return(decimal.NewFromInt(299), nil)
			},
			expectedError: ErrInsufficientFunds,
		},
		{
			name:          "Zero amount rejected",
			amount:        decimal.Zero,
			expectedError: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			balance, err := service.Hold(context.Background(), 1, tt.amount, bookingID, "booking:12:hold")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.True(t, tt.expectedBalance.Equal(balance), "got %s", balance)
			}
		})
	}
}

func TestRelease(t *testing.T) {
	service, ledgerRepo := NewMock(t)
	bookingID := 12

	t.Run("Release restores the held amount", func(t *testing.T) {
		ledgerRepo.EXPECT().FindByOpRef(gomock.Any(), "booking:12:release").Return(nil, nil)
		ledgerRepo.EXPECT().BalanceByUserID(gomock.Any(), 1).Return(decimal.NewFromInt(200), nil)
		ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
				assert.Equal(t, domain.EntryTypeRelease, entry.EntryType)
				assert.True(t, entry.Amount.Equal(decimal.NewFromInt(300)))
				return entry, nil
			})

		balance, err := service.Release(context.Background(), 1, decimal.NewFromInt(300), bookingID, "booking:12:release")
		assert.NoError(t, err)
		assert.True(t, balance.Equal(decimal.NewFromInt(500)))
	})

	t.Run("Releasing zero is a no-op balance read", func(t *testing.T) {
		ledgerRepo.EXPECT().BalanceByUserID(gomock.Any(), 1).Return(decimal.NewFromInt(200), nil)

		balance, err := service.Release(context.Background(), 1, decimal.Zero, bookingID, "booking:12:release")
		assert.NoError(t, err)
		assert.True(t, balance.Equal(decimal.NewFromInt(200)))
	})

	t.Run("Negative amount rejected", func(t *testing.T) {
		_, err := service.Release(context.Background(), 1, decimal.NewFromInt(-1), bookingID, "booking:12:release")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestCapture(t *testing.T) {
	service, ledgerRepo := NewMock(t)
	bookingID := 12

	t.Run("Capture moves held funds to the payee in three entries", func(t *testing.T) {
		var appended []domain.LedgerEntry
		balances := map[int]decimal.Decimal{
			5: decimal.NewFromInt(200), // borrower, 300 already held
			3: decimal.NewFromInt(50),  // lender
		}

		ledgerRepo.EXPECT().FindByOpRef(gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)
		ledgerRepo.EXPECT().BalanceByUserID(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, userID int) (decimal.Decimal, error) {
				return balances[userID], nil
			}).Times(3)
		ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
				appended = append(appended, *entry)
				balances[entry.UserID] = balances[entry.UserID].Add(entry.Amount)
				return entry, nil
			}).Times(3)

		balance, err := service.Capture(context.Background(), 5, 3, decimal.NewFromInt(300), bookingID, "dispute:4:resolved")
		assert.NoError(t, err)
		// The unhold and the debit cancel out for the payer.
		assert.True(t, balance.Equal(decimal.NewFromInt(200)), "got %s", balance)

		assert.Len(t, appended, 3)
		assert.Equal(t, "dispute:4:resolved:unhold", appended[0].OpRef)
		assert.Equal(t, domain.EntryTypeRelease, appended[0].EntryType)
		assert.Equal(t, "dispute:4:resolved:debit", appended[1].OpRef)
		assert.Equal(t, domain.EntryTypeCapture, appended[1].EntryType)
		assert.Equal(t, "dispute:4:resolved:credit", appended[2].OpRef)
		assert.Equal(t, 3, appended[2].UserID)

		// All three entries reference the booking and net to zero.
		sum := decimal.Zero
		for _, e := range appended {
			assert.Equal(t, bookingID, *e.BookingID)
			sum = sum.Add(e.Amount)
		}
		assert.True(t, sum.IsZero())
		assert.True(t, balances[3].Equal(decimal.NewFromInt(350)))
	})

	t.Run("Zero amount rejected", func(t *testing.T) {
		_, err := service.Capture(context.Background(), 5, 3, decimal.Zero, bookingID, "dispute:4:resolved")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestPenalize(t *testing.T) {
	service, ledgerRepo := NewMock(t)
	disputeID := 4

	t.Run("Penalty fails when the balance cannot cover it", func(t *testing.T) {
		ledgerRepo.EXPECT().FindByOpRef(gomock.Any(), "dispute:4:excess").Return(nil, nil)
		ledgerRepo.EXPECT().BalanceByUserID(gomock.Any(), 5).Return(decimal.NewFromInt(20), nil)

		_, err := service.Penalize(context.Background(), 5, decimal.NewFromInt(150), disputeID, "dispute:4:excess")
		assert.ErrorIs(t, err, ErrInsufficientFunds)
	})

	t.Run("Penalty debits the dispute-tied amount", func(t *testing.T) {
		ledgerRepo.EXPECT().FindByOpRef(gomock.Any(), "dispute:4:excess").Return(nil, nil)
		ledgerRepo.EXPECT().BalanceByUserID(gomock.Any(), 5).Return(decimal.NewFromInt(200), nil)
		ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
				assert.Equal(t, domain.EntryTypePenalty, entry.EntryType)
				assert.Equal(t, disputeID, *entry.DisputeID)
				assert.Nil(t, entry.BookingID)
				return entry, nil
			})

		balance, err := service.Penalize(context.Background(), 5, decimal.NewFromInt(150), disputeID, "dispute:4:excess")
		assert.NoError(t, err)
		assert.True(t, balance.Equal(decimal.NewFromInt(50)))
	})
}

func TestConcurrentHolds(t *testing.T) {
	service, ledgerRepo := NewMock(t)

	// Two goroutines race to hold 300 each against a balance of 500. The
	// per-user critical section forces them through apply one at a time, so
	// exactly one succeeds.
	var mu sync.Mutex
	balance := decimal.NewFromInt(500)

	ledgerRepo.EXPECT().FindByOpRef(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	ledgerRepo.EXPECT().BalanceByUserID(gomock.Any(), 1).DoAndReturn(
		func(_ context.Context, _ int) (decimal.Decimal, error) {
			mu.Lock()
			defer mu.Unlock()
			return balance, nil
		}).AnyTimes()
	ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
			mu.Lock()
			defer mu.Unlock()
			balance = balance.Add(entry.Amount)
			return entry, nil
		}).AnyTimes()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			bookingID := 100 + i
			_, errs[i] = service.Hold(context.Background(), 1, decimal.NewFromInt(300), bookingID, "booking:hold:"+string(rune('a'+i)))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrInsufficientFunds)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.True(t, balance.Equal(decimal.NewFromInt(200)))
}
