package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/shareit/shareit/internal/domain"
	"github.com/shareit/shareit/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func entryRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "user_id", "entry_type", "amount", "booking_id", "dispute_id", "op_ref", "description", "created_at"})
}

func TestRepository_Append(t *testing.T) {
	repo, mock, tx := NewMock(t)
	timeNow := time.Now()
	bookingID := 12

	insertQuery := `
        INSERT INTO ledger_entries (user_id, entry_type, amount, booking_id, dispute_id, op_ref, description)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + entryColumns

	tests := []struct {
		name      string
		entry     *domain.LedgerEntry
		mockSetup func(entry *domain.LedgerEntry)
		expectErr bool
	}{
		{
			name: "Append entry successfully",
			entry: &domain.LedgerEntry{
				UserID:      5,
				EntryType:   domain.EntryTypeHold,
				Amount:      decimal.NewFromInt(-300),
				BookingID:   &bookingID,
				OpRef:       "booking:12:hold",
				Description: "deposit hold",
			},
			mockSetup: func(entry *domain.LedgerEntry) {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					rows := entryRows().
						AddRow(1, 5, domain.EntryTypeHold, decimal.NewFromInt(-300), &bookingID, (*int)(nil), "booking:12:hold", "deposit hold", timeNow)
					mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
						WithArgs(5, domain.EntryTypeHold, decimal.NewFromInt(-300), &bookingID, (*int)(nil), "booking:12:hold", "deposit hold").
						WillReturnRows(rows)
					return fn(ctx)
				})
			},
			expectErr: false,
		},
		{
			name: "Duplicate op_ref",
			entry: &domain.LedgerEntry{
				UserID:      5,
				EntryType:   domain.EntryTypeHold,
				Amount:      decimal.NewFromInt(-300),
				BookingID:   &bookingID,
				OpRef:       "booking:12:hold",
				Description: "deposit hold",
			},
			mockSetup: func(entry *domain.LedgerEntry) {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
						WithArgs(5, domain.EntryTypeHold, decimal.NewFromInt(-300), &bookingID, (*int)(nil), "booking:12:hold", "deposit hold").
						WillReturnError(errors.New("duplicate key value violates unique constraint"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.entry)
			created, err := repo.Append(context.Background(), tt.entry)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, created.ID)
				assert.Equal(t, "booking:12:hold", created.OpRef)
			}
		})
	}
}

func TestRepository_FindByOpRef(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE op_ref = $1`

	tests := []struct {
		name      string
		opRef     string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name:  "Entry exists",
			opRef: "topup:5:abc",
			mockSetup: func() {
				rows := entryRows().
					AddRow(1, 5, domain.EntryTypeTopup, decimal.NewFromInt(500), (*int)(nil), (*int)(nil), "topup:5:abc", "wallet top-up", timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("topup:5:abc").
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name:  "Entry does not exist",
			opRef: "topup:5:missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("topup:5:missing").
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
		{
			name:  "Database error",
			opRef: "topup:5:abc",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("topup:5:abc").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			entry, err := repo.FindByOpRef(context.Background(), tt.opRef)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, entry)
				assert.Equal(t, tt.opRef, entry.OpRef)
			} else {
				assert.Nil(t, entry)
			}
		})
	}
}

func TestRepository_BalanceByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM ledger_entries
        WHERE user_id = $1
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		balance   decimal.Decimal
	}{
		{
			name: "Balance found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"coalesce"}).AddRow(decimal.NewFromInt(200))
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(5).
					WillReturnRows(rows)
			},
			balance: decimal.NewFromInt(200),
		},
		{
			name: "No entries yields zero",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"coalesce"}).AddRow(decimal.Zero)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(5).
					WillReturnRows(rows)
			},
			balance: decimal.Zero,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(5).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			balance, err := repo.BalanceByUserID(context.Background(), 5)
			if tt.expectErr {
				assert.Error(t, err)
				assert.True(t, balance.IsZero())
				return
			}
			assert.NoError(t, err)
			assert.True(t, tt.balance.Equal(balance))
		})
	}
}

func TestRepository_OutstandingHoldByBookingID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `
        SELECT COALESCE(-SUM(amount), 0)
        FROM ledger_entries
        WHERE booking_id = $1
    `

	rows := pgxmock.NewRows([]string{"coalesce"}).AddRow(decimal.NewFromInt(300))
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(12).
		WillReturnRows(rows)

	held, err := repo.OutstandingHoldByBookingID(context.Background(), 12)
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(300).Equal(held))
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	query := `
        SELECT ` + entryColumns + `
        FROM ledger_entries
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Entries found",
			mockSetup: func() {
				rows := entryRows().
					AddRow(2, 5, domain.EntryTypeHold, decimal.NewFromInt(-300), (*int)(nil), (*int)(nil), "booking:12:hold", "deposit hold", timeNow).
					AddRow(1, 5, domain.EntryTypeTopup, decimal.NewFromInt(500), (*int)(nil), (*int)(nil), "topup:5:abc", "wallet top-up", timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(5, 100).
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(5, 100).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Scan row error",
			mockSetup: func() {
				rows := entryRows().
					AddRow(1, 5, domain.EntryTypeTopup, "invalid_value", (*int)(nil), (*int)(nil), "topup:5:abc", "wallet top-up", timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(5, 100).
					WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			entries, err := repo.FindByUserID(context.Background(), 5, 100)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, entries)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, entries, tt.count)
		})
	}
}
