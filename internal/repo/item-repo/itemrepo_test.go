package itemrepo

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

	"github.com/shareit/shareit/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func itemRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "lender_id", "title", "description", "condition", "estimated_price", "min_days", "max_days", "daily_deposit", "location", "is_active", "created_at"})
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	insertQuery := `
        INSERT INTO items (lender_id, title, description, condition, estimated_price, min_days, max_days, daily_deposit, location, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING ` + itemColumns

	item := &domain.Item{
		LenderID:       3,
		Title:          "Cordless drill",
		Description:    "18V, two batteries",
		Condition:      "good",
		EstimatedPrice: decimal.NewFromInt(200),
		MinDays:        1,
		MaxDays:        14,
		DailyDeposit:   decimal.NewFromInt(10),
		Location:       "Berlin",
		IsActive:       true,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Save item successfully",
			mockSetup: func() {
				rows := itemRows().
					AddRow(7, 3, "Cordless drill", "18V, two batteries", "good", decimal.NewFromInt(200), 1, 14, decimal.NewFromInt(10), "Berlin", true, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs(3, "Cordless drill", "18V, two batteries", "good", decimal.NewFromInt(200), 1, 14, decimal.NewFromInt(10), "Berlin", true).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs(3, "Cordless drill", "18V, two batteries", "good", decimal.NewFromInt(200), 1, 14, decimal.NewFromInt(10), "Berlin", true).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Save(context.Background(), item)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, created.ID)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Item exists",
			mockSetup: func() {
				rows := itemRows().
					AddRow(7, 3, "Cordless drill", "", "good", decimal.NewFromInt(200), 1, 14, decimal.NewFromInt(10), "Berlin", true, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(7).
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "Item does not exist",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(7).
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			item, err := repo.FindByID(context.Background(), 7)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, item)
				assert.Equal(t, 7, item.ID)
			} else {
				assert.Nil(t, item)
			}
		})
	}
}

func TestRepository_FindActive(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	query := `
        SELECT ` + itemColumns + `
        FROM items
        WHERE is_active = TRUE
        ORDER BY created_at DESC
        OFFSET $1 LIMIT $2
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Items found",
			mockSetup: func() {
				rows := itemRows().
					AddRow(7, 3, "Cordless drill", "", "good", decimal.NewFromInt(200), 1, 14, decimal.NewFromInt(10), "Berlin", true, timeNow).
					AddRow(9, 4, "Pressure washer", "", "fair", decimal.NewFromInt(300), 1, 7, decimal.NewFromInt(25), "Hamburg", true, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(0, 20).
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(0, 20).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Scan row error",
			mockSetup: func() {
				rows := itemRows().
					AddRow(7, 3, "Cordless drill", "", "good", "invalid_value", 1, 14, decimal.NewFromInt(10), "Berlin", true, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(0, 20).
					WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			items, err := repo.FindActive(context.Background(), 0, 20)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, items)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, items, tt.count)
		})
	}
}

func TestRepository_FindByLenderID(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	query := `
        SELECT ` + itemColumns + `
        FROM items
        WHERE lender_id = $1
        ORDER BY created_at DESC
    `

	rows := itemRows().
		AddRow(7, 3, "Cordless drill", "", "good", decimal.NewFromInt(200), 1, 14, decimal.NewFromInt(10), "Berlin", true, timeNow).
		AddRow(8, 3, "Ladder", "", "good", decimal.NewFromInt(80), 1, 14, decimal.NewFromInt(5), "Berlin", false, timeNow)
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(3).
		WillReturnRows(rows)

	items, err := repo.FindByLenderID(context.Background(), 3)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.False(t, items[1].IsActive)
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	query := `
        UPDATE items
        SET title = $1, description = $2, condition = $3, estimated_price = $4,
            min_days = $5, max_days = $6, daily_deposit = $7, location = $8, is_active = $9
        WHERE id = $10
        RETURNING ` + itemColumns

	item := &domain.Item{
		ID:             7,
		Title:          "Cordless drill with case",
		Condition:      "good",
		EstimatedPrice: decimal.NewFromInt(200),
		MinDays:        1,
		MaxDays:        14,
		DailyDeposit:   decimal.NewFromInt(12),
		Location:       "Berlin",
		IsActive:       true,
	}

	rows := itemRows().
		AddRow(7, 3, "Cordless drill with case", "", "good", decimal.NewFromInt(200), 1, 14, decimal.NewFromInt(12), "Berlin", true, timeNow)
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("Cordless drill with case", "", "good", decimal.NewFromInt(200), 1, 14, decimal.NewFromInt(12), "Berlin", true, 7).
		WillReturnRows(rows)

	updated, err := repo.Update(context.Background(), item)
	assert.NoError(t, err)
	assert.Equal(t, "Cordless drill with case", updated.Title)
	assert.Equal(t, 3, updated.LenderID)
}

func TestRepository_Deactivate(t *testing.T) {
	repo, mock := NewMock(t)

	query := `UPDATE items SET is_active = FALSE WHERE id = $1`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Deactivate successfully",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Deactivate(context.Background(), 7)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
