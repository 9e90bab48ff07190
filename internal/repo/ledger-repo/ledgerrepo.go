package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/shareit/shareit/internal/domain"
	"github.com/shareit/shareit/internal/pg"
	"go.uber.org/zap"
)

const entryColumns = `id, user_id, entry_type, amount, booking_id, dispute_id, op_ref, description, created_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	var e domain.LedgerEntry
	err := row.Scan(&e.ID, &e.UserID, &e.EntryType, &e.Amount, &e.BookingID, &e.DisputeID,
		&e.OpRef, &e.Description, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Append inserts a single immutable entry. The op_ref unique constraint is
// the idempotency backstop: a replayed reference fails here and the service
// resolves it by re-reading the original entry.
func (r *Repository) Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
        INSERT INTO ledger_entries (user_id, entry_type, amount, booking_id, dispute_id, op_ref, description)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + entryColumns
	var created *domain.LedgerEntry
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, entry.UserID, entry.EntryType, entry.Amount,
			entry.BookingID, entry.DisputeID, entry.OpRef, entry.Description)
		e, err := scanEntry(row)
		if err != nil {
			zap.L().Error("can't append ledger entry", zap.Error(err))
			return err
		}
		created = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByOpRef(ctx context.Context, opRef string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE op_ref = $1`
	entry, err := scanEntry(r.db.QueryRow(ctx, query, opRef))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find ledger entry by op_ref", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

// BalanceByUserID derives the balance as the running sum of signed amounts.
// The balance is never stored anywhere else.
func (r *Repository) BalanceByUserID(ctx context.Context, userID int) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM ledger_entries
        WHERE user_id = $1
    `
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, query, userID).Scan(&balance)
	if err != nil {
		zap.L().Error("can't get user balance", zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

// OutstandingHoldByBookingID returns the amount still held in escrow for a
// booking: the negated sum of every entry tied to it across both parties.
// Zero once the hold is fully released or captured.
func (r *Repository) OutstandingHoldByBookingID(ctx context.Context, bookingID int) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(-SUM(amount), 0)
        FROM ledger_entries
        WHERE booking_id = $1
    `
	var held decimal.Decimal
	err := r.db.QueryRow(ctx, query, bookingID).Scan(&held)
	if err != nil {
		zap.L().Error("can't get outstanding hold", zap.Error(err))
		return decimal.Zero, err
	}
	return held, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID, limit int) ([]domain.LedgerEntry, error) {
	query := `
        SELECT ` + entryColumns + `
        FROM ledger_entries
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("can't get ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			zap.L().Error("can't scan ledger entry row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}
