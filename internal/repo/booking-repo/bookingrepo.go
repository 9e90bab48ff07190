package bookingrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/shareit/shareit/internal/domain"
	"github.com/shareit/shareit/internal/pg"
	"go.uber.org/zap"
)

const bookingColumns = `id, item_id, borrower_id, lender_id, start_date, end_date, total_deposit, status, reason, created_at`

// Read queries join the item title and the party names so responses carry
// them without extra round trips.
const bookingDetailColumns = `b.id, b.item_id, b.borrower_id, b.lender_id, b.start_date, b.end_date, b.total_deposit, b.status, b.reason, b.created_at, i.title, lu.full_name, bu.full_name`

const bookingDetailFrom = `
        FROM bookings b
        JOIN items i ON i.id = b.item_id
        JOIN users lu ON lu.id = b.lender_id
        JOIN users bu ON bu.id = b.borrower_id`

// Statuses from which a booking can still move. Mirrored by the partial
// unique index on bookings(item_id).
const nonTerminal = `('pending', 'accepted', 'return_pending', 'disputed')`

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

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(&b.ID, &b.ItemID, &b.BorrowerID, &b.LenderID, &b.StartDate, &b.EndDate,
		&b.TotalDeposit, &b.Status, &b.Reason, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBookingDetail(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(&b.ID, &b.ItemID, &b.BorrowerID, &b.LenderID, &b.StartDate, &b.EndDate,
		&b.TotalDeposit, &b.Status, &b.Reason, &b.CreatedAt, &b.ItemTitle, &b.LenderName, &b.BorrowerName)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) Save(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	query := `
        INSERT INTO bookings (item_id, borrower_id, lender_id, start_date, end_date, total_deposit, status, reason)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + bookingColumns
	var created *domain.Booking
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, booking.ItemID, booking.BorrowerID, booking.LenderID,
			booking.StartDate, booking.EndDate, booking.TotalDeposit, booking.Status, booking.Reason)
		b, err := scanBooking(row)
		if err != nil {
			zap.L().Error("can't save booking", zap.Error(err))
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Booking, error) {
	query := `SELECT ` + bookingDetailColumns + bookingDetailFrom + `
        WHERE b.id = $1`
	booking, err := scanBookingDetail(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find booking", zap.Error(err))
		return nil, err
	}
	return booking, nil
}

// FindActiveByItemID returns the item's current non-terminal booking, if any.
func (r *Repository) FindActiveByItemID(ctx context.Context, itemID int) (*domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE item_id = $1 AND status IN ` + nonTerminal
	booking, err := scanBooking(r.db.QueryRow(ctx, query, itemID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find active booking for item", zap.Error(err))
		return nil, err
	}
	return booking, nil
}

// FindAllActive returns every non-terminal booking, newest first.
func (r *Repository) FindAllActive(ctx context.Context) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE status IN ` + nonTerminal + `
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get active bookings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectBookings(rows)
}

// FindByUserID returns bookings where the user is borrower or lender.
func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingDetailColumns + bookingDetailFrom + `
        WHERE b.borrower_id = $1 OR b.lender_id = $1
        ORDER BY b.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get user bookings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectBookingDetails(rows)
}

func (r *Repository) FindPendingByLenderID(ctx context.Context, lenderID int) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingDetailColumns + bookingDetailFrom + `
        WHERE b.lender_id = $1 AND b.status = 'pending'
        ORDER BY b.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, lenderID)
	if err != nil {
		zap.L().Error("can't get pending bookings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectBookingDetails(rows)
}

// UpdateStatus moves a booking from one status to another. The expected
// current status is part of the predicate, so a transition raced by another
// writer affects zero rows and returns pgx.ErrNoRows instead of silently
// overwriting.
func (r *Repository) UpdateStatus(ctx context.Context, id int, fromStatus, toStatus string) error {
	query := `UPDATE bookings SET status = $1 WHERE id = $2 AND status = $3`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, toStatus, id, fromStatus)
		if err != nil {
			zap.L().Error("can't update booking status", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
	return err
}

func collectBookings(rows pgx.Rows) ([]domain.Booking, error) {
	var bookings []domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			zap.L().Error("can't scan booking row", zap.Error(err))
			return nil, err
		}
		bookings = append(bookings, *booking)
	}
	return bookings, nil
}

func collectBookingDetails(rows pgx.Rows) ([]domain.Booking, error) {
	var bookings []domain.Booking
	for rows.Next() {
		booking, err := scanBookingDetail(rows)
		if err != nil {
			zap.L().Error("can't scan booking row", zap.Error(err))
			return nil, err
		}
		bookings = append(bookings, *booking)
	}
	return bookings, nil
}
