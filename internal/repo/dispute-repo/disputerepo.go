package disputerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/shareit/shareit/internal/domain"
	"github.com/shareit/shareit/internal/pg"
	"go.uber.org/zap"
)

const disputeColumns = `id, booking_id, raised_by, description, estimated_cost, status, resolution_notes, created_at, resolved_at`

// Read queries join the booking's item title and party names so responses
// carry them without extra round trips.
const disputeDetailColumns = `d.id, d.booking_id, d.raised_by, d.description, d.estimated_cost, d.status, d.resolution_notes, d.created_at, d.resolved_at, i.title, lu.full_name, bu.full_name`

const disputeDetailFrom = `
        FROM disputes d
        JOIN bookings b ON b.id = d.booking_id
        JOIN items i ON i.id = b.item_id
        JOIN users lu ON lu.id = b.lender_id
        JOIN users bu ON bu.id = b.borrower_id`

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

func scanDispute(row pgx.Row) (*domain.Dispute, error) {
	var d domain.Dispute
	err := row.Scan(&d.ID, &d.BookingID, &d.RaisedBy, &d.Description, &d.EstimatedCost,
		&d.Status, &d.ResolutionNotes, &d.CreatedAt, &d.ResolvedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func scanDisputeDetail(row pgx.Row) (*domain.Dispute, error) {
	var d domain.Dispute
	err := row.Scan(&d.ID, &d.BookingID, &d.RaisedBy, &d.Description, &d.EstimatedCost,
		&d.Status, &d.ResolutionNotes, &d.CreatedAt, &d.ResolvedAt, &d.ItemTitle, &d.LenderName, &d.BorrowerName)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Save(ctx context.Context, dispute *domain.Dispute) (*domain.Dispute, error) {
	query := `
        INSERT INTO disputes (booking_id, raised_by, description, estimated_cost, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + disputeColumns
	var created *domain.Dispute
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, dispute.BookingID, dispute.RaisedBy, dispute.Description,
			dispute.EstimatedCost, dispute.Status)
		d, err := scanDispute(row)
		if err != nil {
			zap.L().Error("can't save dispute", zap.Error(err))
			return err
		}
		created = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Dispute, error) {
	query := `SELECT ` + disputeDetailColumns + disputeDetailFrom + `
        WHERE d.id = $1`
	dispute, err := scanDisputeDetail(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find dispute", zap.Error(err))
		return nil, err
	}
	return dispute, nil
}

func (r *Repository) FindOpenByBookingID(ctx context.Context, bookingID int) (*domain.Dispute, error) {
	query := `
        SELECT ` + disputeColumns + `
        FROM disputes
        WHERE booking_id = $1 AND status = 'open'
    `
	dispute, err := scanDispute(r.db.QueryRow(ctx, query, bookingID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find open dispute for booking", zap.Error(err))
		return nil, err
	}
	return dispute, nil
}

// FindByUserID returns disputes raised on bookings where the user is a party.
func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Dispute, error) {
	query := `
        SELECT ` + disputeDetailColumns + disputeDetailFrom + `
        WHERE b.borrower_id = $1 OR b.lender_id = $1
        ORDER BY d.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get user disputes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var disputes []domain.Dispute
	for rows.Next() {
		dispute, err := scanDisputeDetail(rows)
		if err != nil {
			zap.L().Error("can't scan dispute row", zap.Error(err))
			return nil, err
		}
		disputes = append(disputes, *dispute)
	}
	return disputes, nil
}

func (r *Repository) Update(ctx context.Context, dispute *domain.Dispute) (*domain.Dispute, error) {
	query := `
        UPDATE disputes
        SET status = $1, resolution_notes = $2, resolved_at = $3
        WHERE id = $4
        RETURNING ` + disputeColumns
	var updated *domain.Dispute
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, dispute.Status, dispute.ResolutionNotes, dispute.ResolvedAt, dispute.ID)
		d, err := scanDispute(row)
		if err != nil {
			zap.L().Error("can't update dispute", zap.Error(err))
			return err
		}
		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
