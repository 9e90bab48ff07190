package disputeservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shareit/shareit/internal/domain"
	"github.com/shareit/shareit/internal/pg"
	"github.com/shareit/shareit/internal/service/ledgerservice"
	"github.com/shareit/shareit/pkg/keymutex"
)

//go:generate mockgen -source=disputeservice.go -destination=disputeservice_mock.go -package=disputeservice

type DisputeRepo interface {
	Save(ctx context.Context, dispute *domain.Dispute) (*domain.Dispute, error)
	FindByID(ctx context.Context, id int) (*domain.Dispute, error)
	FindOpenByBookingID(ctx context.Context, bookingID int) (*domain.Dispute, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Dispute, error)
	Update(ctx context.Context, dispute *domain.Dispute) (*domain.Dispute, error)
}

type BookingRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int, fromStatus, toStatus string) error
}

type Ledger interface {
	Release(ctx context.Context, userID int, amount decimal.Decimal, bookingID int, opRef string) (decimal.Decimal, error)
	Capture(ctx context.Context, fromUserID, toUserID int, amount decimal.Decimal, bookingID int, opRef string) (decimal.Decimal, error)
	Penalize(ctx context.Context, userID int, amount decimal.Decimal, disputeID int, opRef string) (decimal.Decimal, error)
	RefundTo(ctx context.Context, userID int, amount decimal.Decimal, disputeID int, opRef, description string) (decimal.Decimal, error)
	Balance(ctx context.Context, userID int) (decimal.Decimal, error)
	OutstandingHold(ctx context.Context, bookingID int) (decimal.Decimal, error)
}

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrDisputeNotFound  = errors.New("dispute not found")
	ErrForbidden        = errors.New("forbidden")
	ErrDisputeExists    = errors.New("open dispute already exists for booking")
	ErrBookingNotActive = errors.New("booking is not in a disputable status")
	ErrDisputeNotOpen   = errors.New("dispute is not open")
	ErrInvalidOutcome   = errors.New("invalid dispute outcome")
)

// Options configure resolution policy for the cases the booking flow leaves
// open: where a booking resumes after a rejected dispute, and whether damage
// claimed beyond the held deposit is pursued against the borrower's
// remaining balance.
type Options struct {
	// RejectResume is the status a booking returns to when a dispute is
	// rejected: "accepted" (default) or "return_pending".
	RejectResume string
	// PenalizeExcess enables recovering claimed cost beyond the held
	// deposit from the borrower's available balance, with a partial
	// penalty and a write-off when the balance cannot cover it.
	PenalizeExcess bool
}

// Service is the only path that can move money outside the normal
// accept/return flow. Its booking writes (freeze on open, settle on resolve)
// take the same per-item locks as the booking lifecycle, so they cannot
// interleave with a Decide transition.
type Service struct {
	repo        DisputeRepo
	bookingRepo BookingRepo
	ledger      Ledger
	txManager   pg.TXManager
	itemLocks   *keymutex.KeyMutex
	opts        Options
}

func New(repo DisputeRepo, bookingRepo BookingRepo, ledger Ledger, txManager pg.TXManager, itemLocks *keymutex.KeyMutex, opts Options) *Service {
	if opts.RejectResume != domain.BookingStatusReturnPending {
		opts.RejectResume = domain.BookingStatusAccepted
	}
	return &Service{
		repo:        repo,
		bookingRepo: bookingRepo,
		ledger:      ledger,
		txManager:   txManager,
		itemLocks:   itemLocks,
		opts:        opts,
	}
}

// Open raises a dispute on an in-flight booking and freezes its lifecycle
// until resolution.
func (s *Service) Open(ctx context.Context, actorID, bookingID int, description string, estimatedCost *decimal.Decimal) (*domain.Dispute, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if actorID != booking.BorrowerID && actorID != booking.LenderID {
		return nil, ErrForbidden
	}

	s.itemLocks.Lock(booking.ItemID)
	defer s.itemLocks.Unlock(booking.ItemID)

	// Re-read under the item lock; a concurrent transition may have
	// moved the booking past the point where a dispute makes sense.
	booking, err = s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.Status != domain.BookingStatusAccepted && booking.Status != domain.BookingStatusReturnPending {
		return nil, ErrBookingNotActive
	}

	existing, err := s.repo.FindOpenByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDisputeExists
	}

	fromStatus := booking.Status
	var dispute *domain.Dispute
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		dispute, err = s.repo.Save(ctx, &domain.Dispute{
			BookingID:     bookingID,
			RaisedBy:      actorID,
			Description:   description,
			EstimatedCost: estimatedCost,
			Status:        domain.DisputeStatusOpen,
		})
		if err != nil {
			if pg.IsUniqueViolation(err, "uniq_disputes_booking_open") {
				return ErrDisputeExists
			}
			return err
		}
		if err := s.bookingRepo.UpdateStatus(ctx, bookingID, fromStatus, domain.BookingStatusDisputed); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrBookingNotActive
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("dispute opened",
		zap.Int("dispute_id", dispute.ID),
		zap.Int("booking_id", bookingID))
	return dispute, nil
}

// Resolve settles an open dispute. Authority is enforced at the transport
// layer: only admin tokens reach this method.
//
// Upheld: the penalty is capped at min(estimatedCost, heldAmount) and
// captured to the lender; the remainder of the hold is released to the
// borrower and the booking closes as returned. A claim with no estimated
// cost is treated as claiming the full held amount.
//
// Rejected: the full hold is released and the booking resumes per the
// configured policy.
func (s *Service) Resolve(ctx context.Context, disputeID int, outcome, notes string) (*domain.Dispute, error) {
	if outcome != domain.DisputeStatusResolved && outcome != domain.DisputeStatusRejected {
		return nil, ErrInvalidOutcome
	}

	dispute, err := s.repo.FindByID(ctx, disputeID)
	if err != nil {
		return nil, err
	}
	if dispute == nil {
		return nil, ErrDisputeNotFound
	}
	if dispute.Status != domain.DisputeStatusOpen {
		return nil, ErrDisputeNotOpen
	}

	booking, err := s.bookingRepo.FindByID(ctx, dispute.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	s.itemLocks.Lock(booking.ItemID)
	defer s.itemLocks.Unlock(booking.ItemID)

	var resolved *domain.Dispute
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		held, err := s.ledger.OutstandingHold(ctx, booking.ID)
		if err != nil {
			return err
		}

		var bookingStatus string
		if outcome == domain.DisputeStatusResolved {
			notes, err = s.settleUpheld(ctx, dispute, booking, held, notes)
			if err != nil {
				return err
			}
			bookingStatus = domain.BookingStatusReturned
		} else {
			if _, err := s.ledger.Release(ctx, booking.BorrowerID, held, booking.ID, resolutionRef(dispute.ID, "release")); err != nil {
				return err
			}
			bookingStatus = s.opts.RejectResume
		}

		// The booking was frozen at disputed when this dispute opened;
		// anything else means a write raced past the locks.
		if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, domain.BookingStatusDisputed, bookingStatus); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrDisputeNotOpen
			}
			return err
		}

		now := time.Now()
		dispute.Status = outcome
		dispute.ResolutionNotes = notes
		dispute.ResolvedAt = &now
		resolved, err = s.repo.Update(ctx, dispute)
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("dispute resolved",
		zap.Int("dispute_id", disputeID),
		zap.String("outcome", outcome))
	return resolved, nil
}

// settleUpheld moves the capped penalty to the lender and releases the
// remainder. Returns the possibly amended resolution notes.
func (s *Service) settleUpheld(ctx context.Context, dispute *domain.Dispute, booking *domain.Booking, held decimal.Decimal, notes string) (string, error) {
	cost := held
	if dispute.EstimatedCost != nil {
		cost = *dispute.EstimatedCost
	}

	penalty := decimal.Min(cost, held)
	if penalty.IsPositive() {
		if _, err := s.ledger.Capture(ctx, booking.BorrowerID, booking.LenderID, penalty, booking.ID, resolutionRef(dispute.ID, "capture")); err != nil {
			return "", err
		}
	}

	remainder := held.Sub(penalty)
	if _, err := s.ledger.Release(ctx, booking.BorrowerID, remainder, booking.ID, resolutionRef(dispute.ID, "release")); err != nil {
		return "", err
	}

	excess := cost.Sub(held)
	if excess.IsPositive() {
		return s.settleExcess(ctx, dispute, booking, excess, notes)
	}
	return notes, nil
}

// settleExcess pursues claimed cost beyond the deposit when policy allows:
// a full penalty if the borrower's balance covers it, otherwise a partial
// penalty and a write-off of the rest. Recovered amounts compensate the
// lender.
func (s *Service) settleExcess(ctx context.Context, dispute *domain.Dispute, booking *domain.Booking, excess decimal.Decimal, notes string) (string, error) {
	if !s.opts.PenalizeExcess {
		return fmt.Sprintf("%s (damage of %s beyond deposit written off)", notes, excess.StringFixed(2)), nil
	}

	recovered := excess
	_, err := s.ledger.Penalize(ctx, booking.BorrowerID, excess, dispute.ID, resolutionRef(dispute.ID, "penalty"))
	if err != nil {
		if !errors.Is(err, ledgerservice.ErrInsufficientFunds) {
			return "", err
		}
		balance, balErr := s.ledger.Balance(ctx, booking.BorrowerID)
		if balErr != nil {
			return "", balErr
		}
		if !balance.IsPositive() {
			return fmt.Sprintf("%s (excess of %s written off, borrower balance exhausted)", notes, excess.StringFixed(2)), nil
		}
		recovered = balance
		if _, err := s.ledger.Penalize(ctx, booking.BorrowerID, recovered, dispute.ID, resolutionRef(dispute.ID, "penalty-partial")); err != nil {
			return "", err
		}
		notes = fmt.Sprintf("%s (excess of %s written off)", notes, excess.Sub(recovered).StringFixed(2))
	}

	if _, err := s.ledger.RefundTo(ctx, booking.LenderID, recovered, dispute.ID, resolutionRef(dispute.ID, "compensation"), "damage compensation"); err != nil {
		return "", err
	}
	return notes, nil
}

func (s *Service) GetUserDisputes(ctx context.Context, userID int) ([]domain.Dispute, error) {
	disputes, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user disputes", zap.Error(err))
		return nil, err
	}
	return disputes, nil
}

// GetByID returns a dispute to a party of its booking, or to an admin.
func (s *Service) GetByID(ctx context.Context, actorID int, isAdmin bool, disputeID int) (*domain.Dispute, error) {
	dispute, err := s.repo.FindByID(ctx, disputeID)
	if err != nil {
		return nil, err
	}
	if dispute == nil {
		return nil, ErrDisputeNotFound
	}
	if isAdmin {
		return dispute, nil
	}

	booking, err := s.bookingRepo.FindByID(ctx, dispute.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil || (actorID != booking.BorrowerID && actorID != booking.LenderID) {
		return nil, ErrForbidden
	}
	return dispute, nil
}

func resolutionRef(disputeID int, step string) string {
	return fmt.Sprintf("dispute:%d:%s", disputeID, step)
}
