package bookingservice

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
	"github.com/shareit/shareit/pkg/keymutex"
)

//go:generate mockgen -source=bookingservice.go -destination=bookingservice_mock.go -package=bookingservice

type BookingRepo interface {
	Save(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id int) (*domain.Booking, error)
	FindActiveByItemID(ctx context.Context, itemID int) (*domain.Booking, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Booking, error)
	FindPendingByLenderID(ctx context.Context, lenderID int) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int, fromStatus, toStatus string) error
}

type ItemRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Item, error)
}

type DisputeRepo interface {
	FindOpenByBookingID(ctx context.Context, bookingID int) (*domain.Dispute, error)
}

type Ledger interface {
	Hold(ctx context.Context, userID int, amount decimal.Decimal, bookingID int, opRef string) (decimal.Decimal, error)
	Release(ctx context.Context, userID int, amount decimal.Decimal, bookingID int, opRef string) (decimal.Decimal, error)
	OutstandingHold(ctx context.Context, bookingID int) (decimal.Decimal, error)
}

type Availability interface {
	DaysRemaining(ctx context.Context, itemID int) (*int, error)
}

var (
	ErrItemNotFound      = errors.New("item not found")
	ErrOwnItem           = errors.New("cannot book your own item")
	ErrItemUnavailable   = errors.New("item unavailable")
	ErrInvalidDuration   = errors.New("duration outside allowed range")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrDisputeOpen       = errors.New("booking frozen by open dispute")
)

// Service owns the booking lifecycle. Admission (availability + funds +
// ownership) and every transition run under the item's critical section;
// the same lock set is shared with the dispute resolver so its freeze and
// settle writes serialize against Decide.
type Service struct {
	repo         BookingRepo
	itemRepo     ItemRepo
	disputeRepo  DisputeRepo
	ledger       Ledger
	availability Availability
	txManager    pg.TXManager
	itemLocks    *keymutex.KeyMutex
}

func New(repo BookingRepo, itemRepo ItemRepo, disputeRepo DisputeRepo, ledger Ledger, availability Availability, txManager pg.TXManager, itemLocks *keymutex.KeyMutex) *Service {
	return &Service{
		repo:         repo,
		itemRepo:     itemRepo,
		disputeRepo:  disputeRepo,
		ledger:       ledger,
		availability: availability,
		txManager:    txManager,
		itemLocks:    itemLocks,
	}
}

// Request admits a booking: ownership, duration and availability checks, the
// deposit hold and the booking insert all inside one transaction under the
// item's critical section. A failure after the hold rolls the whole
// transaction back, so no orphaned hold can survive.
func (s *Service) Request(ctx context.Context, borrowerID, itemID int, startDate, endDate time.Time, reason string) (*domain.Booking, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	if item.LenderID == borrowerID {
		return nil, ErrOwnItem
	}
	if !item.IsActive {
		return nil, ErrItemUnavailable
	}

	days := int(endDate.Sub(startDate).Hours() / 24)
	if days < item.MinDays || days > item.MaxDays {
		return nil, fmt.Errorf("%w: must be between %d and %d days", ErrInvalidDuration, item.MinDays, item.MaxDays)
	}

	totalDeposit := item.DailyDeposit.Mul(decimal.NewFromInt(int64(days)))

	s.itemLocks.Lock(itemID)
	defer s.itemLocks.Unlock(itemID)

	var booking *domain.Booking
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		daysLeft, err := s.availability.DaysRemaining(ctx, itemID)
		if err != nil {
			return err
		}
		if daysLeft != nil {
			return ErrItemUnavailable
		}

		booking, err = s.repo.Save(ctx, &domain.Booking{
			ItemID:       itemID,
			BorrowerID:   borrowerID,
			LenderID:     item.LenderID,
			StartDate:    startDate,
			EndDate:      endDate,
			TotalDeposit: totalDeposit,
			Status:       domain.BookingStatusPending,
			Reason:       reason,
		})
		if err != nil {
			if pg.IsUniqueViolation(err, "uniq_bookings_item_active") {
				return ErrItemUnavailable
			}
			return err
		}

		_, err = s.ledger.Hold(ctx, borrowerID, totalDeposit, booking.ID, holdRef(booking.ID))
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("booking admitted",
		zap.Int("booking_id", booking.ID),
		zap.Int("item_id", itemID),
		zap.String("deposit", totalDeposit.String()))
	return booking, nil
}

// Decide applies one lifecycle transition requested by a booking party.
// Guards run in order: the caller must be a party, must hold the role the
// transition requires, and the booking must be in the expected status.
func (s *Service) Decide(ctx context.Context, actorID, bookingID int, targetStatus string) (*domain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
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

	// Re-read under the lock; a concurrent transition may have won.
	booking, err = s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	switch targetStatus {
	case domain.BookingStatusAccepted:
		err = s.transition(ctx, booking, actorID, booking.LenderID, domain.BookingStatusPending, domain.BookingStatusAccepted, false)
	case domain.BookingStatusRejected:
		err = s.transition(ctx, booking, actorID, booking.LenderID, domain.BookingStatusPending, domain.BookingStatusRejected, true)
	case domain.BookingStatusCancelled:
		err = s.transition(ctx, booking, actorID, booking.BorrowerID, domain.BookingStatusPending, domain.BookingStatusCancelled, true)
	case domain.BookingStatusReturnPending:
		err = s.transition(ctx, booking, actorID, booking.BorrowerID, domain.BookingStatusAccepted, domain.BookingStatusReturnPending, false)
	case domain.BookingStatusReturned:
		err = s.transition(ctx, booking, actorID, booking.LenderID, domain.BookingStatusReturnPending, domain.BookingStatusReturned, true)
	default:
		err = fmt.Errorf("%w: unknown target status %q", ErrInvalidTransition, targetStatus)
	}
	if err != nil {
		return nil, err
	}

	booking.Status = targetStatus
	zap.L().Info("booking transition applied",
		zap.Int("booking_id", booking.ID),
		zap.String("status", targetStatus))
	return booking, nil
}

// transition enforces the actor and status guards, then applies the status
// change and, for transitions that settle the escrow, the full hold release
// in one transaction.
func (s *Service) transition(ctx context.Context, booking *domain.Booking, actorID, requiredActor int, fromStatus, toStatus string, releaseHold bool) error {
	if actorID != requiredActor {
		return ErrForbidden
	}
	if booking.Status == domain.BookingStatusDisputed {
		return ErrDisputeOpen
	}
	if booking.Status != fromStatus {
		return fmt.Errorf("%w: booking is %s", ErrInvalidTransition, booking.Status)
	}

	open, err := s.disputeRepo.FindOpenByBookingID(ctx, booking.ID)
	if err != nil {
		return err
	}
	if open != nil {
		return ErrDisputeOpen
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		if releaseHold {
			held, err := s.ledger.OutstandingHold(ctx, booking.ID)
			if err != nil {
				return err
			}
			if _, err := s.ledger.Release(ctx, booking.BorrowerID, held, booking.ID, releaseRef(booking.ID)); err != nil {
				return err
			}
		}
		if err := s.repo.UpdateStatus(ctx, booking.ID, fromStatus, toStatus); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: booking is no longer %s", ErrInvalidTransition, fromStatus)
			}
			return err
		}
		return nil
	})
}

func (s *Service) GetUserBookings(ctx context.Context, userID int) ([]domain.Booking, error) {
	bookings, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user bookings", zap.Error(err))
		return nil, err
	}
	return bookings, nil
}

func (s *Service) GetPendingForLender(ctx context.Context, lenderID int) ([]domain.Booking, error) {
	bookings, err := s.repo.FindPendingByLenderID(ctx, lenderID)
	if err != nil {
		zap.L().Error("failed to get pending bookings", zap.Error(err))
		return nil, err
	}
	return bookings, nil
}

// GetByID returns a booking to one of its parties.
func (s *Service) GetByID(ctx context.Context, actorID, bookingID int) (*domain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if actorID != booking.BorrowerID && actorID != booking.LenderID {
		return nil, ErrForbidden
	}
	return booking, nil
}

func holdRef(bookingID int) string {
	return fmt.Sprintf("booking:%d:hold", bookingID)
}

func releaseRef(bookingID int) string {
	return fmt.Sprintf("booking:%d:release", bookingID)
}
