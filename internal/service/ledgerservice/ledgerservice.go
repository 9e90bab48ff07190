package ledgerservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shareit/shareit/internal/domain"
	"github.com/shareit/shareit/internal/pg"
	"github.com/shareit/shareit/pkg/keymutex"
)

//go:generate mockgen -source=ledgerservice.go -destination=ledgerservice_mock.go -package=ledgerservice

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	FindByOpRef(ctx context.Context, opRef string) (*domain.LedgerEntry, error)
	BalanceByUserID(ctx context.Context, userID int) (decimal.Decimal, error)
	OutstandingHoldByBookingID(ctx context.Context, bookingID int) (decimal.Decimal, error)
	FindByUserID(ctx context.Context, userID, limit int) ([]domain.LedgerEntry, error)
}

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrOpConflict means an operation reference was replayed with different
	// parameters than the original application.
	ErrOpConflict = errors.New("operation reference conflict")
)

const maxRetries = 3

// Service owns every money movement. Balances are always derived from the
// append-only entry log; mutations on one user are serialized by a per-user
// critical section so concurrent holds cannot pass a stale balance check.
type Service struct {
	repo       LedgerRepo
	userLocks  *keymutex.KeyMutex
	topUpLimit decimal.Decimal
}

func New(repo LedgerRepo, topUpLimit decimal.Decimal) *Service {
	return &Service{
		repo:       repo,
		userLocks:  keymutex.New(),
		topUpLimit: topUpLimit,
	}
}

func (s *Service) Balance(ctx context.Context, userID int) (decimal.Decimal, error) {
	balance, err := s.repo.BalanceByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

func (s *Service) History(ctx context.Context, userID, limit int) ([]domain.LedgerEntry, error) {
	entries, err := s.repo.FindByUserID(ctx, userID, limit)
	if err != nil {
		zap.L().Error("failed to get ledger history", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// OutstandingHold returns the amount still held in escrow for a booking.
func (s *Service) OutstandingHold(ctx context.Context, bookingID int) (decimal.Decimal, error) {
	held, err := s.repo.OutstandingHoldByBookingID(ctx, bookingID)
	if err != nil {
		zap.L().Error("failed to get outstanding hold", zap.Error(err))
		return decimal.Zero, err
	}
	return held, nil
}

// TopUp credits the wallet unconditionally within the configured limit.
func (s *Service) TopUp(ctx context.Context, userID int, amount decimal.Decimal, opRef, description string) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidAmount
	}
	if s.topUpLimit.IsPositive() && amount.GreaterThan(s.topUpLimit) {
		return decimal.Zero, ErrInvalidAmount
	}

	return s.apply(ctx, userID, &domain.LedgerEntry{
		UserID:      userID,
		EntryType:   domain.EntryTypeTopup,
		Amount:      amount,
		OpRef:       opRef,
		Description: description,
	}, nil)
}

// Hold reserves amount against the user's balance for a booking. The balance
// check and the HOLD append run under the user's critical section, so two
// concurrent holds cannot jointly overdraw.
func (s *Service) Hold(ctx context.Context, userID int, amount decimal.Decimal, bookingID int, opRef string) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidAmount
	}

	return s.apply(ctx, userID, &domain.LedgerEntry{
		UserID:    userID,
		EntryType: domain.EntryTypeHold,
		Amount:    amount.Neg(),
		BookingID: &bookingID,
		OpRef:     opRef,
	}, &amount)
}

// Release reverses an outstanding hold, returning collateral to the user.
func (s *Service) Release(ctx context.Context, userID int, amount decimal.Decimal, bookingID int, opRef string) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	if amount.IsZero() {
		// Nothing held back; releasing zero is a no-op.
		return s.Balance(ctx, userID)
	}

	return s.apply(ctx, userID, &domain.LedgerEntry{
		UserID:    userID,
		EntryType: domain.EntryTypeRelease,
		Amount:    amount,
		BookingID: &bookingID,
		OpRef:     opRef,
	}, nil)
}

// Capture converts part of the payer's outstanding hold into a final payment
// to the payee. Three entries, all tied to the booking: the held portion is
// reversed, an explicit CAPTURE debit consumes it, and the payee is credited.
// The payer's balance is unchanged (the money left it when the hold was
// placed); the booking's entries still net to zero.
func (s *Service) Capture(ctx context.Context, fromUserID, toUserID int, amount decimal.Decimal, bookingID int, opRef string) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidAmount
	}

	_, err := s.apply(ctx, fromUserID, &domain.LedgerEntry{
		UserID:    fromUserID,
		EntryType: domain.EntryTypeRelease,
		Amount:    amount,
		BookingID: &bookingID,
		OpRef:     opRef + ":unhold",
	}, nil)
	if err != nil {
		return decimal.Zero, err
	}

	balance, err := s.apply(ctx, fromUserID, &domain.LedgerEntry{
		UserID:    fromUserID,
		EntryType: domain.EntryTypeCapture,
		Amount:    amount.Neg(),
		BookingID: &bookingID,
		OpRef:     opRef + ":debit",
	}, &amount)
	if err != nil {
		return decimal.Zero, err
	}

	_, err = s.apply(ctx, toUserID, &domain.LedgerEntry{
		UserID:    toUserID,
		EntryType: domain.EntryTypeCapture,
		Amount:    amount,
		BookingID: &bookingID,
		OpRef:     opRef + ":credit",
	}, nil)
	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// Penalize debits beyond a hold, e.g. damage cost exceeding the deposit.
// Fails with ErrInsufficientFunds when the available balance cannot cover it;
// the caller decides the fallback policy.
func (s *Service) Penalize(ctx context.Context, userID int, amount decimal.Decimal, disputeID int, opRef string) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidAmount
	}

	return s.apply(ctx, userID, &domain.LedgerEntry{
		UserID:    userID,
		EntryType: domain.EntryTypePenalty,
		Amount:    amount.Neg(),
		DisputeID: &disputeID,
		OpRef:     opRef,
	}, &amount)
}

// RefundTo credits a user outside the hold/release pair, tied to a dispute.
func (s *Service) RefundTo(ctx context.Context, userID int, amount decimal.Decimal, disputeID int, opRef, description string) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidAmount
	}

	return s.apply(ctx, userID, &domain.LedgerEntry{
		UserID:      userID,
		EntryType:   domain.EntryTypeRefund,
		Amount:      amount,
		DisputeID:   &disputeID,
		OpRef:       opRef,
		Description: description,
	}, nil)
}

// apply appends one entry under the user's critical section. When required
// is non-nil the user's balance must cover it, otherwise the operation fails
// with ErrInsufficientFunds before anything is written. A replayed op_ref
// returns the current balance without appending (idempotency); a replayed
// op_ref with different parameters fails with ErrOpConflict.
func (s *Service) apply(ctx context.Context, userID int, entry *domain.LedgerEntry, required *decimal.Decimal) (decimal.Decimal, error) {
	s.userLocks.Lock(userID)
	defer s.userLocks.Unlock(userID)

	existing, err := s.repo.FindByOpRef(ctx, entry.OpRef)
	if err != nil {
		return decimal.Zero, err
	}
	if existing != nil {
		if existing.UserID != entry.UserID || existing.EntryType != entry.EntryType || !existing.Amount.Equal(entry.Amount) {
			return decimal.Zero, ErrOpConflict
		}
		zap.L().Info("ledger operation replayed", zap.String("op_ref", entry.OpRef))
		return s.repo.BalanceByUserID(ctx, userID)
	}

	balance, err := s.repo.BalanceByUserID(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	if required != nil && balance.LessThan(*required) {
		return decimal.Zero, ErrInsufficientFunds
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if _, err := s.repo.Append(ctx, entry); err != nil {
			if pg.IsUniqueViolation(err, "") {
				// Lost a race on op_ref: resolve as a replay.
				return s.resolveReplay(ctx, entry)
			}
			if pg.IsRetryable(err) {
				lastErr = err
				continue
			}
			return decimal.Zero, err
		}
		return balance.Add(entry.Amount), nil
	}
	zap.L().Error("ledger append retries exhausted", zap.Error(lastErr))
	return decimal.Zero, lastErr
}

func (s *Service) resolveReplay(ctx context.Context, entry *domain.LedgerEntry) (decimal.Decimal, error) {
	existing, err := s.repo.FindByOpRef(ctx, entry.OpRef)
	if err != nil {
		return decimal.Zero, err
	}
	if existing == nil || existing.UserID != entry.UserID || !existing.Amount.Equal(entry.Amount) {
		return decimal.Zero, ErrOpConflict
	}
	return s.repo.BalanceByUserID(ctx, entry.UserID)
}
