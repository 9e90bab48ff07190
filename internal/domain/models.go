package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleBorrower string = "borrower"
	RoleLender   string = "lender"
	RoleAdmin    string = "admin"
)

type User struct {
	ID           int       `db:"id"`
	FullName     string    `db:"full_name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Phone        string    `db:"phone"`
	Address      string    `db:"address"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	// ItemStatusAvailable item has no active booking and can be requested;
	ItemStatusAvailable string = "available"
	// ItemStatusRented item is held by an active booking;
	ItemStatusRented string = "rented"
	// ItemStatusDispute item's current booking is frozen by an open dispute;
	ItemStatusDispute string = "dispute"
	// ItemStatusInactive item was deactivated by its lender;
	ItemStatusInactive string = "inactive"
)

type Item struct {
	ID             int             `db:"id"`
	LenderID       int             `db:"lender_id"`
	Title          string          `db:"title"`
	Description    string          `db:"description"`
	Condition      string          `db:"condition"`
	EstimatedPrice decimal.Decimal `db:"estimated_price"`
	MinDays        int             `db:"min_days"`
	MaxDays        int             `db:"max_days"`
	DailyDeposit   decimal.Decimal `db:"daily_deposit"`
	Location       string          `db:"location"`
	IsActive       bool            `db:"is_active"`
	CreatedAt      time.Time       `db:"created_at"`
}

const (
	BookingStatusPending       string = "pending"
	BookingStatusAccepted      string = "accepted"
	BookingStatusRejected      string = "rejected"
	BookingStatusCancelled     string = "cancelled"
	BookingStatusReturnPending string = "return_pending"
	BookingStatusDisputed      string = "disputed"
	BookingStatusReturned      string = "returned"
)

// IsTerminalBookingStatus reports whether no further transition is defined
// for the given status.
func IsTerminalBookingStatus(status string) bool {
	switch status {
	case BookingStatusRejected, BookingStatusCancelled, BookingStatusReturned:
		return true
	}
	return false
}

type Booking struct {
	ID           int             `db:"id"`
	ItemID       int             `db:"item_id"`
	BorrowerID   int             `db:"borrower_id"`
	LenderID     int             `db:"lender_id"`
	StartDate    time.Time       `db:"start_date"`
	EndDate      time.Time       `db:"end_date"`
	TotalDeposit decimal.Decimal `db:"total_deposit"`
	Status       string          `db:"status"`
	Reason       string          `db:"reason"`
	CreatedAt    time.Time       `db:"created_at"`

	// Joined display fields, populated by the read queries only.
	ItemTitle    string `db:"item_title"`
	LenderName   string `db:"lender_name"`
	BorrowerName string `db:"borrower_name"`
}

const (
	// EntryTypeTopup funds added to the wallet from outside;
	EntryTypeTopup string = "TOPUP"
	// EntryTypeHold deposit reserved against a booking, reversible;
	EntryTypeHold string = "HOLD"
	// EntryTypeRelease reversal of an outstanding hold;
	EntryTypeRelease string = "RELEASE"
	// EntryTypeCapture hold converted into a final settlement;
	EntryTypeCapture string = "CAPTURE"
	// EntryTypeRefund funds returned outside the hold/release pair;
	EntryTypeRefund string = "REFUND"
	// EntryTypePenalty debit beyond a hold, decided by dispute resolution;
	EntryTypePenalty string = "PENALTY"
)

// LedgerEntry is an immutable, append-only record of a single money movement.
// A user's balance is the running sum of the signed amounts of their entries.
type LedgerEntry struct {
	ID          int             `db:"id"`
	UserID      int             `db:"user_id"`
	EntryType   string          `db:"entry_type"`
	Amount      decimal.Decimal `db:"amount"`
	BookingID   *int            `db:"booking_id"`
	DisputeID   *int            `db:"dispute_id"`
	OpRef       string          `db:"op_ref"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}

const (
	DisputeStatusOpen     string = "open"
	DisputeStatusResolved string = "resolved"
	DisputeStatusRejected string = "rejected"
)

type Dispute struct {
	ID              int              `db:"id"`
	BookingID       int              `db:"booking_id"`
	RaisedBy        int              `db:"raised_by"`
	Description     string           `db:"description"`
	EstimatedCost   *decimal.Decimal `db:"estimated_cost"`
	Status          string           `db:"status"`
	ResolutionNotes string           `db:"resolution_notes"`
	CreatedAt       time.Time        `db:"created_at"`
	ResolvedAt      *time.Time       `db:"resolved_at"`

	// Joined display fields, populated by the read queries only.
	ItemTitle    string `db:"item_title"`
	LenderName   string `db:"lender_name"`
	BorrowerName string `db:"borrower_name"`
}
