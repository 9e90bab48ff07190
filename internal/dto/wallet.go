package dto

import "time"

type BalanceResponseDTO struct {
	Balance float64 `json:"balance" example:"500.5"`
}

type TopUpRequestDTO struct {
	Amount float64 `json:"amount" example:"100" validate:"required,gt=0"`
	Card   string  `json:"card" example:"2377225624"`
}

type TopUpResponseDTO struct {
	Balance float64 `json:"balance" example:"600.5"`
}

type LedgerEntryResponseDTO struct {
	ID          int       `json:"id" example:"42"`
	EntryType   string    `json:"entry_type" example:"HOLD"`
	Amount      float64   `json:"amount" example:"-30"`
	BookingID   *int      `json:"booking_id,omitempty" example:"12"`
	DisputeID   *int      `json:"dispute_id,omitempty"`
	Description string    `json:"description" example:"deposit hold"`
	CreatedAt   time.Time `json:"created_at" example:"2024-11-02T10:15:00+01:00"`
}
