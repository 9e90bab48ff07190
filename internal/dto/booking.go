package dto

import "time"

type CreateBookingRequestDTO struct {
	ItemID    int       `json:"item_id" example:"7" validate:"required"`
	StartDate time.Time `json:"start_date" example:"2024-11-10T00:00:00Z" validate:"required"`
	EndDate   time.Time `json:"end_date" example:"2024-11-13T00:00:00Z" validate:"required"`
	Reason    string    `json:"reason" example:"weekend renovation"`
}

type DecideBookingRequestDTO struct {
	Status string `json:"status" example:"accepted" validate:"required"`
}

type BookingResponseDTO struct {
	ID           int       `json:"id" example:"12"`
	ItemID       int       `json:"item_id" example:"7"`
	BorrowerID   int       `json:"borrower_id" example:"5"`
	LenderID     int       `json:"lender_id" example:"3"`
	StartDate    time.Time `json:"start_date" example:"2024-11-10T00:00:00Z"`
	EndDate      time.Time `json:"end_date" example:"2024-11-13T00:00:00Z"`
	TotalDeposit float64   `json:"total_deposit" example:"30"`
	Status       string    `json:"status" example:"pending"`
	Reason       string    `json:"reason" example:"weekend renovation"`
	CreatedAt    time.Time `json:"created_at" example:"2024-11-02T10:15:00+01:00"`
	ItemTitle    string    `json:"item_title,omitempty" example:"cordless drill"`
	LenderName   string    `json:"lender_name,omitempty" example:"Lena Ortiz"`
	BorrowerName string    `json:"borrower_name,omitempty" example:"Boris Vance"`
}

type ActiveItemsResponseDTO struct {
	Active map[int]int `json:"active"`
}
