package dto

import "time"

type OpenDisputeRequestDTO struct {
	BookingID     int      `json:"booking_id" example:"12" validate:"required"`
	Description   string   `json:"description" example:"drill returned with a cracked chuck" validate:"required"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty" example:"45"`
}

type ResolveDisputeRequestDTO struct {
	Outcome string `json:"outcome" example:"resolved" validate:"required"`
	Notes   string `json:"notes" example:"photos confirm the damage"`
}

type DisputeResponseDTO struct {
	ID              int        `json:"id" example:"4"`
	BookingID       int        `json:"booking_id" example:"12"`
	RaisedBy        int        `json:"raised_by" example:"3"`
	Description     string     `json:"description" example:"drill returned with a cracked chuck"`
	EstimatedCost   *float64   `json:"estimated_cost,omitempty" example:"45"`
	Status          string     `json:"status" example:"open"`
	ResolutionNotes string     `json:"resolution_notes,omitempty"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at" example:"2024-11-15T09:00:00+01:00"`
	ItemTitle       string     `json:"item_title,omitempty" example:"cordless drill"`
	LenderName      string     `json:"lender_name,omitempty" example:"Lena Ortiz"`
	BorrowerName    string     `json:"borrower_name,omitempty" example:"Boris Vance"`
}
