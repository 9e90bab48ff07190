package dto

import "time"

type CreateItemRequestDTO struct {
	Title          string  `json:"title" example:"Bosch cordless drill" validate:"required,min=3,max=120"`
	Description    string  `json:"description" example:"18V, two batteries included"`
	Condition      string  `json:"condition" example:"good"`
	EstimatedPrice float64 `json:"estimated_price" example:"120"`
	MinDays        int     `json:"min_days" example:"1"`
	MaxDays        int     `json:"max_days" example:"14"`
	DailyDeposit   float64 `json:"daily_deposit" example:"10"`
	Location       string  `json:"location" example:"Amsterdam"`
}

type UpdateItemRequestDTO struct {
	Title          string  `json:"title" example:"Bosch cordless drill"`
	Description    string  `json:"description" example:"18V, two batteries included"`
	Condition      string  `json:"condition" example:"good"`
	EstimatedPrice float64 `json:"estimated_price" example:"120"`
	MinDays        int     `json:"min_days" example:"1"`
	MaxDays        int     `json:"max_days" example:"14"`
	DailyDeposit   float64 `json:"daily_deposit" example:"10"`
	Location       string  `json:"location" example:"Amsterdam"`
}

type ItemResponseDTO struct {
	ID             int       `json:"id" example:"7"`
	LenderID       int       `json:"lender_id" example:"3"`
	Title          string    `json:"title" example:"Bosch cordless drill"`
	Description    string    `json:"description" example:"18V, two batteries included"`
	Condition      string    `json:"condition" example:"good"`
	EstimatedPrice float64   `json:"estimated_price" example:"120"`
	MinDays        int       `json:"min_days" example:"1"`
	MaxDays        int       `json:"max_days" example:"14"`
	DailyDeposit   float64   `json:"daily_deposit" example:"10"`
	Location       string    `json:"location" example:"Amsterdam"`
	Status         string    `json:"status" example:"available"`
	CreatedAt      time.Time `json:"created_at" example:"2024-11-02T10:15:00+01:00"`
}
