package dto

type RegisterRequestDTO struct {
	FullName string `json:"full_name" example:"Anna Petrova" validate:"required,min=2,max=100"`
	Email    string `json:"email" example:"anna@example.com" validate:"required,email"`
	Password string `json:"password" example:"s3cr3tPass" validate:"required,min=8"`
	Phone    string `json:"phone" example:"+31612345678"`
	Address  string `json:"address" example:"Keizersgracht 1, Amsterdam"`
	Role     string `json:"role" example:"borrower"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" example:"anna@example.com" validate:"required,email"`
	Password string `json:"password" example:"s3cr3tPass" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
