package dto

type RegisterRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"user@ezpay.dev"`
	Name     string `json:"name" validate:"required,min=2,max=50" example:"Jane Doe"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"user@ezpay.dev"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
