package api

// Request DTOs

type RegisterRequest struct {
	Username    string  `json:"username" validate:"required,max=150"`
	Password    string  `json:"password" validate:"required,min=8"`
	Email       string  `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,max=140"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
