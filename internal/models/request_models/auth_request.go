package request_models

// LoginRequest arrives form-encoded, OAuth2 password-flow style.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type RegisterRequest struct {
	Username    string  `json:"username" binding:"required,min=3,max=50"`
	Password    string  `json:"password" binding:"required,min=6"`
	Name        string  `json:"name" binding:"required,max=50"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Gender      *int    `json:"gender"`
	PhoneNumber *string `json:"phoneNumber" binding:"omitempty,max=10"`
}

type SocialLoginRequest struct {
	Provider string `json:"provider" binding:"required"`
	Token    string `json:"token" binding:"required"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}
