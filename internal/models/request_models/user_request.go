package request_models

type CreateUserRequest struct {
	Name        string  `json:"name" binding:"required,max=50"`
	Username    string  `json:"username" binding:"required,min=3,max=50"`
	Password    string  `json:"password" binding:"required,min=6"`
	Gender      *int    `json:"gender"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber" binding:"omitempty,max=10"`
	Avatar      []byte  `json:"avatar"`
}

// UpdateUserRequest applies only the fields that are set.
type UpdateUserRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=50"`
	Username    *string `json:"username" binding:"omitempty,min=3,max=50"`
	Gender      *int    `json:"gender"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber" binding:"omitempty,max=10"`
	Avatar      []byte  `json:"avatar"`
	Theme       *int    `json:"theme"`
	Language    *int    `json:"language"`
}
