package request_models

type PlaceCreateRequest struct {
	Name        string `json:"name" binding:"required,max=50"`
	Country     string `json:"country" binding:"max=100"`
	City        string `json:"city" binding:"max=100"`
	Province    string `json:"province" binding:"max=100"`
	Address     string `json:"address" binding:"max=1000"`
	Description string `json:"description" binding:"max=1000"`
	Image       string `json:"image" binding:"max=1000"`
	Rating      int    `json:"rating" binding:"min=0,max=5"`
	Type        int    `json:"type"`
}

type PlaceUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=50"`
	Country     *string `json:"country" binding:"omitempty,max=100"`
	City        *string `json:"city" binding:"omitempty,max=100"`
	Province    *string `json:"province" binding:"omitempty,max=100"`
	Address     *string `json:"address" binding:"omitempty,max=1000"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Image       *string `json:"image" binding:"omitempty,max=1000"`
	Rating      *int    `json:"rating" binding:"omitempty,min=0,max=5"`
	Type        *int    `json:"type"`
}
