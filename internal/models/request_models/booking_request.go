package request_models

import "time"

type BookingCreateRequest struct {
	PlaceID string    `json:"idPlace" binding:"required,len=6"`
	Date    time.Time `json:"date" binding:"required"`
	Status  string    `json:"status" binding:"max=100"`
}

type BookingUpdateRequest struct {
	PlaceID string     `json:"idPlace" binding:"required,len=6"`
	Date    *time.Time `json:"date"`
	Status  *string    `json:"status" binding:"omitempty,max=100"`
}

type BookingOwnerRequest struct {
	UserID    string `json:"idUser" binding:"required,len=6"`
	BookingID string `json:"idBooking" binding:"required,len=6"`
}
