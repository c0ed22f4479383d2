package request_models

import "time"

type TripCreateRequest struct {
	Name      string     `json:"name" binding:"required,max=50"`
	StartDate time.Time  `json:"startDate" binding:"required"`
	EndDate   *time.Time `json:"endDate"`
}

type TripUpdateRequest struct {
	Name      *string    `json:"name" binding:"omitempty,max=50"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

type TripMemberRequest struct {
	UserID string `json:"idUser" binding:"required,len=6"`
	TripID string `json:"idTrip" binding:"required,len=6"`
}

type TripPlaceCreateRequest struct {
	PlaceID   string    `json:"idPlace" binding:"required,len=6"`
	TripID    string    `json:"idTrip" binding:"required,len=6"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Note      string    `json:"note" binding:"max=1000"`
}

type TripPlaceUpdateRequest struct {
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Note      *string    `json:"note" binding:"omitempty,max=1000"`
}
