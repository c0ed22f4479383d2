package request_models

type ReviewCreateRequest struct {
	TripID  string `json:"idTrip" binding:"required,len=6"`
	Comment string `json:"comment" binding:"max=1000"`
	Rating  int    `json:"rating" binding:"min=1,max=5"`
}
