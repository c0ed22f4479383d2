package response_models

import "tripmate/internal/models/db_models"

// UserResponse is the public profile shape; no password hash, no avatar blob.
type UserResponse struct {
	UserID      string  `json:"idUser"`
	Name        string  `json:"name"`
	Username    string  `json:"username"`
	Gender      *int    `json:"gender"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	Theme       int     `json:"theme"`
	Language    int     `json:"language"`
}

func NewUserResponse(u *db_models.User) UserResponse {
	return UserResponse{
		UserID:      u.ID,
		Name:        u.Name,
		Username:    u.Username,
		Gender:      u.Gender,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Theme:       u.Theme,
		Language:    u.Language,
	}
}

func NewUserResponses(users []*db_models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
