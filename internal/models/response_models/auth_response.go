package response_models

type LoginResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	UserID      string  `json:"user_id"`
	Username    string  `json:"username"`
	Name        string  `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	Gender      *int    `json:"gender"`
	Theme       int     `json:"theme"`
	Language    int     `json:"language"`
}

type RegisterResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	UserID   string `json:"userId"`
}

// SocialLoginResponse is either a needs-registration payload or a full
// login payload, distinguished by IsNewUser.
type SocialLoginResponse struct {
	IsNewUser   bool           `json:"isNewUser"`
	Message     string         `json:"message,omitempty"`
	ProfileData map[string]any `json:"profileData,omitempty"`
	Username    string         `json:"username,omitempty"`
	Name        string         `json:"name,omitempty"`
	Login       *LoginResponse `json:"login,omitempty"`
}
