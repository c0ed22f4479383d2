package request_models

type FriendCreateRequest struct {
	UserID   string `json:"idSelf" binding:"required,len=6"`
	FriendID string `json:"idFriend" binding:"required,len=6"`
}

type FriendUpdateRequest struct {
	UserID   string `json:"idSelf" binding:"required,len=6"`
	FriendID string `json:"idFriend" binding:"required,len=6"`
	Accepted bool   `json:"isAccept"`
}
