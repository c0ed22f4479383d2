package request_models

type NotificationCreateRequest struct {
	UserID  string `json:"idUser" binding:"required,len=6"`
	Content string `json:"content" binding:"required,max=1000"`
}

type NotificationUpdateRequest struct {
	Content *string `json:"content" binding:"omitempty,max=1000"`
	Read    *bool   `json:"isRead"`
}
