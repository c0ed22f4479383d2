package services

import (
	"context"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/logger"
	"tripmate/pkg/utils"
)

type NotificationService interface {
	List(ctx context.Context) ([]*db_models.Notification, error)
	GetByID(ctx context.Context, id string) (*db_models.Notification, error)
	ByUser(ctx context.Context, userID string) ([]*db_models.Notification, error)
	UnreadByUser(ctx context.Context, userID string) ([]*db_models.Notification, error)
	Create(ctx context.Context, req request_models.NotificationCreateRequest) (*db_models.Notification, error)
	Update(ctx context.Context, id string, req request_models.NotificationUpdateRequest) (*db_models.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, id string) error
	DeleteAllByUser(ctx context.Context, userID string) (int64, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

func (s *notificationService) List(ctx context.Context) ([]*db_models.Notification, error) {
	notifications, err := s.notificationRepo.List(ctx)
	if err != nil {
		logger.Log.Errorw("notification listing failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return notifications, nil
}

func (s *notificationService) GetByID(ctx context.Context, id string) (*db_models.Notification, error) {
	notification, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("notification lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if notification == nil {
		return nil, utils.ErrNotificationNotFound
	}
	return notification, nil
}

// ByUser 404s when the user has no notifications at all.
func (s *notificationService) ByUser(ctx context.Context, userID string) ([]*db_models.Notification, error) {
	notifications, err := s.notificationRepo.ByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("notification lookup failed", "err", err, "user_id", userID)
		return nil, utils.ErrDatabaseError
	}
	if len(notifications) == 0 {
		return nil, utils.ErrNotificationNotFound
	}
	return notifications, nil
}

func (s *notificationService) UnreadByUser(ctx context.Context, userID string) ([]*db_models.Notification, error) {
	notifications, err := s.notificationRepo.UnreadByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("notification lookup failed", "err", err, "user_id", userID)
		return nil, utils.ErrDatabaseError
	}
	return notifications, nil
}

func (s *notificationService) Create(ctx context.Context, req request_models.NotificationCreateRequest) (*db_models.Notification, error) {
	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		logger.Log.Errorw("user lookup failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	id, err := s.notificationRepo.NextID(ctx)
	if err != nil {
		logger.Log.Errorw("notification id generation failed", "err", err)
		return nil, utils.ErrDatabaseError
	}

	notification := &db_models.Notification{
		ID:      id,
		UserID:  req.UserID,
		Content: req.Content,
		Read:    false,
	}

	if err := s.notificationRepo.Insert(ctx, notification); err != nil {
		logger.Log.Errorw("notification create failed", "err", err)
		return nil, utils.ErrDatabaseError
	}
	return notification, nil
}

func (s *notificationService) Update(ctx context.Context, id string, req request_models.NotificationUpdateRequest) (*db_models.Notification, error) {
	notification, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		notification.Content = *req.Content
	}
	if req.Read != nil {
		notification.Read = *req.Read
	}

	if err := s.notificationRepo.Update(ctx, notification); err != nil {
		logger.Log.Errorw("notification update failed", "err", err, "notification_id", id)
		return nil, utils.ErrDatabaseError
	}
	return notification, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	count, err := s.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		logger.Log.Errorw("notification mark-all-read failed", "err", err, "user_id", userID)
		return 0, utils.ErrDatabaseError
	}
	return count, nil
}

func (s *notificationService) Delete(ctx context.Context, id string) error {
	notification, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.notificationRepo.Delete(ctx, notification); err != nil {
		logger.Log.Errorw("notification delete failed", "err", err, "notification_id", id)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *notificationService) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	count, err := s.notificationRepo.DeleteAllByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("notification delete-all failed", "err", err, "user_id", userID)
		return 0, utils.ErrDatabaseError
	}
	return count, nil
}
