package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
	"tripmate/pkg/utils"
)

type NotificationRepository interface {
	List(ctx context.Context) ([]*db_models.Notification, error)
	FindByID(ctx context.Context, id string) (*db_models.Notification, error)
	ByUser(ctx context.Context, userID string) ([]*db_models.Notification, error)
	UnreadByUser(ctx context.Context, userID string) ([]*db_models.Notification, error)
	Insert(ctx context.Context, notification *db_models.Notification) error
	Update(ctx context.Context, notification *db_models.Notification) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, notification *db_models.Notification) error
	DeleteAllByUser(ctx context.Context, userID string) (int64, error)
	NextID(ctx context.Context) (string, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) List(ctx context.Context) ([]*db_models.Notification, error) {
	var notifications []*db_models.Notification
	err := r.db.WithContext(ctx).Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) FindByID(ctx context.Context, id string) (*db_models.Notification, error) {
	var notification db_models.Notification
	err := r.db.WithContext(ctx).First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) ByUser(ctx context.Context, userID string) ([]*db_models.Notification, error) {
	var notifications []*db_models.Notification
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) UnreadByUser(ctx context.Context, userID string) ([]*db_models.Notification, error) {
	var notifications []*db_models.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND read = ?", userID, false).
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) NextID(ctx context.Context) (string, error) {
	for {
		id := utils.GenerateCode(utils.NotificationCodePrefix)
		existing, err := r.FindByID(ctx, id)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return id, nil
		}
	}
}

func (r *notificationRepository) Insert(ctx context.Context, notification *db_models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) Update(ctx context.Context, notification *db_models.Notification) error {
	return r.db.WithContext(ctx).Save(notification).Error
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	return res.RowsAffected, res.Error
}

func (r *notificationRepository) Delete(ctx context.Context, notification *db_models.Notification) error {
	return r.db.WithContext(ctx).Delete(notification).Error
}

func (r *notificationRepository) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&db_models.Notification{})
	return res.RowsAffected, res.Error
}
