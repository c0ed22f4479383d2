package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
)

type FriendRepository interface {
	List(ctx context.Context) ([]*db_models.Friend, error)
	// AcceptedOf returns accepted edges touching the user, either direction.
	AcceptedOf(ctx context.Context, userID string) ([]*db_models.Friend, error)
	// Find resolves the edge regardless of which side initiated it.
	Find(ctx context.Context, userID, friendID string) (*db_models.Friend, error)
	Insert(ctx context.Context, friend *db_models.Friend) error
	Update(ctx context.Context, friend *db_models.Friend) error
	Delete(ctx context.Context, userID, friendID string) error
}

type friendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) List(ctx context.Context) ([]*db_models.Friend, error) {
	var friends []*db_models.Friend
	err := r.db.WithContext(ctx).Find(&friends).Error
	return friends, err
}

func (r *friendRepository) AcceptedOf(ctx context.Context, userID string) ([]*db_models.Friend, error) {
	var friends []*db_models.Friend
	err := r.db.WithContext(ctx).
		Where("accepted = ? AND (user_id = ? OR friend_id = ?)", true, userID, userID).
		Find(&friends).Error
	return friends, err
}

func (r *friendRepository) Find(ctx context.Context, userID, friendID string) (*db_models.Friend, error) {
	var friend db_models.Friend
	err := r.db.WithContext(ctx).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).
		First(&friend).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &friend, nil
}

func (r *friendRepository) Insert(ctx context.Context, friend *db_models.Friend) error {
	return r.db.WithContext(ctx).Create(friend).Error
}

func (r *friendRepository) Update(ctx context.Context, friend *db_models.Friend) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Friend{}).
		Where("user_id = ? AND friend_id = ?", friend.UserID, friend.FriendID).
		Update("accepted", friend.Accepted).Error
}

func (r *friendRepository) Delete(ctx context.Context, userID, friendID string) error {
	return r.db.WithContext(ctx).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).
		Delete(&db_models.Friend{}).Error
}
