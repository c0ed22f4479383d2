package repositories

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
	"tripmate/pkg/utils"
)

type ReviewLookupField int

const (
	ReviewByTrip ReviewLookupField = iota
	ReviewByUser
	ReviewByRating
)

func ParseReviewLookupField(s string) (ReviewLookupField, bool) {
	switch s {
	case "trip":
		return ReviewByTrip, true
	case "user":
		return ReviewByUser, true
	case "rating":
		return ReviewByRating, true
	default:
		return 0, false
	}
}

type ReviewRepository interface {
	List(ctx context.Context) ([]*db_models.Review, error)
	FindByID(ctx context.Context, id string) (*db_models.Review, error)
	FindBy(ctx context.Context, field ReviewLookupField, lookup string) ([]*db_models.Review, error)
	FindByTripAndUser(ctx context.Context, tripID, userID string) (*db_models.Review, error)
	Top(ctx context.Context, limit int) ([]*db_models.Review, error)
	Insert(ctx context.Context, review *db_models.Review) error
	Delete(ctx context.Context, review *db_models.Review) error
	NextID(ctx context.Context) (string, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) List(ctx context.Context) ([]*db_models.Review, error) {
	var reviews []*db_models.Review
	err := r.db.WithContext(ctx).Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) FindByID(ctx context.Context, id string) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindBy(ctx context.Context, field ReviewLookupField, lookup string) ([]*db_models.Review, error) {
	var reviews []*db_models.Review
	q := r.db.WithContext(ctx)

	switch field {
	case ReviewByTrip:
		q = q.Where("trip_id = ?", lookup)
	case ReviewByUser:
		q = q.Where("user_id = ?", lookup)
	case ReviewByRating:
		rating, err := strconv.Atoi(lookup)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		q = q.Where("rating = ?", rating)
	}

	err := q.Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) FindByTripAndUser(ctx context.Context, tripID, userID string) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).
		First(&review, "trip_id = ? AND user_id = ?", tripID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Top(ctx context.Context, limit int) ([]*db_models.Review, error) {
	var reviews []*db_models.Review
	err := r.db.WithContext(ctx).
		Order("rating DESC").
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) NextID(ctx context.Context) (string, error) {
	for {
		id := utils.GenerateCode(utils.ReviewCodePrefix)
		existing, err := r.FindByID(ctx, id)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return id, nil
		}
	}
}

func (r *reviewRepository) Insert(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) Delete(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Delete(review).Error
}
