package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
	"tripmate/pkg/utils"
)

type RecommendationRepository interface {
	List(ctx context.Context, skip, limit int) ([]*db_models.Recommendation, error)
	FindByID(ctx context.Context, id string) (*db_models.Recommendation, error)
	ByUser(ctx context.Context, userID string) ([]*db_models.Recommendation, error)
	Insert(ctx context.Context, rec *db_models.Recommendation) error
	Delete(ctx context.Context, rec *db_models.Recommendation) error
	NextID(ctx context.Context) (string, error)
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) List(ctx context.Context, skip, limit int) ([]*db_models.Recommendation, error) {
	var recs []*db_models.Recommendation
	err := r.db.WithContext(ctx).Offset(skip).Limit(limit).Find(&recs).Error
	return recs, err
}

func (r *recommendationRepository) FindByID(ctx context.Context, id string) (*db_models.Recommendation, error) {
	var rec db_models.Recommendation
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *recommendationRepository) ByUser(ctx context.Context, userID string) ([]*db_models.Recommendation, error) {
	var recs []*db_models.Recommendation
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&recs).Error
	return recs, err
}

func (r *recommendationRepository) NextID(ctx context.Context) (string, error) {
	for {
		id := utils.GenerateCode(utils.RecommendationCodePrefix)
		existing, err := r.FindByID(ctx, id)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return id, nil
		}
	}
}

func (r *recommendationRepository) Insert(ctx context.Context, rec *db_models.Recommendation) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recommendationRepository) Delete(ctx context.Context, rec *db_models.Recommendation) error {
	return r.db.WithContext(ctx).Delete(rec).Error
}
