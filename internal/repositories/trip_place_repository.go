package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
	"tripmate/pkg/utils"
)

type TripPlaceLookupField int

const (
	TripPlaceByPlace TripPlaceLookupField = iota
	TripPlaceByTrip
)

func ParseTripPlaceLookupField(s string) (TripPlaceLookupField, bool) {
	switch s {
	case "place":
		return TripPlaceByPlace, true
	case "trip":
		return TripPlaceByTrip, true
	default:
		return 0, false
	}
}

type TripPlaceRepository interface {
	List(ctx context.Context) ([]*db_models.TripPlace, error)
	FindByID(ctx context.Context, id string) (*db_models.TripPlace, error)
	FindBy(ctx context.Context, field TripPlaceLookupField, lookup string) ([]*db_models.TripPlace, error)
	Insert(ctx context.Context, entry *db_models.TripPlace) error
	Update(ctx context.Context, entry *db_models.TripPlace) error
	Delete(ctx context.Context, entry *db_models.TripPlace) error
	NextID(ctx context.Context) (string, error)
}

type tripPlaceRepository struct {
	db *gorm.DB
}

func NewTripPlaceRepository(db *gorm.DB) TripPlaceRepository {
	return &tripPlaceRepository{db: db}
}

func (r *tripPlaceRepository) List(ctx context.Context) ([]*db_models.TripPlace, error) {
	var entries []*db_models.TripPlace
	err := r.db.WithContext(ctx).Find(&entries).Error
	return entries, err
}

func (r *tripPlaceRepository) FindByID(ctx context.Context, id string) (*db_models.TripPlace, error) {
	var entry db_models.TripPlace
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *tripPlaceRepository) FindBy(ctx context.Context, field TripPlaceLookupField, lookup string) ([]*db_models.TripPlace, error) {
	column := "place_id"
	if field == TripPlaceByTrip {
		column = "trip_id"
	}
	var entries []*db_models.TripPlace
	err := r.db.WithContext(ctx).Where(column+" = ?", lookup).Find(&entries).Error
	return entries, err
}

func (r *tripPlaceRepository) NextID(ctx context.Context) (string, error) {
	for {
		id := utils.GenerateCode(utils.TripPlaceCodePrefix)
		existing, err := r.FindByID(ctx, id)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return id, nil
		}
	}
}

func (r *tripPlaceRepository) Insert(ctx context.Context, entry *db_models.TripPlace) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *tripPlaceRepository) Update(ctx context.Context, entry *db_models.TripPlace) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *tripPlaceRepository) Delete(ctx context.Context, entry *db_models.TripPlace) error {
	return r.db.WithContext(ctx).Delete(entry).Error
}
