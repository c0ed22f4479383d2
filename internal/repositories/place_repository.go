package repositories

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
	"tripmate/pkg/utils"
)

type PlaceLookupField int

const (
	PlaceByName PlaceLookupField = iota
	PlaceByCountry
	PlaceByCity
	PlaceByProvince
	PlaceByRating
	PlaceByType
)

func ParsePlaceLookupField(s string) (PlaceLookupField, bool) {
	switch s {
	case "name":
		return PlaceByName, true
	case "country":
		return PlaceByCountry, true
	case "city":
		return PlaceByCity, true
	case "province":
		return PlaceByProvince, true
	case "rating":
		return PlaceByRating, true
	case "type":
		return PlaceByType, true
	default:
		return 0, false
	}
}

type PlaceRepository interface {
	List(ctx context.Context) ([]*db_models.Place, error)
	FindByID(ctx context.Context, id string) (*db_models.Place, error)
	FindBy(ctx context.Context, field PlaceLookupField, lookup string) ([]*db_models.Place, error)
	Search(ctx context.Context, query string) ([]*db_models.Place, error)
	Insert(ctx context.Context, place *db_models.Place) error
	Update(ctx context.Context, place *db_models.Place) error
	Delete(ctx context.Context, place *db_models.Place) error
	NextID(ctx context.Context) (string, error)

	BookingsOfPlace(ctx context.Context, placeID string) ([]*db_models.Booking, error)
	TripsOfPlace(ctx context.Context, placeID string) ([]*db_models.Trip, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) List(ctx context.Context) ([]*db_models.Place, error) {
	var places []*db_models.Place
	err := r.db.WithContext(ctx).Find(&places).Error
	return places, err
}

func (r *placeRepository) FindByID(ctx context.Context, id string) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).First(&place, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) FindBy(ctx context.Context, field PlaceLookupField, lookup string) ([]*db_models.Place, error) {
	var places []*db_models.Place
	q := r.db.WithContext(ctx)

	switch field {
	case PlaceByName:
		q = q.Where("name = ?", lookup)
	case PlaceByCountry:
		q = q.Where("country = ?", lookup)
	case PlaceByCity:
		q = q.Where("city = ?", lookup)
	case PlaceByProvince:
		q = q.Where("province = ?", lookup)
	case PlaceByRating:
		rating, err := strconv.Atoi(lookup)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		q = q.Where("rating = ?", rating)
	case PlaceByType:
		placeType, err := strconv.Atoi(lookup)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		q = q.Where("type = ?", placeType)
	}

	err := q.Find(&places).Error
	return places, err
}

func (r *placeRepository) Search(ctx context.Context, query string) ([]*db_models.Place, error) {
	var places []*db_models.Place
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR city ILIKE ? OR country ILIKE ?", pattern, pattern, pattern).
		Find(&places).Error
	return places, err
}

func (r *placeRepository) NextID(ctx context.Context) (string, error) {
	for {
		id := utils.GenerateCode(utils.PlaceCodePrefix)
		existing, err := r.FindByID(ctx, id)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return id, nil
		}
	}
}

func (r *placeRepository) Insert(ctx context.Context, place *db_models.Place) error {
	return r.db.WithContext(ctx).Create(place).Error
}

func (r *placeRepository) Update(ctx context.Context, place *db_models.Place) error {
	return r.db.WithContext(ctx).Save(place).Error
}

func (r *placeRepository) Delete(ctx context.Context, place *db_models.Place) error {
	return r.db.WithContext(ctx).Delete(place).Error
}

func (r *placeRepository) BookingsOfPlace(ctx context.Context, placeID string) ([]*db_models.Booking, error) {
	var bookings []*db_models.Booking
	err := r.db.WithContext(ctx).Where("place_id = ?", placeID).Find(&bookings).Error
	return bookings, err
}

func (r *placeRepository) TripsOfPlace(ctx context.Context, placeID string) ([]*db_models.Trip, error) {
	var trips []*db_models.Trip
	err := r.db.WithContext(ctx).
		Joins("JOIN trip_places ON trip_places.trip_id = trips.id").
		Where("trip_places.place_id = ?", placeID).
		Find(&trips).Error
	return trips, err
}
