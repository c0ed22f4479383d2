package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
	"tripmate/pkg/utils"
)

type TripDateField int

const (
	TripByStartDate TripDateField = iota
	TripByEndDate
)

func ParseTripDateField(s string) (TripDateField, bool) {
	switch s {
	case "startDate":
		return TripByStartDate, true
	case "endDate":
		return TripByEndDate, true
	default:
		return 0, false
	}
}

// TripFilter narrows the trip listing. Zero values mean "no constraint".
type TripFilter struct {
	From    *time.Time
	To      *time.Time
	Keyword string
}

type TripRepository interface {
	List(ctx context.Context, filter TripFilter) ([]*db_models.Trip, error)
	FindByID(ctx context.Context, id string) (*db_models.Trip, error)
	FindByDate(ctx context.Context, field TripDateField, at time.Time) ([]*db_models.Trip, error)
	Insert(ctx context.Context, trip *db_models.Trip) error
	Update(ctx context.Context, trip *db_models.Trip) error
	Delete(ctx context.Context, trip *db_models.Trip) error
	NextID(ctx context.Context) (string, error)

	Members(ctx context.Context, tripID string) ([]*db_models.User, error)
	Reviewers(ctx context.Context, tripID string) ([]*db_models.User, error)
	Places(ctx context.Context, tripID string) ([]*db_models.Place, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) List(ctx context.Context, filter TripFilter) ([]*db_models.Trip, error) {
	var trips []*db_models.Trip
	q := r.db.WithContext(ctx)
	if filter.From != nil {
		q = q.Where("start_date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("start_date <= ?", *filter.To)
	}
	if filter.Keyword != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Keyword+"%")
	}
	err := q.Find(&trips).Error
	return trips, err
}

func (r *tripRepository) FindByID(ctx context.Context, id string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).First(&trip, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) FindByDate(ctx context.Context, field TripDateField, at time.Time) ([]*db_models.Trip, error) {
	column := "start_date"
	if field == TripByEndDate {
		column = "end_date"
	}
	var trips []*db_models.Trip
	err := r.db.WithContext(ctx).Where(column+" = ?", at).Find(&trips).Error
	return trips, err
}

func (r *tripRepository) NextID(ctx context.Context) (string, error) {
	for {
		id := utils.GenerateCode(utils.TripCodePrefix)
		existing, err := r.FindByID(ctx, id)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return id, nil
		}
	}
}

func (r *tripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) Update(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *tripRepository) Delete(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Delete(trip).Error
}

func (r *tripRepository) Members(ctx context.Context, tripID string) ([]*db_models.User, error) {
	var users []*db_models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN trip_members ON trip_members.user_id = users.id").
		Where("trip_members.trip_id = ?", tripID).
		Find(&users).Error
	return users, err
}

func (r *tripRepository) Reviewers(ctx context.Context, tripID string) ([]*db_models.User, error) {
	var users []*db_models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN reviews ON reviews.user_id = users.id").
		Where("reviews.trip_id = ?", tripID).
		Find(&users).Error
	return users, err
}

func (r *tripRepository) Places(ctx context.Context, tripID string) ([]*db_models.Place, error) {
	var places []*db_models.Place
	err := r.db.WithContext(ctx).
		Joins("JOIN trip_places ON trip_places.place_id = places.id").
		Where("trip_places.trip_id = ?", tripID).
		Find(&places).Error
	return places, err
}
