package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
)

type TripMemberLookupField int

const (
	TripMemberByUser TripMemberLookupField = iota
	TripMemberByTrip
)

func ParseTripMemberLookupField(s string) (TripMemberLookupField, bool) {
	switch s {
	case "user":
		return TripMemberByUser, true
	case "trip":
		return TripMemberByTrip, true
	default:
		return 0, false
	}
}

type TripMemberRepository interface {
	List(ctx context.Context) ([]*db_models.TripMember, error)
	Find(ctx context.Context, userID, tripID string) (*db_models.TripMember, error)
	FindBy(ctx context.Context, field TripMemberLookupField, lookup string) ([]*db_models.TripMember, error)
	Insert(ctx context.Context, member *db_models.TripMember) error
	Delete(ctx context.Context, userID, tripID string) error
}

type tripMemberRepository struct {
	db *gorm.DB
}

func NewTripMemberRepository(db *gorm.DB) TripMemberRepository {
	return &tripMemberRepository{db: db}
}

func (r *tripMemberRepository) List(ctx context.Context) ([]*db_models.TripMember, error) {
	var members []*db_models.TripMember
	err := r.db.WithContext(ctx).Find(&members).Error
	return members, err
}

func (r *tripMemberRepository) Find(ctx context.Context, userID, tripID string) (*db_models.TripMember, error) {
	var member db_models.TripMember
	err := r.db.WithContext(ctx).First(&member, "user_id = ? AND trip_id = ?", userID, tripID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *tripMemberRepository) FindBy(ctx context.Context, field TripMemberLookupField, lookup string) ([]*db_models.TripMember, error) {
	column := "user_id"
	if field == TripMemberByTrip {
		column = "trip_id"
	}
	var members []*db_models.TripMember
	err := r.db.WithContext(ctx).Where(column+" = ?", lookup).Find(&members).Error
	return members, err
}

func (r *tripMemberRepository) Insert(ctx context.Context, member *db_models.TripMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *tripMemberRepository) Delete(ctx context.Context, userID, tripID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND trip_id = ?", userID, tripID).
		Delete(&db_models.TripMember{}).Error
}
