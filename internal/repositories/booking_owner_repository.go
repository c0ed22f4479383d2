package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
)

type BookingOwnerLookupField int

const (
	BookingOwnerByUser BookingOwnerLookupField = iota
	BookingOwnerByBooking
)

func ParseBookingOwnerLookupField(s string) (BookingOwnerLookupField, bool) {
	switch s {
	case "user":
		return BookingOwnerByUser, true
	case "booking":
		return BookingOwnerByBooking, true
	default:
		return 0, false
	}
}

type BookingOwnerRepository interface {
	List(ctx context.Context) ([]*db_models.BookingOwner, error)
	Find(ctx context.Context, userID, bookingID string) (*db_models.BookingOwner, error)
	FindBy(ctx context.Context, field BookingOwnerLookupField, lookup string) ([]*db_models.BookingOwner, error)
	Insert(ctx context.Context, owner *db_models.BookingOwner) error
	Delete(ctx context.Context, userID, bookingID string) error
}

type bookingOwnerRepository struct {
	db *gorm.DB
}

func NewBookingOwnerRepository(db *gorm.DB) BookingOwnerRepository {
	return &bookingOwnerRepository{db: db}
}

func (r *bookingOwnerRepository) List(ctx context.Context) ([]*db_models.BookingOwner, error) {
	var owners []*db_models.BookingOwner
	err := r.db.WithContext(ctx).Find(&owners).Error
	return owners, err
}

func (r *bookingOwnerRepository) Find(ctx context.Context, userID, bookingID string) (*db_models.BookingOwner, error) {
	var owner db_models.BookingOwner
	err := r.db.WithContext(ctx).First(&owner, "user_id = ? AND booking_id = ?", userID, bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &owner, nil
}

func (r *bookingOwnerRepository) FindBy(ctx context.Context, field BookingOwnerLookupField, lookup string) ([]*db_models.BookingOwner, error) {
	column := "user_id"
	if field == BookingOwnerByBooking {
		column = "booking_id"
	}
	var owners []*db_models.BookingOwner
	err := r.db.WithContext(ctx).Where(column+" = ?", lookup).Find(&owners).Error
	return owners, err
}

func (r *bookingOwnerRepository) Insert(ctx context.Context, owner *db_models.BookingOwner) error {
	return r.db.WithContext(ctx).Create(owner).Error
}

func (r *bookingOwnerRepository) Delete(ctx context.Context, userID, bookingID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND booking_id = ?", userID, bookingID).
		Delete(&db_models.BookingOwner{}).Error
}
