package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
	"tripmate/pkg/utils"
)

type BookingLookupField int

const (
	BookingByPlace BookingLookupField = iota
	BookingByDate
	BookingByStatus
)

func ParseBookingLookupField(s string) (BookingLookupField, bool) {
	switch s {
	case "place":
		return BookingByPlace, true
	case "date":
		return BookingByDate, true
	case "status":
		return BookingByStatus, true
	default:
		return 0, false
	}
}

type BookingRepository interface {
	List(ctx context.Context) ([]*db_models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*db_models.Booking, error)
	FindByID(ctx context.Context, id string) (*db_models.Booking, error)
	FindBy(ctx context.Context, field BookingLookupField, lookup string) ([]*db_models.Booking, error)
	CreateWithOwner(ctx context.Context, booking *db_models.Booking, owner *db_models.BookingOwner) error
	Update(ctx context.Context, booking *db_models.Booking) error
	Delete(ctx context.Context, booking *db_models.Booking) error
	NextID(ctx context.Context) (string, error)

	Owners(ctx context.Context, bookingID string) ([]*db_models.User, error)
	PlaceOf(ctx context.Context, bookingID string) (*db_models.Place, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) List(ctx context.Context) ([]*db_models.Booking, error) {
	var bookings []*db_models.Booking
	err := r.db.WithContext(ctx).Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID string) ([]*db_models.Booking, error) {
	var bookings []*db_models.Booking
	err := r.db.WithContext(ctx).
		Joins("JOIN booking_owners ON booking_owners.booking_id = bookings.id").
		Where("booking_owners.user_id = ?", userID).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindBy(ctx context.Context, field BookingLookupField, lookup string) ([]*db_models.Booking, error) {
	var bookings []*db_models.Booking
	q := r.db.WithContext(ctx)

	switch field {
	case BookingByPlace:
		q = q.Where("place_id = ?", lookup)
	case BookingByDate:
		at, err := utils.ParseDateTime(lookup)
		if err != nil {
			return nil, err
		}
		q = q.Where("date = ?", at)
	case BookingByStatus:
		q = q.Where("status = ?", lookup)
	}

	err := q.Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) NextID(ctx context.Context) (string, error) {
	for {
		id := utils.GenerateCode(utils.BookingCodePrefix)
		existing, err := r.FindByID(ctx, id)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return id, nil
		}
	}
}

// CreateWithOwner writes the booking and the caller's owner row together; a
// failure rolls back both.
func (r *bookingRepository) CreateWithOwner(ctx context.Context, booking *db_models.Booking, owner *db_models.BookingOwner) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(booking).Error; err != nil {
			return err
		}
		return tx.Create(owner).Error
	})
}

func (r *bookingRepository) Update(ctx context.Context, booking *db_models.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *bookingRepository) Delete(ctx context.Context, booking *db_models.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", booking.ID).Delete(&db_models.BookingOwner{}).Error; err != nil {
			return err
		}
		return tx.Delete(booking).Error
	})
}

func (r *bookingRepository) Owners(ctx context.Context, bookingID string) ([]*db_models.User, error) {
	var users []*db_models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN booking_owners ON booking_owners.user_id = users.id").
		Where("booking_owners.booking_id = ?", bookingID).
		Find(&users).Error
	return users, err
}

func (r *bookingRepository) PlaceOf(ctx context.Context, bookingID string) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).
		Joins("JOIN bookings ON bookings.place_id = places.id").
		Where("bookings.id = ?", bookingID).
		First(&place).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}
