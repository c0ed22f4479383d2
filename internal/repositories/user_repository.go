package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
	"tripmate/pkg/utils"
)

// UserLookupField enumerates the columns a user can be resolved by.
// A typed enum instead of a stringly-typed selector keeps unknown fields
// unrepresentable.
type UserLookupField int

const (
	UserByID UserLookupField = iota
	UserByUsername
	UserByEmail
	UserByPhone
)

// ParseUserLookupField maps the public API selector names onto the enum.
func ParseUserLookupField(s string) (UserLookupField, bool) {
	switch s {
	case "idUser":
		return UserByID, true
	case "username":
		return UserByUsername, true
	case "email":
		return UserByEmail, true
	case "phone":
		return UserByPhone, true
	default:
		return 0, false
	}
}

func (f UserLookupField) column() string {
	switch f {
	case UserByID:
		return "id"
	case UserByUsername:
		return "username"
	case UserByEmail:
		return "email"
	default:
		return "phone_number"
	}
}

type UserRepository interface {
	List(ctx context.Context) ([]*db_models.User, error)
	FindByID(ctx context.Context, id string) (*db_models.User, error)
	FindBy(ctx context.Context, field UserLookupField, lookup string) (*db_models.User, error)
	CreateWithCredential(ctx context.Context, user *db_models.User, cred *db_models.Credential) error
	Insert(ctx context.Context, user *db_models.User) error
	Update(ctx context.Context, user *db_models.User) error
	Delete(ctx context.Context, id string) error
	NextID(ctx context.Context) (string, error)

	TripsOfUser(ctx context.Context, userID string) ([]*db_models.Trip, error)
	BookingsOfUser(ctx context.Context, userID string) ([]*db_models.Booking, error)
	FriendRequestsOf(ctx context.Context, userID string) ([]*db_models.User, error)
	FriendRequestsTo(ctx context.Context, userID string) ([]*db_models.User, error)
	ReviewedTrips(ctx context.Context, userID string) ([]*db_models.Trip, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List(ctx context.Context) ([]*db_models.User, error) {
	var users []*db_models.User
	err := r.db.WithContext(ctx).Find(&users).Error
	return users, err
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	return r.FindBy(ctx, UserByID, id)
}

func (r *userRepository) FindBy(ctx context.Context, field UserLookupField, lookup string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, field.column()+" = ?", lookup).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// NextID draws 6-char codes until one is free. The check-then-insert pair is
// racy; concurrent winners surface as a unique-key conflict at insert time.
func (r *userRepository) NextID(ctx context.Context) (string, error) {
	for {
		id := utils.GenerateCode(utils.UserCodePrefix)
		existing, err := r.FindByID(ctx, id)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return id, nil
		}
	}
}

// CreateWithCredential writes the credential row and the profile row as one
// transaction; a failure rolls back both.
func (r *userRepository) CreateWithCredential(ctx context.Context, user *db_models.User, cred *db_models.Credential) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cred).Error; err != nil {
			return err
		}
		return tx.Create(user).Error
	})
}

func (r *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// Delete removes the user and everything hanging off it in one transaction:
// owned rows (recommendations, notifications), join rows (friend edges, trip
// memberships, booking ownership, reviews), the credential row, then the
// user row itself.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user db_models.User
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&db_models.Recommendation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&db_models.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ? OR friend_id = ?", id, id).Delete(&db_models.Friend{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&db_models.TripMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&db_models.BookingOwner{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&db_models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("username = ?", user.Username).Delete(&db_models.Credential{}).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
}

func (r *userRepository) TripsOfUser(ctx context.Context, userID string) ([]*db_models.Trip, error) {
	var trips []*db_models.Trip
	err := r.db.WithContext(ctx).
		Joins("JOIN trip_members ON trip_members.trip_id = trips.id").
		Where("trip_members.user_id = ?", userID).
		Find(&trips).Error
	return trips, err
}

func (r *userRepository) BookingsOfUser(ctx context.Context, userID string) ([]*db_models.Booking, error) {
	var bookings []*db_models.Booking
	err := r.db.WithContext(ctx).
		Joins("JOIN booking_owners ON booking_owners.booking_id = bookings.id").
		Where("booking_owners.user_id = ?", userID).
		Find(&bookings).Error
	return bookings, err
}

func (r *userRepository) FriendRequestsOf(ctx context.Context, userID string) ([]*db_models.User, error) {
	var users []*db_models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN friends ON friends.friend_id = users.id").
		Where("friends.user_id = ?", userID).
		Find(&users).Error
	return users, err
}

func (r *userRepository) FriendRequestsTo(ctx context.Context, userID string) ([]*db_models.User, error) {
	var users []*db_models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN friends ON friends.user_id = users.id").
		Where("friends.friend_id = ?", userID).
		Find(&users).Error
	return users, err
}

func (r *userRepository) ReviewedTrips(ctx context.Context, userID string) ([]*db_models.Trip, error) {
	var trips []*db_models.Trip
	err := r.db.WithContext(ctx).
		Joins("JOIN reviews ON reviews.trip_id = trips.id").
		Where("reviews.user_id = ?", userID).
		Find(&trips).Error
	return trips, err
}
