package utils

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidDateFormat = errors.New("invalid date format")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidSocialToken = errors.New("invalid social token")

	ErrUserAlreadyExists = errors.New("user already exists")
	ErrFriendshipExists  = errors.New("friendship already exists")
	ErrSelfFriendship    = errors.New("cannot add yourself as a friend")
	ErrAlreadyReviewed   = errors.New("trip already reviewed by this user")
	ErrAlreadyExists     = errors.New("record already exists")

	ErrUserNotFound           = errors.New("user not found")
	ErrPlaceNotFound          = errors.New("place not found")
	ErrTripNotFound           = errors.New("trip not found")
	ErrTripMemberNotFound     = errors.New("trip member not found")
	ErrTripPlaceNotFound      = errors.New("itinerary entry not found")
	ErrBookingNotFound        = errors.New("booking not found")
	ErrBookingOwnerNotFound   = errors.New("booking owner not found")
	ErrFriendshipNotFound     = errors.New("friendship not found")
	ErrNotificationNotFound   = errors.New("notification not found")
	ErrReviewNotFound         = errors.New("review not found")
	ErrRecommendationNotFound = errors.New("recommendation not found")

	ErrDatabaseError = errors.New("database error")
)
