package services

import (
	"context"
	"errors"
	"time"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

// In-memory fakes shared by the service tests.

type fakeUserRepo struct {
	users map[string]*db_models.User
	creds map[string]*db_models.Credential
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: make(map[string]*db_models.User),
		creds: make(map[string]*db_models.Credential),
	}
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*db_models.User, error) {
	var out []*db_models.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindBy(ctx context.Context, field repositories.UserLookupField, lookup string) (*db_models.User, error) {
	for _, u := range f.users {
		switch field {
		case repositories.UserByID:
			if u.ID == lookup {
				return u, nil
			}
		case repositories.UserByUsername:
			if u.Username == lookup {
				return u, nil
			}
		case repositories.UserByEmail:
			if u.Email != nil && *u.Email == lookup {
				return u, nil
			}
		case repositories.UserByPhone:
			if u.PhoneNumber != nil && *u.PhoneNumber == lookup {
				return u, nil
			}
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) CreateWithCredential(ctx context.Context, user *db_models.User, cred *db_models.Credential) error {
	f.users[user.ID] = user
	f.creds[cred.Username] = cred
	return nil
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *db_models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) NextID(ctx context.Context) (string, error) {
	for {
		id := utils.GenerateCode(utils.UserCodePrefix)
		if _, ok := f.users[id]; !ok {
			return id, nil
		}
	}
}

func (f *fakeUserRepo) TripsOfUser(ctx context.Context, userID string) ([]*db_models.Trip, error) {
	return nil, nil
}

func (f *fakeUserRepo) BookingsOfUser(ctx context.Context, userID string) ([]*db_models.Booking, error) {
	return nil, nil
}

func (f *fakeUserRepo) FriendRequestsOf(ctx context.Context, userID string) ([]*db_models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) FriendRequestsTo(ctx context.Context, userID string) ([]*db_models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) ReviewedTrips(ctx context.Context, userID string) ([]*db_models.Trip, error) {
	return nil, nil
}

type fakeCredRepo struct {
	creds map[string]*db_models.Credential
}

func newFakeCredRepo() *fakeCredRepo {
	return &fakeCredRepo{creds: make(map[string]*db_models.Credential)}
}

func (f *fakeCredRepo) FindByUsername(ctx context.Context, username string) (*db_models.Credential, error) {
	return f.creds[username], nil
}

type fakeVerifier struct {
	profile *utils.SocialProfile
	err     error
	calls   int
}

func (f *fakeVerifier) Verify(ctx context.Context, provider, token string) (*utils.SocialProfile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

type fakeFriendRepo struct {
	edges []*db_models.Friend
}

func (f *fakeFriendRepo) List(ctx context.Context) ([]*db_models.Friend, error) {
	return f.edges, nil
}

func (f *fakeFriendRepo) AcceptedOf(ctx context.Context, userID string) ([]*db_models.Friend, error) {
	var out []*db_models.Friend
	for _, e := range f.edges {
		if e.Accepted && (e.UserID == userID || e.FriendID == userID) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeFriendRepo) Find(ctx context.Context, userID, friendID string) (*db_models.Friend, error) {
	for _, e := range f.edges {
		if (e.UserID == userID && e.FriendID == friendID) ||
			(e.UserID == friendID && e.FriendID == userID) {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeFriendRepo) Insert(ctx context.Context, friend *db_models.Friend) error {
	f.edges = append(f.edges, friend)
	return nil
}

func (f *fakeFriendRepo) Update(ctx context.Context, friend *db_models.Friend) error {
	for _, e := range f.edges {
		if e.UserID == friend.UserID && e.FriendID == friend.FriendID {
			e.Accepted = friend.Accepted
			return nil
		}
	}
	return errors.New("edge not found")
}

func (f *fakeFriendRepo) Delete(ctx context.Context, userID, friendID string) error {
	for i, e := range f.edges {
		if (e.UserID == userID && e.FriendID == friendID) ||
			(e.UserID == friendID && e.FriendID == userID) {
			f.edges = append(f.edges[:i], f.edges[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakePlaceRepo struct {
	places map[string]*db_models.Place
}

func newFakePlaceRepo() *fakePlaceRepo {
	return &fakePlaceRepo{places: make(map[string]*db_models.Place)}
}

func (f *fakePlaceRepo) List(ctx context.Context) ([]*db_models.Place, error) {
	var out []*db_models.Place
	for _, p := range f.places {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePlaceRepo) FindByID(ctx context.Context, id string) (*db_models.Place, error) {
	return f.places[id], nil
}

func (f *fakePlaceRepo) FindBy(ctx context.Context, field repositories.PlaceLookupField, lookup string) ([]*db_models.Place, error) {
	return nil, nil
}

func (f *fakePlaceRepo) Search(ctx context.Context, query string) ([]*db_models.Place, error) {
	return nil, nil
}

func (f *fakePlaceRepo) Insert(ctx context.Context, place *db_models.Place) error {
	f.places[place.ID] = place
	return nil
}

func (f *fakePlaceRepo) Update(ctx context.Context, place *db_models.Place) error {
	f.places[place.ID] = place
	return nil
}

func (f *fakePlaceRepo) Delete(ctx context.Context, place *db_models.Place) error {
	delete(f.places, place.ID)
	return nil
}

func (f *fakePlaceRepo) NextID(ctx context.Context) (string, error) {
	return utils.GenerateCode(utils.PlaceCodePrefix), nil
}

func (f *fakePlaceRepo) BookingsOfPlace(ctx context.Context, placeID string) ([]*db_models.Booking, error) {
	return nil, nil
}

func (f *fakePlaceRepo) TripsOfPlace(ctx context.Context, placeID string) ([]*db_models.Trip, error) {
	return nil, nil
}

type fakeBookingRepo struct {
	bookings map[string]*db_models.Booking
	owners   []*db_models.BookingOwner
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*db_models.Booking)}
}

func (f *fakeBookingRepo) List(ctx context.Context) ([]*db_models.Booking, error) {
	var out []*db_models.Booking
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByUser(ctx context.Context, userID string) ([]*db_models.Booking, error) {
	var out []*db_models.Booking
	for _, o := range f.owners {
		if o.UserID == userID {
			if b, ok := f.bookings[o.BookingID]; ok {
				out = append(out, b)
			}
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id string) (*db_models.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindBy(ctx context.Context, field repositories.BookingLookupField, lookup string) ([]*db_models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) CreateWithOwner(ctx context.Context, booking *db_models.Booking, owner *db_models.BookingOwner) error {
	f.bookings[booking.ID] = booking
	f.owners = append(f.owners, owner)
	return nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, booking *db_models.Booking) error {
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, booking *db_models.Booking) error {
	delete(f.bookings, booking.ID)
	return nil
}

func (f *fakeBookingRepo) NextID(ctx context.Context) (string, error) {
	return utils.GenerateCode(utils.BookingCodePrefix), nil
}

func (f *fakeBookingRepo) Owners(ctx context.Context, bookingID string) ([]*db_models.User, error) {
	return nil, nil
}

func (f *fakeBookingRepo) PlaceOf(ctx context.Context, bookingID string) (*db_models.Place, error) {
	return nil, nil
}

type fakeTripRepo struct {
	trips map[string]*db_models.Trip
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: make(map[string]*db_models.Trip)}
}

func (f *fakeTripRepo) List(ctx context.Context, filter repositories.TripFilter) ([]*db_models.Trip, error) {
	var out []*db_models.Trip
	for _, t := range f.trips {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTripRepo) FindByID(ctx context.Context, id string) (*db_models.Trip, error) {
	return f.trips[id], nil
}

func (f *fakeTripRepo) FindByDate(ctx context.Context, field repositories.TripDateField, at time.Time) ([]*db_models.Trip, error) {
	return nil, nil
}

func (f *fakeTripRepo) Insert(ctx context.Context, trip *db_models.Trip) error {
	f.trips[trip.ID] = trip
	return nil
}

func (f *fakeTripRepo) Update(ctx context.Context, trip *db_models.Trip) error {
	f.trips[trip.ID] = trip
	return nil
}

func (f *fakeTripRepo) Delete(ctx context.Context, trip *db_models.Trip) error {
	delete(f.trips, trip.ID)
	return nil
}

func (f *fakeTripRepo) NextID(ctx context.Context) (string, error) {
	return utils.GenerateCode(utils.TripCodePrefix), nil
}

func (f *fakeTripRepo) Members(ctx context.Context, tripID string) ([]*db_models.User, error) {
	return nil, nil
}

func (f *fakeTripRepo) Reviewers(ctx context.Context, tripID string) ([]*db_models.User, error) {
	return nil, nil
}

func (f *fakeTripRepo) Places(ctx context.Context, tripID string) ([]*db_models.Place, error) {
	return nil, nil
}

type fakeReviewRepo struct {
	reviews map[string]*db_models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*db_models.Review)}
}

func (f *fakeReviewRepo) List(ctx context.Context) ([]*db_models.Review, error) {
	var out []*db_models.Review
	for _, r := range f.reviews {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReviewRepo) FindByID(ctx context.Context, id string) (*db_models.Review, error) {
	return f.reviews[id], nil
}

func (f *fakeReviewRepo) FindBy(ctx context.Context, field repositories.ReviewLookupField, lookup string) ([]*db_models.Review, error) {
	return nil, nil
}

func (f *fakeReviewRepo) FindByTripAndUser(ctx context.Context, tripID, userID string) (*db_models.Review, error) {
	for _, r := range f.reviews {
		if r.TripID == tripID && r.UserID == userID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) Top(ctx context.Context, limit int) ([]*db_models.Review, error) {
	return f.List(ctx)
}

func (f *fakeReviewRepo) Insert(ctx context.Context, review *db_models.Review) error {
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, review *db_models.Review) error {
	delete(f.reviews, review.ID)
	return nil
}

func (f *fakeReviewRepo) NextID(ctx context.Context) (string, error) {
	return utils.GenerateCode(utils.ReviewCodePrefix), nil
}

type fakeRecRepo struct {
	recs map[string]*db_models.Recommendation
}

func newFakeRecRepo() *fakeRecRepo {
	return &fakeRecRepo{recs: make(map[string]*db_models.Recommendation)}
}

func (f *fakeRecRepo) List(ctx context.Context, skip, limit int) ([]*db_models.Recommendation, error) {
	var out []*db_models.Recommendation
	for _, r := range f.recs {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRecRepo) FindByID(ctx context.Context, id string) (*db_models.Recommendation, error) {
	return f.recs[id], nil
}

func (f *fakeRecRepo) ByUser(ctx context.Context, userID string) ([]*db_models.Recommendation, error) {
	var out []*db_models.Recommendation
	for _, r := range f.recs {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecRepo) Insert(ctx context.Context, rec *db_models.Recommendation) error {
	f.recs[rec.ID] = rec
	return nil
}

func (f *fakeRecRepo) Delete(ctx context.Context, rec *db_models.Recommendation) error {
	delete(f.recs, rec.ID)
	return nil
}

func (f *fakeRecRepo) NextID(ctx context.Context) (string, error) {
	return utils.GenerateCode(utils.RecommendationCodePrefix), nil
}

type fakeGenerator struct {
	output string
	err    error
	calls  int
}

func (f *fakeGenerator) GenerateTravelRecommendation(ctx context.Context, req request_models.TripGenerateRequest) (string, error) {
	f.calls++
	return f.output, f.err
}

func (f *fakeGenerator) Name() string { return "fake" }
