package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/pkg/utils"
)

func newReviewFixture() (ReviewService, *fakeReviewRepo) {
	reviewRepo := newFakeReviewRepo()
	tripRepo := newFakeTripRepo()
	userRepo := newFakeUserRepo()
	tripRepo.trips["TR0001"] = &db_models.Trip{ID: "TR0001", Name: "Coast run"}
	userRepo.users["US0001"] = &db_models.User{ID: "US0001", Username: "alice"}
	return NewReviewService(reviewRepo, tripRepo, userRepo), reviewRepo
}

func TestReviewCreate(t *testing.T) {
	svc, _ := newReviewFixture()

	review, err := svc.Create(context.Background(), "US0001", request_models.ReviewCreateRequest{
		TripID: "TR0001", Comment: "great", Rating: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "RV", review.ID[:2])
	assert.Equal(t, "US0001", review.UserID)
}

func TestReviewCreateDuplicate(t *testing.T) {
	svc, _ := newReviewFixture()

	_, err := svc.Create(context.Background(), "US0001", request_models.ReviewCreateRequest{
		TripID: "TR0001", Rating: 4,
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "US0001", request_models.ReviewCreateRequest{
		TripID: "TR0001", Rating: 2,
	})
	assert.ErrorIs(t, err, utils.ErrAlreadyReviewed)
}

func TestReviewCreateUnknownTrip(t *testing.T) {
	svc, _ := newReviewFixture()

	_, err := svc.Create(context.Background(), "US0001", request_models.ReviewCreateRequest{
		TripID: "TR9999", Rating: 3,
	})
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestReviewDelete(t *testing.T) {
	svc, reviewRepo := newReviewFixture()
	reviewRepo.reviews["RV0001"] = &db_models.Review{ID: "RV0001", TripID: "TR0001", UserID: "US0001"}

	require.NoError(t, svc.Delete(context.Background(), "RV0001"))
	assert.Empty(t, reviewRepo.reviews)

	assert.ErrorIs(t, svc.Delete(context.Background(), "RV0001"), utils.ErrReviewNotFound)
}
