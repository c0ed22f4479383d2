package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/pkg/utils"
)

func newBookingFixture() (BookingService, *fakeBookingRepo, *fakePlaceRepo) {
	bookingRepo := newFakeBookingRepo()
	placeRepo := newFakePlaceRepo()
	placeRepo.places["PL0001"] = &db_models.Place{ID: "PL0001", Name: "Hotel"}
	return NewBookingService(bookingRepo, placeRepo), bookingRepo, placeRepo
}

func TestBookingCreateWritesOwner(t *testing.T) {
	svc, bookingRepo, _ := newBookingFixture()

	booking, err := svc.Create(context.Background(), "US0001", request_models.BookingCreateRequest{
		PlaceID: "PL0001",
		Date:    time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC),
		Status:  "confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, "BK", booking.ID[:2])

	// Booking and owner row land together.
	require.Len(t, bookingRepo.owners, 1)
	assert.Equal(t, "US0001", bookingRepo.owners[0].UserID)
	assert.Equal(t, booking.ID, bookingRepo.owners[0].BookingID)
}

func TestBookingCreateUnknownPlace(t *testing.T) {
	svc, bookingRepo, _ := newBookingFixture()

	_, err := svc.Create(context.Background(), "US0001", request_models.BookingCreateRequest{
		PlaceID: "PL9999",
		Date:    time.Now(),
	})
	assert.ErrorIs(t, err, utils.ErrPlaceNotFound)
	assert.Empty(t, bookingRepo.owners)
	assert.Empty(t, bookingRepo.bookings)
}

func TestBookingListByUser(t *testing.T) {
	svc, bookingRepo, _ := newBookingFixture()

	bookingRepo.bookings["BK0001"] = &db_models.Booking{ID: "BK0001", PlaceID: "PL0001"}
	bookingRepo.bookings["BK0002"] = &db_models.Booking{ID: "BK0002", PlaceID: "PL0001"}
	bookingRepo.owners = []*db_models.BookingOwner{
		{UserID: "US0001", BookingID: "BK0001"},
		{UserID: "US0002", BookingID: "BK0002"},
	}

	mine, err := svc.ListByUser(context.Background(), "US0001")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "BK0001", mine[0].ID)
}

func TestBookingUpdateRechecksPlace(t *testing.T) {
	svc, bookingRepo, _ := newBookingFixture()
	bookingRepo.bookings["BK0001"] = &db_models.Booking{ID: "BK0001", PlaceID: "PL0001"}

	_, err := svc.Update(context.Background(), "BK0001", request_models.BookingUpdateRequest{
		PlaceID: "PL9999",
	})
	assert.ErrorIs(t, err, utils.ErrPlaceNotFound)

	status := "cancelled"
	booking, err := svc.Update(context.Background(), "BK0001", request_models.BookingUpdateRequest{
		PlaceID: "PL0001",
		Status:  &status,
	})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", booking.Status)
}

func TestBookingGetMissing(t *testing.T) {
	svc, _, _ := newBookingFixture()

	_, err := svc.GetByID(context.Background(), "BK9999")
	assert.ErrorIs(t, err, utils.ErrBookingNotFound)
}
