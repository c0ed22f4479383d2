package bookingfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideBookingRepo, provideBookingService,
	provideBookingOwnerRepo, provideBookingOwnerService)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(
	bookingRepo repositories.BookingRepository,
	placeRepo repositories.PlaceRepository,
) services.BookingService {
	return services.NewBookingService(bookingRepo, placeRepo)
}

func provideBookingOwnerRepo(db *gorm.DB) repositories.BookingOwnerRepository {
	return repositories.NewBookingOwnerRepository(db)
}

func provideBookingOwnerService(
	ownerRepo repositories.BookingOwnerRepository,
	userRepo repositories.UserRepository,
	bookingRepo repositories.BookingRepository,
) services.BookingOwnerService {
	return services.NewBookingOwnerService(ownerRepo, userRepo, bookingRepo)
}
