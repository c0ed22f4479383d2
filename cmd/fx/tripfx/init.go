package tripfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideTripRepo, provideTripService,
	provideTripMemberRepo, provideTripMemberService,
	provideTripPlaceRepo, provideTripPlaceService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository) services.TripService {
	return services.NewTripService(tripRepo)
}

func provideTripMemberRepo(db *gorm.DB) repositories.TripMemberRepository {
	return repositories.NewTripMemberRepository(db)
}

func provideTripMemberService(
	memberRepo repositories.TripMemberRepository,
	userRepo repositories.UserRepository,
	tripRepo repositories.TripRepository,
) services.TripMemberService {
	return services.NewTripMemberService(memberRepo, userRepo, tripRepo)
}

func provideTripPlaceRepo(db *gorm.DB) repositories.TripPlaceRepository {
	return repositories.NewTripPlaceRepository(db)
}

func provideTripPlaceService(
	tripPlaceRepo repositories.TripPlaceRepository,
	placeRepo repositories.PlaceRepository,
	tripRepo repositories.TripRepository,
) services.TripPlaceService {
	return services.NewTripPlaceService(tripPlaceRepo, placeRepo, tripRepo)
}
