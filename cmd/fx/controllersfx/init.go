package controllersfx

import (
	"go.uber.org/fx"

	"tripmate/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAuthController,
	controllers.NewUserController,
	controllers.NewPlaceController,
	controllers.NewTripController,
	controllers.NewTripMemberController,
	controllers.NewTripPlaceController,
	controllers.NewBookingController,
	controllers.NewBookingOwnerController,
	controllers.NewFriendController,
	controllers.NewNotificationController,
	controllers.NewReviewController,
	controllers.NewRecommendationController)
