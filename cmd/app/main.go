package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"tripmate/cmd/fx/authfx"
	"tripmate/cmd/fx/bookingfx"
	"tripmate/cmd/fx/controllersfx"
	"tripmate/cmd/fx/corefx"
	"tripmate/cmd/fx/friendfx"
	"tripmate/cmd/fx/notificationfx"
	"tripmate/cmd/fx/placefx"
	"tripmate/cmd/fx/recommendationfx"
	"tripmate/cmd/fx/reviewfx"
	"tripmate/cmd/fx/tripfx"
	"tripmate/cmd/fx/userfx"
	"tripmate/internal/api/controllers"
	"tripmate/internal/repositories"
	"tripmate/pkg/config"
	"tripmate/pkg/logger"
	"tripmate/pkg/middleware"
	"tripmate/pkg/utils"
)

func main() {
	app := fx.New(
		corefx.Module,
		authfx.Module,
		userfx.Module,
		placefx.Module,
		tripfx.Module,
		bookingfx.Module,
		friendfx.Module,
		notificationfx.Module,
		reviewfx.Module,
		recommendationfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Log.Infow("starting HTTP server", "port", cfg.Port)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Log.Fatalw("server failed", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Log.Infow("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type routerDeps struct {
	fx.In

	Config   *config.Config
	Tokens   *utils.TokenMaker
	UserRepo repositories.UserRepository

	Auth           *controllers.AuthController
	User           *controllers.UserController
	Place          *controllers.PlaceController
	Trip           *controllers.TripController
	TripMember     *controllers.TripMemberController
	TripPlace      *controllers.TripPlaceController
	Booking        *controllers.BookingController
	BookingOwner   *controllers.BookingOwnerController
	Friend         *controllers.FriendController
	Notification   *controllers.NotificationController
	Review         *controllers.ReviewController
	Recommendation *controllers.RecommendationController
}

func ProvideRouter(deps routerDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, deps)
	return r
}

func RegisterRoutes(r *gin.Engine, deps routerDeps) {
	v1 := r.Group("/api/v1")

	// Public surface.
	v1.POST("/login", deps.Auth.Login)
	v1.POST("/register", deps.Auth.Register)
	v1.POST("/social-login", deps.Auth.SocialLogin)
	v1.GET("/ai_recs/health", deps.Recommendation.Health)

	// Everything else requires a valid bearer token.
	authed := v1.Group("")
	authed.Use(middleware.JWTAuthMiddleware(deps.Tokens, deps.UserRepo))

	// The users wildcard doubles as lookup-field selector (GET /users/email)
	// and user id (GET /users/US1234/trips); gin requires one name per
	// position, hence :key.
	users := authed.Group("/users")
	users.GET("/", deps.User.List)
	users.POST("/", deps.User.Create)
	users.GET("/:key", deps.User.GetBy)
	users.PUT("/:key", deps.User.Update)
	users.DELETE("/:key", deps.User.Delete)
	users.GET("/:key/trips", deps.User.Trips)
	users.GET("/:key/bookings", deps.User.Bookings)
	users.GET("/:key/friend_requests_of", deps.User.FriendRequestsOf)
	users.GET("/:key/friend_requests_to", deps.User.FriendRequestsTo)
	users.GET("/:key/reviewed_trips", deps.User.ReviewedTrips)

	places := authed.Group("/places")
	places.GET("/all", deps.Place.List)
	places.GET("", deps.Place.Get)
	places.POST("", deps.Place.Create)
	places.GET("/lookup/:field", deps.Place.GetBy)
	places.PUT("/:id", deps.Place.Update)
	places.DELETE("/:id", deps.Place.Delete)
	places.GET("/:id/bookings/", deps.Place.Bookings)
	places.GET("/:id/trips/", deps.Place.Trips)
	authed.GET("/search/", deps.Place.Search)

	trips := authed.Group("/trips")
	trips.GET("/", deps.Trip.List)
	trips.POST("/", deps.Trip.Create)
	trips.GET("/date/:field", deps.Trip.GetByDate)
	trips.GET("/:id", deps.Trip.Get)
	trips.PUT("/:id", deps.Trip.Update)
	trips.DELETE("/:id", deps.Trip.Delete)
	trips.GET("/:id/members/", deps.Trip.Members)
	trips.GET("/:id/reviewed/", deps.Trip.Reviewers)
	trips.GET("/:id/places/", deps.Trip.Places)

	tripMembers := authed.Group("/trip_members")
	tripMembers.GET("/", deps.TripMember.List)
	tripMembers.POST("/", deps.TripMember.Create)
	tripMembers.DELETE("/", deps.TripMember.Delete)
	tripMembers.GET("/one", deps.TripMember.Get)
	tripMembers.GET("/:field", deps.TripMember.GetBy)

	tripPlaces := authed.Group("/trip_places")
	tripPlaces.GET("/", deps.TripPlace.List)
	tripPlaces.POST("/", deps.TripPlace.Create)
	tripPlaces.GET("/lookup/:field", deps.TripPlace.GetBy)
	tripPlaces.GET("/:id", deps.TripPlace.Get)
	tripPlaces.PUT("/:id", deps.TripPlace.Update)
	tripPlaces.DELETE("/:id", deps.TripPlace.Delete)

	bookings := authed.Group("/bookings")
	bookings.GET("/", deps.Booking.List)
	bookings.GET("", deps.Booking.Get)
	bookings.POST("/", deps.Booking.Create)
	bookings.GET("/lookup/:field", deps.Booking.GetBy)
	bookings.PUT("/:id", deps.Booking.Update)
	bookings.DELETE("/:id", deps.Booking.Delete)
	bookings.GET("/:id/users/", deps.Booking.Owners)
	bookings.GET("/:id/places/", deps.Booking.Place)

	bookingOwners := authed.Group("/booking_owners")
	bookingOwners.GET("/", deps.BookingOwner.List)
	bookingOwners.POST("/", deps.BookingOwner.Create)
	bookingOwners.DELETE("/", deps.BookingOwner.Delete)
	bookingOwners.GET("/one", deps.BookingOwner.Get)
	bookingOwners.GET("/:field", deps.BookingOwner.GetBy)

	friends := authed.Group("/friends")
	friends.GET("/", deps.Friend.List)
	friends.POST("/", deps.Friend.Create)
	friends.PUT("/", deps.Friend.Update)
	friends.DELETE("/", deps.Friend.Delete)
	friends.GET("/:userID", deps.Friend.AcceptedOf)

	notifications := authed.Group("/notifications")
	notifications.GET("/", deps.Notification.List)
	notifications.POST("/", deps.Notification.Create)
	notifications.GET("/user/:userID", deps.Notification.ByUser)
	notifications.GET("/user/:userID/unread", deps.Notification.UnreadByUser)
	notifications.PUT("/user/:userID/read_all", deps.Notification.MarkAllRead)
	notifications.DELETE("/user/:userID", deps.Notification.DeleteAllByUser)
	notifications.GET("/:id", deps.Notification.Get)
	notifications.PUT("/:id", deps.Notification.Update)
	notifications.DELETE("/:id", deps.Notification.Delete)

	reviews := authed.Group("/reviews")
	reviews.GET("/", deps.Review.List)
	reviews.POST("/", deps.Review.Create)
	reviews.GET("/top", deps.Review.Top)
	reviews.GET("/lookup/:field", deps.Review.GetBy)
	reviews.GET("/:id", deps.Review.Get)
	reviews.DELETE("/:id", deps.Review.Delete)

	aiRecs := authed.Group("/ai_recs")
	aiRecs.POST("/generate-trip", deps.Recommendation.GenerateTrip)
	aiRecs.GET("/", deps.Recommendation.List)
	aiRecs.POST("/", deps.Recommendation.Create)
	aiRecs.GET("/mine", deps.Recommendation.Mine)
	aiRecs.GET("/:id", deps.Recommendation.Get)
	aiRecs.DELETE("/:id", deps.Recommendation.Delete)
}
