package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type UserController struct {
	userService services.UserService
}

func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// List godoc
// @Summary List all users
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /users/ [get]
func (u *UserController) List(c *gin.Context) {
	users, err := u.userService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, users, "")
}

// GetBy godoc
// @Summary Look up a user by a field
// @Description Resolve a user by id, username, email or phone
// @Tags Users
// @Produce json
// @Param field path string true "Lookup field" Enums(idUser, username, email, phone)
// @Param lookup query string true "Lookup value"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /users/{field} [get]
func (u *UserController) GetBy(c *gin.Context) {
	field, ok := repositories.ParseUserLookupField(c.Param("key"))
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Unknown lookup field")
		return
	}
	lookup := c.Query("lookup")
	if lookup == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing lookup value")
		return
	}

	user, err := u.userService.GetBy(c.Request.Context(), field, lookup)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, user, "")
}

// Create godoc
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.CreateUserRequest true "User payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /users/ [post]
func (u *UserController) Create(c *gin.Context) {
	var req request_models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := u.userService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, user, "User created successfully")
}

// Update godoc
// @Summary Update a user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param request body request_models.UpdateUserRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id} [put]
func (u *UserController) Update(c *gin.Context) {
	var req request_models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := u.userService.Update(c.Request.Context(), c.Param("key"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, user, "User updated successfully")
}

// Delete godoc
// @Summary Delete a user and everything referencing it
// @Tags Users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id} [delete]
func (u *UserController) Delete(c *gin.Context) {
	if err := u.userService.Delete(c.Request.Context(), c.Param("key")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "User deleted successfully")
}

// Trips godoc
// @Summary List the trips a user belongs to
// @Tags Users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} utils.APIResponse
// @Router /users/{id}/trips [get]
func (u *UserController) Trips(c *gin.Context) {
	trips, err := u.userService.Trips(c.Request.Context(), c.Param("key"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trips, "")
}

// Bookings godoc
// @Summary List the bookings a user owns
// @Tags Users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} utils.APIResponse
// @Router /users/{id}/bookings [get]
func (u *UserController) Bookings(c *gin.Context) {
	bookings, err := u.userService.Bookings(c.Request.Context(), c.Param("key"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, bookings, "")
}

// FriendRequestsOf godoc
// @Summary List the users this user has sent friend requests to
// @Tags Users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} utils.APIResponse
// @Router /users/{id}/friend_requests_of [get]
func (u *UserController) FriendRequestsOf(c *gin.Context) {
	users, err := u.userService.FriendRequestsOf(c.Request.Context(), c.Param("key"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, users, "")
}

// FriendRequestsTo godoc
// @Summary List the users who sent friend requests to this user
// @Tags Users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} utils.APIResponse
// @Router /users/{id}/friend_requests_to [get]
func (u *UserController) FriendRequestsTo(c *gin.Context) {
	users, err := u.userService.FriendRequestsTo(c.Request.Context(), c.Param("key"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, users, "")
}

// ReviewedTrips godoc
// @Summary List the trips a user has reviewed
// @Tags Users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} utils.APIResponse
// @Router /users/{id}/reviewed_trips [get]
func (u *UserController) ReviewedTrips(c *gin.Context) {
	trips, err := u.userService.ReviewedTrips(c.Request.Context(), c.Param("key"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trips, "")
}
