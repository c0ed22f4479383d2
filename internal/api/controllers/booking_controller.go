package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
	"tripmate/pkg/middleware"
	"tripmate/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingService
}

func NewBookingController(bookingService services.BookingService) *BookingController {
	return &BookingController{bookingService: bookingService}
}

// List godoc
// @Summary List the current user's bookings
// @Tags Bookings
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /bookings/ [get]
func (b *BookingController) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	bookings, err := b.bookingService.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, bookings, "")
}

// Get godoc
// @Summary Get a booking by id
// @Tags Bookings
// @Produce json
// @Param idBooking query string true "Booking id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /bookings [get]
func (b *BookingController) Get(c *gin.Context) {
	id := c.Query("idBooking")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing idBooking")
		return
	}
	booking, err := b.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "")
}

// GetBy godoc
// @Summary Look up bookings by a field
// @Tags Bookings
// @Produce json
// @Param field path string true "Lookup field" Enums(place, date, status)
// @Param lookup query string true "Lookup value"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /bookings/lookup/{field} [get]
func (b *BookingController) GetBy(c *gin.Context) {
	field, ok := repositories.ParseBookingLookupField(c.Param("field"))
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Unknown lookup field")
		return
	}
	bookings, err := b.bookingService.GetBy(c.Request.Context(), field, c.Query("lookup"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, bookings, "")
}

// Create godoc
// @Summary Create a booking owned by the current user
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.BookingCreateRequest true "Booking payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /bookings/ [post]
func (b *BookingController) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req request_models.BookingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	booking, err := b.bookingService.Create(c.Request.Context(), user.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "Booking created successfully")
}

// Update godoc
// @Summary Update a booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking id"
// @Param request body request_models.BookingUpdateRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /bookings/{id} [put]
func (b *BookingController) Update(c *gin.Context) {
	var req request_models.BookingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	booking, err := b.bookingService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "Booking updated successfully")
}

// Delete godoc
// @Summary Delete a booking and its owner rows
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /bookings/{id} [delete]
func (b *BookingController) Delete(c *gin.Context) {
	if err := b.bookingService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Booking deleted successfully")
}

// Owners godoc
// @Summary List the users who own a booking
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking id"
// @Success 200 {object} utils.APIResponse
// @Router /bookings/{id}/users/ [get]
func (b *BookingController) Owners(c *gin.Context) {
	users, err := b.bookingService.Owners(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, users, "")
}

// Place godoc
// @Summary Get the place a booking is for
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking id"
// @Success 200 {object} utils.APIResponse
// @Router /bookings/{id}/places/ [get]
func (b *BookingController) Place(c *gin.Context) {
	place, err := b.bookingService.Place(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, place, "")
}
