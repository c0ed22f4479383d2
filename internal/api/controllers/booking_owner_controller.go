package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type BookingOwnerController struct {
	ownerService services.BookingOwnerService
}

func NewBookingOwnerController(ownerService services.BookingOwnerService) *BookingOwnerController {
	return &BookingOwnerController{ownerService: ownerService}
}

// List godoc
// @Summary List all booking ownerships
// @Tags BookingOwners
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /booking_owners/ [get]
func (b *BookingOwnerController) List(c *gin.Context) {
	owners, err := b.ownerService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, owners, "")
}

// Get godoc
// @Summary Get one ownership edge
// @Tags BookingOwners
// @Produce json
// @Param idUser query string true "User id"
// @Param idBooking query string true "Booking id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /booking_owners/one [get]
func (b *BookingOwnerController) Get(c *gin.Context) {
	userID, bookingID := c.Query("idUser"), c.Query("idBooking")
	if userID == "" || bookingID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing idUser or idBooking")
		return
	}
	owner, err := b.ownerService.Get(c.Request.Context(), userID, bookingID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, owner, "")
}

// GetBy godoc
// @Summary Look up ownerships by user or booking
// @Tags BookingOwners
// @Produce json
// @Param field path string true "Lookup field" Enums(user, booking)
// @Param lookup query string true "Lookup value"
// @Success 200 {object} utils.APIResponse
// @Router /booking_owners/{field} [get]
func (b *BookingOwnerController) GetBy(c *gin.Context) {
	field, ok := repositories.ParseBookingOwnerLookupField(c.Param("field"))
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Unknown lookup field")
		return
	}
	owners, err := b.ownerService.GetBy(c.Request.Context(), field, c.Query("lookup"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, owners, "")
}

// Create godoc
// @Summary Add an owner to a booking
// @Tags BookingOwners
// @Accept json
// @Produce json
// @Param request body request_models.BookingOwnerRequest true "Ownership payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /booking_owners/ [post]
func (b *BookingOwnerController) Create(c *gin.Context) {
	var req request_models.BookingOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	owner, err := b.ownerService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, owner, "Booking owner added successfully")
}

// Delete godoc
// @Summary Remove an owner from a booking
// @Tags BookingOwners
// @Produce json
// @Param idUser query string true "User id"
// @Param idBooking query string true "Booking id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /booking_owners/ [delete]
func (b *BookingOwnerController) Delete(c *gin.Context) {
	userID, bookingID := c.Query("idUser"), c.Query("idBooking")
	if userID == "" || bookingID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing idUser or idBooking")
		return
	}
	if err := b.ownerService.Delete(c.Request.Context(), userID, bookingID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Booking owner removed successfully")
}
