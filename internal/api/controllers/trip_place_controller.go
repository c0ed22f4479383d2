package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type TripPlaceController struct {
	tripPlaceService services.TripPlaceService
}

func NewTripPlaceController(tripPlaceService services.TripPlaceService) *TripPlaceController {
	return &TripPlaceController{tripPlaceService: tripPlaceService}
}

// List godoc
// @Summary List all itinerary entries
// @Tags TripPlaces
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /trip_places/ [get]
func (t *TripPlaceController) List(c *gin.Context) {
	entries, err := t.tripPlaceService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entries, "")
}

// Get godoc
// @Summary Get an itinerary entry by id
// @Tags TripPlaces
// @Produce json
// @Param id path string true "Entry id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trip_places/{id} [get]
func (t *TripPlaceController) Get(c *gin.Context) {
	entry, err := t.tripPlaceService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entry, "")
}

// GetBy godoc
// @Summary Look up itinerary entries by place or trip
// @Tags TripPlaces
// @Produce json
// @Param field path string true "Lookup field" Enums(place, trip)
// @Param lookup query string true "Lookup value"
// @Success 200 {object} utils.APIResponse
// @Router /trip_places/lookup/{field} [get]
func (t *TripPlaceController) GetBy(c *gin.Context) {
	field, ok := repositories.ParseTripPlaceLookupField(c.Param("field"))
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Unknown lookup field")
		return
	}
	entries, err := t.tripPlaceService.GetBy(c.Request.Context(), field, c.Query("lookup"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entries, "")
}

// Create godoc
// @Summary Schedule a place inside a trip
// @Tags TripPlaces
// @Accept json
// @Produce json
// @Param request body request_models.TripPlaceCreateRequest true "Itinerary payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trip_places/ [post]
func (t *TripPlaceController) Create(c *gin.Context) {
	var req request_models.TripPlaceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := t.tripPlaceService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entry, "Itinerary entry created successfully")
}

// Update godoc
// @Summary Update an itinerary entry
// @Tags TripPlaces
// @Accept json
// @Produce json
// @Param id path string true "Entry id"
// @Param request body request_models.TripPlaceUpdateRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trip_places/{id} [put]
func (t *TripPlaceController) Update(c *gin.Context) {
	var req request_models.TripPlaceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := t.tripPlaceService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entry, "Itinerary entry updated successfully")
}

// Delete godoc
// @Summary Delete an itinerary entry
// @Tags TripPlaces
// @Produce json
// @Param id path string true "Entry id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trip_places/{id} [delete]
func (t *TripPlaceController) Delete(c *gin.Context) {
	if err := t.tripPlaceService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Itinerary entry deleted successfully")
}
