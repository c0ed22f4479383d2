package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type TripController struct {
	tripService services.TripService
}

func NewTripController(tripService services.TripService) *TripController {
	return &TripController{tripService: tripService}
}

// List godoc
// @Summary List trips with optional date-range and keyword filters
// @Tags Trips
// @Produce json
// @Param from query string false "Earliest start date (DD/MM/YYYY HH:MM:SS)"
// @Param to query string false "Latest start date (DD/MM/YYYY HH:MM:SS)"
// @Param keyword query string false "Name keyword"
// @Success 200 {object} utils.APIResponse
// @Router /trips/ [get]
func (t *TripController) List(c *gin.Context) {
	trips, err := t.tripService.List(c.Request.Context(),
		c.Query("from"), c.Query("to"), c.Query("keyword"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trips, "")
}

// Get godoc
// @Summary Get a trip by id
// @Tags Trips
// @Produce json
// @Param id path string true "Trip id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{id} [get]
func (t *TripController) Get(c *gin.Context) {
	trip, err := t.tripService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "")
}

// GetByDate godoc
// @Summary Look up trips by start or end date
// @Tags Trips
// @Produce json
// @Param field path string true "Date field" Enums(startDate, endDate)
// @Param lookup query string true "Date value (DD/MM/YYYY HH:MM:SS)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trips/date/{field} [get]
func (t *TripController) GetByDate(c *gin.Context) {
	field, ok := repositories.ParseTripDateField(c.Param("field"))
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Unknown date field")
		return
	}
	trips, err := t.tripService.GetByDate(c.Request.Context(), field, c.Query("lookup"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trips, "")
}

// Create godoc
// @Summary Create a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.TripCreateRequest true "Trip payload"
// @Success 200 {object} utils.APIResponse
// @Router /trips/ [post]
func (t *TripController) Create(c *gin.Context) {
	var req request_models.TripCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip created successfully")
}

// Update godoc
// @Summary Update a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Trip id"
// @Param request body request_models.TripUpdateRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{id} [put]
func (t *TripController) Update(c *gin.Context) {
	var req request_models.TripUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

// Delete godoc
// @Summary Delete a trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{id} [delete]
func (t *TripController) Delete(c *gin.Context) {
	if err := t.tripService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

// Members godoc
// @Summary List a trip's members
// @Tags Trips
// @Produce json
// @Param id path string true "Trip id"
// @Success 200 {object} utils.APIResponse
// @Router /trips/{id}/members/ [get]
func (t *TripController) Members(c *gin.Context) {
	users, err := t.tripService.Members(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, users, "")
}

// Reviewers godoc
// @Summary List the users who reviewed a trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip id"
// @Success 200 {object} utils.APIResponse
// @Router /trips/{id}/reviewed/ [get]
func (t *TripController) Reviewers(c *gin.Context) {
	users, err := t.tripService.Reviewers(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, users, "")
}

// Places godoc
// @Summary List the places on a trip's itinerary
// @Tags Trips
// @Produce json
// @Param id path string true "Trip id"
// @Success 200 {object} utils.APIResponse
// @Router /trips/{id}/places/ [get]
func (t *TripController) Places(c *gin.Context) {
	places, err := t.tripService.Places(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, places, "")
}
