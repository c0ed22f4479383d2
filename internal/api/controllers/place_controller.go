package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type PlaceController struct {
	placeService services.PlaceService
}

func NewPlaceController(placeService services.PlaceService) *PlaceController {
	return &PlaceController{placeService: placeService}
}

// List godoc
// @Summary List all places
// @Tags Places
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /places/all [get]
func (p *PlaceController) List(c *gin.Context) {
	places, err := p.placeService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, places, "")
}

// Get godoc
// @Summary Get a place by id
// @Tags Places
// @Produce json
// @Param idPlace query string true "Place id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /places [get]
func (p *PlaceController) Get(c *gin.Context) {
	id := c.Query("idPlace")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing idPlace")
		return
	}
	place, err := p.placeService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, place, "")
}

// GetBy godoc
// @Summary Look up places by a field
// @Tags Places
// @Produce json
// @Param field path string true "Lookup field" Enums(name, country, city, province, rating, type)
// @Param lookup query string true "Lookup value"
// @Success 200 {object} utils.APIResponse
// @Router /places/lookup/{field} [get]
func (p *PlaceController) GetBy(c *gin.Context) {
	field, ok := repositories.ParsePlaceLookupField(c.Param("field"))
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Unknown lookup field")
		return
	}
	lookup := c.Query("lookup")
	if lookup == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing lookup value")
		return
	}

	places, err := p.placeService.GetBy(c.Request.Context(), field, lookup)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, places, "")
}

// Search godoc
// @Summary Full-text search over place names and locations
// @Tags Places
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} utils.APIResponse
// @Router /search/ [get]
func (p *PlaceController) Search(c *gin.Context) {
	places, err := p.placeService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, places, "")
}

// Create godoc
// @Summary Create a place
// @Tags Places
// @Accept json
// @Produce json
// @Param request body request_models.PlaceCreateRequest true "Place payload"
// @Success 200 {object} utils.APIResponse
// @Router /places [post]
func (p *PlaceController) Create(c *gin.Context) {
	var req request_models.PlaceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	place, err := p.placeService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, place, "Place created successfully")
}

// Update godoc
// @Summary Update a place
// @Tags Places
// @Accept json
// @Produce json
// @Param id path string true "Place id"
// @Param request body request_models.PlaceUpdateRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /places/{id} [put]
func (p *PlaceController) Update(c *gin.Context) {
	var req request_models.PlaceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	place, err := p.placeService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, place, "Place updated successfully")
}

// Delete godoc
// @Summary Delete a place
// @Tags Places
// @Produce json
// @Param id path string true "Place id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /places/{id} [delete]
func (p *PlaceController) Delete(c *gin.Context) {
	if err := p.placeService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Place deleted successfully")
}

// Bookings godoc
// @Summary List bookings at a place
// @Tags Places
// @Produce json
// @Param id path string true "Place id"
// @Success 200 {object} utils.APIResponse
// @Router /places/{id}/bookings/ [get]
func (p *PlaceController) Bookings(c *gin.Context) {
	bookings, err := p.placeService.Bookings(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, bookings, "")
}

// Trips godoc
// @Summary List trips that include a place
// @Tags Places
// @Produce json
// @Param id path string true "Place id"
// @Success 200 {object} utils.APIResponse
// @Router /places/{id}/trips/ [get]
func (p *PlaceController) Trips(c *gin.Context) {
	trips, err := p.placeService.Trips(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trips, "")
}
