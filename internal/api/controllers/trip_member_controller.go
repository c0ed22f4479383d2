package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type TripMemberController struct {
	memberService services.TripMemberService
}

func NewTripMemberController(memberService services.TripMemberService) *TripMemberController {
	return &TripMemberController{memberService: memberService}
}

// List godoc
// @Summary List all trip memberships
// @Tags TripMembers
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /trip_members/ [get]
func (t *TripMemberController) List(c *gin.Context) {
	members, err := t.memberService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, members, "")
}

// Get godoc
// @Summary Get one membership edge
// @Tags TripMembers
// @Produce json
// @Param idUser query string true "User id"
// @Param idTrip query string true "Trip id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trip_members/one [get]
func (t *TripMemberController) Get(c *gin.Context) {
	userID, tripID := c.Query("idUser"), c.Query("idTrip")
	if userID == "" || tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing idUser or idTrip")
		return
	}
	member, err := t.memberService.Get(c.Request.Context(), userID, tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, member, "")
}

// GetBy godoc
// @Summary Look up memberships by user or trip
// @Tags TripMembers
// @Produce json
// @Param field path string true "Lookup field" Enums(user, trip)
// @Param lookup query string true "Lookup value"
// @Success 200 {object} utils.APIResponse
// @Router /trip_members/{field} [get]
func (t *TripMemberController) GetBy(c *gin.Context) {
	field, ok := repositories.ParseTripMemberLookupField(c.Param("field"))
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Unknown lookup field")
		return
	}
	members, err := t.memberService.GetBy(c.Request.Context(), field, c.Query("lookup"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, members, "")
}

// Create godoc
// @Summary Add a user to a trip
// @Tags TripMembers
// @Accept json
// @Produce json
// @Param request body request_models.TripMemberRequest true "Membership payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trip_members/ [post]
func (t *TripMemberController) Create(c *gin.Context) {
	var req request_models.TripMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	member, err := t.memberService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, member, "Trip member added successfully")
}

// Delete godoc
// @Summary Remove a user from a trip
// @Tags TripMembers
// @Produce json
// @Param idUser query string true "User id"
// @Param idTrip query string true "Trip id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trip_members/ [delete]
func (t *TripMemberController) Delete(c *gin.Context) {
	userID, tripID := c.Query("idUser"), c.Query("idTrip")
	if userID == "" || tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing idUser or idTrip")
		return
	}
	if err := t.memberService.Delete(c.Request.Context(), userID, tripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Trip member removed successfully")
}
