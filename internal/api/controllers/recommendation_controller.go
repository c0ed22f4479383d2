package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/middleware"
	"tripmate/pkg/utils"
)

type RecommendationController struct {
	recService services.RecommendationService
}

func NewRecommendationController(recService services.RecommendationService) *RecommendationController {
	return &RecommendationController{recService: recService}
}

// GenerateTrip godoc
// @Summary Generate a trip recommendation
// @Description Ask the configured generator for an itinerary; falls back to a local template
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body request_models.TripGenerateRequest true "Trip parameters"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /ai_recs/generate-trip [post]
func (r *RecommendationController) GenerateTrip(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req request_models.TripGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := r.recService.GenerateTrip(c.Request.Context(), user.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Recommendation generated successfully")
}

// Health godoc
// @Summary Report which generator is active
// @Tags Recommendations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /ai_recs/health [get]
func (r *RecommendationController) Health(c *gin.Context) {
	utils.RespondSuccess(c, r.recService.Health(c.Request.Context()), "")
}

// List godoc
// @Summary List stored recommendations
// @Tags Recommendations
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Max rows (default 100)"
// @Success 200 {object} utils.APIResponse
// @Router /ai_recs/ [get]
func (r *RecommendationController) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	recs, err := r.recService.List(c.Request.Context(), skip, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, recs, "")
}

// Get godoc
// @Summary Get a stored recommendation by id
// @Tags Recommendations
// @Produce json
// @Param id path string true "Recommendation id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /ai_recs/{id} [get]
func (r *RecommendationController) Get(c *gin.Context) {
	rec, err := r.recService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "")
}

// Mine godoc
// @Summary List the current user's recommendations
// @Tags Recommendations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /ai_recs/mine [get]
func (r *RecommendationController) Mine(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	recs, err := r.recService.ByUser(c.Request.Context(), user.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, recs, "")
}

// Create godoc
// @Summary Store a raw recommendation for the current user
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body request_models.RecommendationCreateRequest true "Recommendation payload"
// @Success 200 {object} utils.APIResponse
// @Router /ai_recs/ [post]
func (r *RecommendationController) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req request_models.RecommendationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := r.recService.Create(c.Request.Context(), user.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Recommendation stored successfully")
}

// Delete godoc
// @Summary Delete a stored recommendation
// @Tags Recommendations
// @Produce json
// @Param id path string true "Recommendation id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /ai_recs/{id} [delete]
func (r *RecommendationController) Delete(c *gin.Context) {
	if err := r.recService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Recommendation deleted successfully")
}
