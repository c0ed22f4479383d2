package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
	"tripmate/pkg/middleware"
	"tripmate/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewService
}

func NewReviewController(reviewService services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// List godoc
// @Summary List all reviews
// @Tags Reviews
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /reviews/ [get]
func (r *ReviewController) List(c *gin.Context) {
	reviews, err := r.reviewService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, reviews, "")
}

// Get godoc
// @Summary Get a review by id
// @Tags Reviews
// @Produce json
// @Param id path string true "Review id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /reviews/{id} [get]
func (r *ReviewController) Get(c *gin.Context) {
	review, err := r.reviewService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, review, "")
}

// GetBy godoc
// @Summary Look up reviews by trip, user or rating
// @Tags Reviews
// @Produce json
// @Param field path string true "Lookup field" Enums(trip, user, rating)
// @Param lookup query string true "Lookup value"
// @Success 200 {object} utils.APIResponse
// @Router /reviews/lookup/{field} [get]
func (r *ReviewController) GetBy(c *gin.Context) {
	field, ok := repositories.ParseReviewLookupField(c.Param("field"))
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Unknown lookup field")
		return
	}
	reviews, err := r.reviewService.GetBy(c.Request.Context(), field, c.Query("lookup"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, reviews, "")
}

// Top godoc
// @Summary List the highest-rated reviews
// @Tags Reviews
// @Produce json
// @Param limit query int false "Max results (default 10)"
// @Success 200 {object} utils.APIResponse
// @Router /reviews/top [get]
func (r *ReviewController) Top(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	reviews, err := r.reviewService.Top(c.Request.Context(), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, reviews, "")
}

// Create godoc
// @Summary Review a trip as the current user
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.ReviewCreateRequest true "Review payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /reviews/ [post]
func (r *ReviewController) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req request_models.ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	review, err := r.reviewService.Create(c.Request.Context(), user.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, review, "Review created successfully")
}

// Delete godoc
// @Summary Delete a review
// @Tags Reviews
// @Produce json
// @Param id path string true "Review id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /reviews/{id} [delete]
func (r *ReviewController) Delete(c *gin.Context) {
	if err := r.reviewService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Review deleted successfully")
}
