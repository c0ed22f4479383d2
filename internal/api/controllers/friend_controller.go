package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type FriendController struct {
	friendService services.FriendService
}

func NewFriendController(friendService services.FriendService) *FriendController {
	return &FriendController{friendService: friendService}
}

// List godoc
// @Summary List all friendship edges
// @Tags Friends
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /friends/ [get]
func (f *FriendController) List(c *gin.Context) {
	friends, err := f.friendService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, friends, "")
}

// AcceptedOf godoc
// @Summary List a user's accepted friendships
// @Tags Friends
// @Produce json
// @Param userID path string true "User id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /friends/{userID} [get]
func (f *FriendController) AcceptedOf(c *gin.Context) {
	friends, err := f.friendService.AcceptedOf(c.Request.Context(), c.Param("userID"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, friends, "")
}

// Create godoc
// @Summary Send a friend request
// @Tags Friends
// @Accept json
// @Produce json
// @Param request body request_models.FriendCreateRequest true "Friend request payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /friends/ [post]
func (f *FriendController) Create(c *gin.Context) {
	var req request_models.FriendCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	friend, err := f.friendService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, friend, "Friend request created successfully")
}

// Update godoc
// @Summary Accept or reset a friend request
// @Tags Friends
// @Accept json
// @Produce json
// @Param request body request_models.FriendUpdateRequest true "Friend update payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /friends/ [put]
func (f *FriendController) Update(c *gin.Context) {
	var req request_models.FriendUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	friend, err := f.friendService.Update(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, friend, "Friendship updated successfully")
}

// Delete godoc
// @Summary Remove a friendship
// @Tags Friends
// @Produce json
// @Param user_id query string true "User id"
// @Param friend_id query string true "Friend id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /friends/ [delete]
func (f *FriendController) Delete(c *gin.Context) {
	userID, friendID := c.Query("user_id"), c.Query("friend_id")
	if userID == "" || friendID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing user_id or friend_id")
		return
	}
	if err := f.friendService.Delete(c.Request.Context(), userID, friendID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Friendship removed successfully")
}
