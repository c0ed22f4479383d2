package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationService
}

func NewNotificationController(notificationService services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// List godoc
// @Summary List all notifications
// @Tags Notifications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /notifications/ [get]
func (n *NotificationController) List(c *gin.Context) {
	notifications, err := n.notificationService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, notifications, "")
}

// Get godoc
// @Summary Get a notification by id
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /notifications/{id} [get]
func (n *NotificationController) Get(c *gin.Context) {
	notification, err := n.notificationService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, notification, "")
}

// ByUser godoc
// @Summary List a user's notifications
// @Tags Notifications
// @Produce json
// @Param userID path string true "User id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /notifications/user/{userID} [get]
func (n *NotificationController) ByUser(c *gin.Context) {
	notifications, err := n.notificationService.ByUser(c.Request.Context(), c.Param("userID"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, notifications, "")
}

// UnreadByUser godoc
// @Summary List a user's unread notifications
// @Tags Notifications
// @Produce json
// @Param userID path string true "User id"
// @Success 200 {object} utils.APIResponse
// @Router /notifications/user/{userID}/unread [get]
func (n *NotificationController) UnreadByUser(c *gin.Context) {
	notifications, err := n.notificationService.UnreadByUser(c.Request.Context(), c.Param("userID"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, notifications, "")
}

// Create godoc
// @Summary Create a notification
// @Tags Notifications
// @Accept json
// @Produce json
// @Param request body request_models.NotificationCreateRequest true "Notification payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /notifications/ [post]
func (n *NotificationController) Create(c *gin.Context) {
	var req request_models.NotificationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	notification, err := n.notificationService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, notification, "Notification created successfully")
}

// Update godoc
// @Summary Update a notification's content or read flag
// @Tags Notifications
// @Accept json
// @Produce json
// @Param id path string true "Notification id"
// @Param request body request_models.NotificationUpdateRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /notifications/{id} [put]
func (n *NotificationController) Update(c *gin.Context) {
	var req request_models.NotificationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	notification, err := n.notificationService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, notification, "Notification updated successfully")
}

// MarkAllRead godoc
// @Summary Mark all of a user's notifications read
// @Tags Notifications
// @Produce json
// @Param userID path string true "User id"
// @Success 200 {object} utils.APIResponse
// @Router /notifications/user/{userID}/read_all [put]
func (n *NotificationController) MarkAllRead(c *gin.Context) {
	count, err := n.notificationService.MarkAllRead(c.Request.Context(), c.Param("userID"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"updated": count}, "Notifications marked as read")
}

// Delete godoc
// @Summary Delete a notification
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /notifications/{id} [delete]
func (n *NotificationController) Delete(c *gin.Context) {
	if err := n.notificationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Notification deleted successfully")
}

// DeleteAllByUser godoc
// @Summary Delete all of a user's notifications
// @Tags Notifications
// @Produce json
// @Param userID path string true "User id"
// @Success 200 {object} utils.APIResponse
// @Router /notifications/user/{userID} [delete]
func (n *NotificationController) DeleteAllByUser(c *gin.Context) {
	count, err := n.notificationService.DeleteAllByUser(c.Request.Context(), c.Param("userID"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"deleted": count}, "Notifications deleted successfully")
}
