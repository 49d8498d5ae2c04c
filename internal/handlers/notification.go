// internal/handlers/notification.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marketbay/storefront-backend/internal/services"
	"github.com/marketbay/storefront-backend/internal/utils"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// GET /api/notifications/:userId
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	if !canActFor(c, userID) {
		utils.ForbiddenResponse(c, "Cannot access another user's notifications")
		return
	}

	notifications, err := h.notificationService.ListForUser(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch notifications")
		return
	}

	utils.SuccessResponse(c, notifications)
}

// PUT /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid notification ID", nil)
		return
	}

	notification, err := h.notificationService.GetNotification(notificationID)
	if err != nil {
		utils.NotFoundResponse(c, "Notification")
		return
	}
	if !canActFor(c, notification.UserID) {
		utils.ForbiddenResponse(c, "Cannot modify another user's notification")
		return
	}

	if err := h.notificationService.MarkRead(notificationID); err != nil {
		utils.InternalErrorResponse(c, "Failed to mark notification read")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Notification marked as read"})
}

// PUT /api/notifications/user/:userId/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	if !canActFor(c, userID) {
		utils.ForbiddenResponse(c, "Cannot modify another user's notifications")
		return
	}

	if err := h.notificationService.MarkAllRead(userID); err != nil {
		utils.InternalErrorResponse(c, "Failed to mark notifications read")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "All notifications marked as read"})
}
