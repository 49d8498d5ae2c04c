// internal/services/notification_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/marketbay/storefront-backend/internal/models"
)

type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

func (s *NotificationService) Create(userID uuid.UUID, title, message string, notifType models.NotificationType) {
	notification := &models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notifType,
	}

	if err := s.db.Create(notification).Error; err != nil {
		// Notifications are best-effort; never fail the calling operation.
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to create notification")
	}
}

// NotifyAdmins fans a notification out to every admin account.
func (s *NotificationService) NotifyAdmins(title, message string, notifType models.NotificationType) {
	var admins []models.User
	if err := s.db.Where("role = ?", models.UserRoleAdmin).Find(&admins).Error; err != nil {
		logrus.WithError(err).Error("Failed to load admin users for notification")
		return
	}

	for _, admin := range admins {
		s.Create(admin.ID, title, message, notifType)
	}
}

func (s *NotificationService) ListForUser(userID uuid.UUID) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	return notifications, nil
}

func (s *NotificationService) MarkRead(id uuid.UUID) error {
	result := s.db.Model(&models.Notification{}).
		Where("id = ?", id).
		UpdateColumn("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification not found")
	}
	return nil
}

func (s *NotificationService) MarkAllRead(userID uuid.UUID) error {
	if err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		UpdateColumn("is_read", true).Error; err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

// GetNotification is used by handlers to check ownership.
func (s *NotificationService) GetNotification(id uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	if err := s.db.First(&notification, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("notification not found")
	}
	return &notification, nil
}
