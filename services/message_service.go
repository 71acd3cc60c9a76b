package services

import (
	"backend/models"

	"gorm.io/gorm"
)

type MessageService struct {
	db  *gorm.DB
	hub *NotificationHub
}

// NewMessageService wires the store and an optional notification hub; a nil
// hub just means no realtime push.
func NewMessageService(db *gorm.DB, hub *NotificationHub) *MessageService {
	return &MessageService{db: db, hub: hub}
}

// SendMessage persists an admin-to-user message and pushes it to the
// recipient's open websocket connections.
func (s *MessageService) SendMessage(adminID, userID uint, text string) (*models.AdminMessage, error) {
	msg := models.AdminMessage{
		AdminID: adminID,
		UserID:  userID,
		Message: text,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Notify(userID, Notification{Kind: "message.created", Message: &msg})
	}
	return &msg, nil
}

// RecentMessages lists the newest messages for a user's inbox.
func (s *MessageService) RecentMessages(userID uint, limit int) ([]models.AdminMessage, error) {
	var msgs []models.AdminMessage
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&msgs).Error
	return msgs, err
}

// MarkRead flags every unread message in the user's inbox as read.
func (s *MessageService) MarkRead(userID uint) error {
	return s.db.Model(&models.AdminMessage{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

// UpdateTargetStatus sets a user's target status from the admin dashboard.
// Last write wins when two admins race; there is no optimistic locking.
func (s *MessageService) UpdateTargetStatus(userID uint, status string) error {
	result := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("target_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
