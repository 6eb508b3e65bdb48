package services

import (
	"errors"

	"github.com/lucsoftsl/alexafit-backoffice-sub000/models"
	"github.com/lucsoftsl/alexafit-backoffice-sub000/utils"

	"gorm.io/gorm"
)

type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

func (s *MessageService) ListForSubscriber(subscriberID uint, limit, offset int) ([]models.Message, int64, error) {
	if limit <= 0 {
		limit = 50
	}
	var total int64
	q := s.db.Model(&models.Message{}).Where("subscriber_id = ?", subscriberID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var msgs []models.Message
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&msgs).Error
	return msgs, total, err
}

// Send stores and fans out one message. Channel "email" additionally sends a
// copy via SES to the subscriber's address.
func (s *MessageService) Send(subscriberID, adminID uint, title, body, channel string) (*models.Message, error) {
	if title == "" && body == "" {
		return nil, errors.New("message is empty")
	}
	if channel == "" {
		channel = "push"
	}

	var sub models.Subscriber
	if err := s.db.First(&sub, subscriberID).Error; err != nil {
		return nil, errors.New("subscriber not found")
	}
	if sub.Disabled {
		return nil, errors.New("subscriber is disabled")
	}

	m := EmitNotice(subscriberID, adminID, title, body, channel)
	if m == nil {
		return nil, errors.New("messaging not initialized")
	}

	if channel == "email" && sub.Email != "" {
		if err := utils.SendEmail(sub.Email, title, body); err != nil {
			return m, err
		}
	}
	return m, nil
}

func (s *MessageService) MarkRead(publicID string) error {
	res := s.db.Model(&models.Message{}).
		Where("public_id = ? AND read_at IS NULL", publicID).
		Update("read_at", gorm.Expr("NOW()"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("message not found or already read")
	}
	return nil
}
