package services

import (
	"fmt"
	"time"

	"github.com/lucsoftsl/alexafit-backoffice-sub000/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type noticeDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _notice noticeDeps

func InitNoticeDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_notice = noticeDeps{db: db, rt: rt, ps: ps}
}

// EmitNotice stores a subscriber-facing message, mirrors it to connected
// consoles and pushes it to the subscriber's devices. Safe to call anywhere.
func EmitNotice(subscriberID, adminID uint, title, body, channel string) *models.Message {
	if _notice.db == nil {
		return nil // not initialized
	}
	m := &models.Message{
		PublicID:     uuid.NewString(),
		SubscriberID: subscriberID,
		AdminID:      adminID,
		Title:        title,
		Body:         body,
		Channel:      channel,
		CreatedAt:    time.Now(),
	}
	_ = _notice.db.Create(m).Error

	if _notice.rt != nil {
		_notice.rt.BroadcastEvent(map[string]any{
			"kind":    "message.sent",
			"message": m,
		})
	}
	if _notice.ps != nil {
		_notice.ps.PushToSubscriber(subscriberID, title, body, map[string]string{
			"channel": channel, "messageId": fmt.Sprintf("%d", m.ID),
		})
	}
	return m
}
