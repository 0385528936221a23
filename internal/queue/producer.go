package queue

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ContactBook/config"
	"ContactBook/pkg/logger"
	"ContactBook/storage/mq"
)

// PublishContactEvent 发布联系人变更事件。尽力而为：
// 发布失败只记日志，绝不影响请求本身的结果。
func PublishContactEvent(action, username string, contactID int64) {
	if !config.Cfg.EventsEnabled {
		return
	}

	msg := ContactEventMessage{
		EventID:    uuid.NewString(),
		Action:     action,
		Username:   username,
		ContactID:  contactID,
		OccurredAt: time.Now().Format(time.RFC3339),
	}

	routingKey := "contact." + action

	if err := mq.PublishMessage(config.Cfg.EventsExchange, routingKey, msg); err != nil {
		logger.Logger.Warn("Failed to publish contact event",
			zap.String("event_id", msg.EventID),
			zap.String("routing_key", routingKey),
			zap.Int64("contact_id", contactID),
			zap.Error(err),
		)
		return
	}

	logger.Logger.Debug("Published contact event",
		zap.String("event_id", msg.EventID),
		zap.String("routing_key", routingKey),
		zap.Int64("contact_id", contactID),
	)
}
