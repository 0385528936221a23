package storage

import (
	"go.uber.org/zap"

	"ContactBook/config"
	"ContactBook/pkg/logger"
	"ContactBook/storage/database"
	"ContactBook/storage/mq"
	"ContactBook/storage/redis"
)

// 统一 init storage 层

func Init() error {
	if err := database.Init(); err != nil {
		return err
	}

	if err := redis.Init(); err != nil {
		return err
	}

	// 事件发布是可选能力，连不上 MQ 不阻塞启动
	if config.Cfg.EventsEnabled {
		if err := mq.Init(); err != nil {
			logger.Logger.Warn("Failed to initialize message queue, contact events disabled", zap.Error(err))
		}
	}

	return nil
}
