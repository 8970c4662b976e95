package mq

import (
	"context"
	"errors"

	"kama_card_server/internal/config"
)

var ErrBrokerClosed = errors.New("mq: broker closed")

// EventBroker 事件代理
type EventBroker interface {
	// Publish 投递失败返回错误，调用方决定是否忽略
	Publish(ctx context.Context, ev CardEvent) error
	// Start 阻塞消费直到 ctx 取消或代理关闭
	Start(ctx context.Context, handler EventHandler)
	Close()
}

// NewBroker 根据 messageMode 选择实现，未知取值按 channel 处理
func NewBroker(cfg config.KafkaConfig) EventBroker {
	if cfg.MessageMode == "kafka" {
		return NewKafkaBroker(cfg)
	}
	return NewChannelBroker()
}
