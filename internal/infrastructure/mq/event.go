// Package mq 投递名片事件，支持 channel（单机）与 kafka（分布式）两种模式
package mq

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CardEvent 导入、导出、分享、建立联系时产生
type CardEvent struct {
	EventId string    `json:"event_id"`
	Type    string    `json:"type"`
	OwnerId string    `json:"owner_id"`
	CardId  string    `json:"card_id,omitempty"`
	BatchId string    `json:"batch_id,omitempty"`
	Count   int       `json:"count,omitempty"`
	At      time.Time `json:"at"`
}

// EventHandler 消费端回调
type EventHandler func(ctx context.Context, ev CardEvent)

// LogEvent 默认消费端：写入结构化日志
func LogEvent(_ context.Context, ev CardEvent) {
	zap.L().Info("card event",
		zap.String("event_id", ev.EventId),
		zap.String("type", ev.Type),
		zap.String("owner_id", ev.OwnerId),
		zap.String("card_id", ev.CardId),
		zap.String("batch_id", ev.BatchId),
		zap.Int("count", ev.Count),
		zap.Time("at", ev.At),
	)
}

// Emit 补全 EventId 与 At 后投递，失败只记录日志，b 为 nil 时忽略
func Emit(b EventBroker, ev CardEvent) {
	if b == nil {
		return
	}
	if ev.EventId == "" {
		ev.EventId = uuid.NewString()
	}
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := b.Publish(ctx, ev); err != nil {
		zap.L().Warn("publish card event failed", zap.String("type", ev.Type), zap.String("event_id", ev.EventId), zap.Error(err))
	}
}
