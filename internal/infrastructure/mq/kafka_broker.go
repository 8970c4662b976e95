package mq

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"kama_card_server/internal/config"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaBroker 以 owner_id 为 key 写入，同一用户的事件落在同一分区
type KafkaBroker struct {
	producer *kafka.Writer
	consumer *kafka.Reader
}

func NewKafkaBroker(cfg config.KafkaConfig) *KafkaBroker {
	timeout := cfg.Timeout * time.Second
	if timeout <= 0 {
		timeout = time.Second
	}
	return &KafkaBroker{
		producer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.HostPort),
			Topic:                  cfg.CardTopic,
			Balancer:               &kafka.Hash{},
			WriteTimeout:           timeout,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: false,
		},
		consumer: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        []string{cfg.HostPort},
			Topic:          cfg.CardTopic,
			CommitInterval: timeout,
			GroupID:        "card_events",
			StartOffset:    kafka.LastOffset,
		}),
	}
}

func (k *KafkaBroker) Publish(ctx context.Context, ev CardEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return k.producer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.OwnerId),
		Value: value,
	})
}

func (k *KafkaBroker) Start(ctx context.Context, handler EventHandler) {
	for {
		msg, err := k.consumer.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			zap.L().Error("kafka read card event", zap.Error(err))
			return
		}
		var ev CardEvent
		if err := json.Unmarshal(msg.Value, &ev); err != nil {
			zap.L().Warn("kafka card event decode", zap.Int64("offset", msg.Offset), zap.Error(err))
			continue
		}
		handler(ctx, ev)
	}
}

func (k *KafkaBroker) Close() {
	if err := k.producer.Close(); err != nil {
		zap.L().Error(err.Error())
	}
	if err := k.consumer.Close(); err != nil {
		zap.L().Error(err.Error())
	}
}
