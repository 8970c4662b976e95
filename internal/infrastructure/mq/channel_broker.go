package mq

import (
	"context"
	"sync"

	"kama_card_server/pkg/constants"

	"go.uber.org/zap"
)

// ChannelBroker 进程内缓冲通道
type ChannelBroker struct {
	events    chan CardEvent
	closeOnce sync.Once
	done      chan struct{}
}

func NewChannelBroker() *ChannelBroker {
	return &ChannelBroker{
		events: make(chan CardEvent, constants.CHANNEL_SIZE),
		done:   make(chan struct{}),
	}
}

// Publish 通道满时等待，直到 ctx 取消
func (b *ChannelBroker) Publish(ctx context.Context, ev CardEvent) error {
	select {
	case <-b.done:
		return ErrBrokerClosed
	default:
	}
	select {
	case b.events <- ev:
		return nil
	case <-b.done:
		return ErrBrokerClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *ChannelBroker) Start(ctx context.Context, handler EventHandler) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-b.done:
			b.drain(ctx, handler)
			return
		case ev := <-b.events:
			b.handle(ctx, handler, ev)
		}
	}
}

// drain 关闭后处理余下事件
func (b *ChannelBroker) drain(ctx context.Context, handler EventHandler) {
	for {
		select {
		case ev := <-b.events:
			b.handle(ctx, handler, ev)
		default:
			return
		}
	}
}

func (b *ChannelBroker) handle(ctx context.Context, handler EventHandler, ev CardEvent) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("card event handler panic", zap.Any("recover", r), zap.String("event_id", ev.EventId))
		}
	}()
	handler(ctx, ev)
}

func (b *ChannelBroker) Close() {
	b.closeOnce.Do(func() { close(b.done) })
}
