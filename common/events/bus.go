package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mergington-hub/common/ctxdata"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Bus 进程内事件总线（Watermill GoChannel 实现）
// 报名服务是单进程、内存态服务，事件不需要跨进程投递，
// 用 gochannel 代替 Redis Streams 后端
type Bus struct {
	channel *gochannel.GoChannel
}

// NewBus 创建事件总线
func NewBus() *Bus {
	return &Bus{
		channel: gochannel.NewGoChannel(
			gochannel.Config{
				OutputChannelBuffer: 64,
			},
			newLogxLogger(),
		),
	}
}

// PublishMemberJoined 发布学生报名事件
func (b *Bus) PublishMemberJoined(ctx context.Context, activity, email string) error {
	evt := &ActivityMemberJoinedEvent{
		Activity: activity,
		Email:    email,
		JoinedAt: time.Now(),
	}
	return b.publish(ctx, TopicActivityMemberJoined, evt)
}

// PublishMemberLeft 发布学生取消报名事件
func (b *Bus) PublishMemberLeft(ctx context.Context, activity, email string) error {
	evt := &ActivityMemberLeftEvent{
		Activity: activity,
		Email:    email,
		LeftAt:   time.Now(),
	}
	return b.publish(ctx, TopicActivityMemberLeft, evt)
}

// Subscribe 订阅指定主题
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.channel.Subscribe(ctx, topic)
}

// Close 关闭总线，释放资源
func (b *Bus) Close() error {
	return b.channel.Close()
}

// publish 序列化事件并发布，同时注入追踪元数据
func (b *Bus) publish(ctx context.Context, topic string, evt interface{}) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event failed: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if traceID := ctxdata.GetTraceIDFromCtx(ctx); traceID != "" {
		msg.Metadata.Set("trace_id", traceID)
	}

	return b.channel.Publish(topic, msg)
}
