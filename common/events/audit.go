package events

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/zeromicro/go-zero/core/logx"
)

// StartAuditSubscriber 启动审计日志订阅者
// 订阅报名/取消报名事件并落日志，作为名单变更的流水记录。
// 订阅必须在任何 Publish 之前完成，否则 gochannel 不会投递旧消息。
func StartAuditSubscriber(ctx context.Context, bus *Bus) error {
	joined, err := bus.Subscribe(ctx, TopicActivityMemberJoined)
	if err != nil {
		return err
	}
	left, err := bus.Subscribe(ctx, TopicActivityMemberLeft)
	if err != nil {
		return err
	}

	go auditLoop(ctx, joined, left)
	return nil
}

// auditLoop 消费事件直到 context 结束
func auditLoop(ctx context.Context, joined, left <-chan *message.Message) {
	for {
		select {
		case msg, ok := <-joined:
			if !ok {
				return
			}
			var evt ActivityMemberJoinedEvent
			if err := json.Unmarshal(msg.Payload, &evt); err != nil {
				logx.Errorf("audit: 解析报名事件失败: %v", err)
			} else {
				logx.Infof("audit: %s joined %q", evt.Email, evt.Activity)
			}
			msg.Ack()
		case msg, ok := <-left:
			if !ok {
				return
			}
			var evt ActivityMemberLeftEvent
			if err := json.Unmarshal(msg.Payload, &evt); err != nil {
				logx.Errorf("audit: 解析取消报名事件失败: %v", err)
			} else {
				logx.Infof("audit: %s left %q", evt.Email, evt.Activity)
			}
			msg.Ack()
		case <-ctx.Done():
			return
		}
	}
}
