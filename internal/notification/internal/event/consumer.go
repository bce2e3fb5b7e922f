// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"

	"github.com/neji123/gestion-stagiaires/internal/notification/internal/domain"
	"github.com/neji123/gestion-stagiaires/internal/notification/internal/service"
)

const ratingEvents = "rating_events"

const (
	actionReceived = "received"
	actionApproved = "approved"
	actionRejected = "rejected"
)

// RatingEvent 评价模块发出来的事件，字段保持一致
type RatingEvent struct {
	RatingId        int64  `json:"ratingId"`
	EvaluatorId     int64  `json:"evaluatorId"`
	EvaluatedUserId int64  `json:"evaluatedUserId"`
	Kind            string `json:"kind"`
	Action          string `json:"action"`
	Reason          string `json:"reason"`
	EvaluatorName   string `json:"evaluatorName"`
}

type RatingEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewRatingEventConsumer(svc service.Service, q mq.MQ) (*RatingEventConsumer, error) {
	groupID := "notification"
	consumer, err := q.Consumer(ratingEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &RatingEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *RatingEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费评价事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *RatingEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt RatingEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	for _, n := range c.notifications(evt) {
		if _, er := c.svc.Create(ctx, n); er != nil {
			c.logger.Error("创建通知失败",
				elog.FieldErr(er),
				elog.Int64("uid", n.UserId),
				elog.Int64("rating", evt.RatingId),
			)
		}
	}
	return nil
}

// notifications 按动作决定谁收通知：
// received 通知被评价人，approved 通知双方，rejected 只通知评价人
func (c *RatingEventConsumer) notifications(evt RatingEvent) []domain.Notification {
	switch evt.Action {
	case actionReceived:
		title := "您收到一份新的评价"
		msg := fmt.Sprintf("%s 对您提交了一份评价", evt.EvaluatorName)
		return []domain.Notification{{
			UserId:          evt.EvaluatedUserId,
			Title:           title,
			Message:         msg,
			Type:            domain.TypeRatingReceived,
			RelatedEntityId: evt.RatingId,
		}}
	case actionApproved:
		return []domain.Notification{
			{
				UserId:          evt.EvaluatedUserId,
				Title:           "评价已生效",
				Message:         "您收到的一份评价已通过审核",
				Type:            domain.TypeRatingApproved,
				RelatedEntityId: evt.RatingId,
			},
			{
				UserId:          evt.EvaluatorId,
				Title:           "评价已通过审核",
				Message:         "您提交的评价已通过审核",
				Type:            domain.TypeRatingApproved,
				RelatedEntityId: evt.RatingId,
			},
		}
	case actionRejected:
		msg := "您提交的评价被驳回"
		if evt.Reason != "" {
			msg = fmt.Sprintf("您提交的评价被驳回：%s", evt.Reason)
		}
		return []domain.Notification{{
			UserId:          evt.EvaluatorId,
			Title:           "评价被驳回",
			Message:         msg,
			Type:            domain.TypeRatingRejected,
			RelatedEntityId: evt.RatingId,
		}}
	default:
		c.logger.Warn("未知的评价事件动作", elog.String("action", evt.Action))
		return nil
	}
}
