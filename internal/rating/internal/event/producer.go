package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

//go:generate mockgen -source=./producer.go -destination=../../mocks/producer.mock.go -package=ratingmocks RatingEventProducer
type RatingEventProducer interface {
	Produce(ctx context.Context, evt RatingEvent) error
}

type ratingEventProducer struct {
	producer mq.Producer
}

func NewRatingEventProducer(q mq.MQ) (RatingEventProducer, error) {
	p, err := q.Producer(RatingEventTopic)
	if err != nil {
		return nil, fmt.Errorf("创建评价事件生产者失败: %w", err)
	}
	return &ratingEventProducer{producer: p}, nil
}

func (p *ratingEventProducer) Produce(ctx context.Context, evt RatingEvent) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化评价事件失败: %w", err)
	}
	_, err = p.producer.Produce(ctx, &mq.Message{Value: data})
	if err != nil {
		return fmt.Errorf("发送评价事件失败: %w", err)
	}
	return nil
}
