package producer

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/samber/lo"

	"github.com/you-humble/parts-inventory/platform/logger"
)

type Logger interface {
	Debug(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type producer struct {
	syncProducer sarama.SyncProducer
	topic        string
	log          Logger
}

// NewProducer publishes every message to a single topic.
func NewProducer(syncProducer sarama.SyncProducer, topic string, log Logger) *producer {
	return &producer{
		syncProducer: syncProducer,
		topic:        topic,
		log:          log,
	}
}

func (p *producer) Send(ctx context.Context, key, value []byte, headers map[string]string) error {
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
		Headers: lo.MapToSlice(headers, func(k, v string) sarama.RecordHeader {
			return sarama.RecordHeader{Key: []byte(k), Value: []byte(v)}
		}),
	}

	partition, offset, err := p.syncProducer.SendMessage(msg)
	if err != nil {
		p.log.Error(ctx, "failed to send message",
			logger.String("topic", p.topic),
			logger.ErrorF(err),
		)
		return err
	}

	p.log.Debug(ctx, "message sent",
		logger.String("topic", p.topic),
		logger.Int32("partition", partition),
		logger.Int64("offset", offset),
		logger.String("key", string(key)),
	)
	return nil
}
