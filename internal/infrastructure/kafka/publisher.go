package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/LavaJover/shvark-revenue-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *KafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	km := make([]kafka.Message, 0, len(msgs))
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}
	return k.writer.WriteMessages(context.Background(), km...)
}

func (k *KafkaPublisher) PublishWithdrawal(event WithdrawalEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.Publish(TopicWithdrawalEvents, domain.Message{Key: []byte(event.TenantID), Value: v})
}

func (k *KafkaPublisher) PublishImport(event ImportEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.Publish(TopicImportEvents, domain.Message{Key: []byte("import"), Value: v})
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}
