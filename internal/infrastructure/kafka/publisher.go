package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// Publisher is the event port the workflows publish through. Satisfied by
// KafkaPublisher; tests substitute an in-memory recorder.
type Publisher interface {
	PublishOrderEvent(ctx context.Context, event OrderEvent) error
	PublishPaymentEvent(ctx context.Context, event PaymentEvent) error
	Close() error
}

type KafkaPublisher struct {
	writer       *kafka.Writer
	orderTopic   string
	paymentTopic string
}

func NewKafkaPublisher(brokers []string, orderTopic, paymentTopic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
		orderTopic:   orderTopic,
		paymentTopic: paymentTopic,
	}
}

func (k *KafkaPublisher) PublishOrderEvent(ctx context.Context, event OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.writer.WriteMessages(ctx, kafka.Message{
		Topic: k.orderTopic,
		Key:   []byte(event.OrderID),
		Value: value,
		Time:  time.Now(),
	})
}

func (k *KafkaPublisher) PublishPaymentEvent(ctx context.Context, event PaymentEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.writer.WriteMessages(ctx, kafka.Message{
		Topic: k.paymentTopic,
		Key:   []byte(event.OrderID),
		Value: value,
		Time:  time.Now(),
	})
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}
