package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Config struct {
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	Topic   string   `env:"KAFKA_TOPIC" envDefault:"autoparts.events"`
}

// Producer publishes domain events to kafka. A nil Producer is a valid no-op,
// the core treats an unconfigured broker list as events disabled.
type Producer struct {
	log    *zap.Logger
	writer *kafka.Writer
}

type option func(*Producer)

func Logger(log *zap.Logger) option {
	return func(p *Producer) {
		if log != nil {
			p.log = log
		}
	}
}

func New(cfg *Config, options ...option) *Producer {
	if len(cfg.Brokers) == 0 {
		return nil
	}

	p := &Producer{
		log: zap.NewNop(),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
			MaxAttempts:  3,
			WriteTimeout: 10 * time.Second,
		},
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

func (p *Producer) Publish(ctx context.Context, key string, event interface{}) error {
	if p == nil {
		return nil
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed write event: %w", err)
	}
	p.log.Debug("event published", zap.String("key", key))

	return nil
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
