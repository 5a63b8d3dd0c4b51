// Package kafka publica los eventos de reportes generados.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/reportes-ventas/internal/application/report"
	"github.com/jhoicas/reportes-ventas/pkg/config"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

var _ report.EventPublisher = (*Producer)(nil)

// Producer escribe eventos report.generated en JSON, con el id de la solicitud como clave.
type Producer struct {
	w messageWriter
}

// NewProducer crea el writer síncrono sobre los brokers configurados.
func NewProducer(cfg config.KafkaConfig) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			WriteTimeout: 5 * time.Second,
		},
	}
}

func (p *Producer) Close() error {
	return p.w.Close()
}

// PublishGenerated serializa el evento y lo escribe en el topic.
func (p *Producer) PublishGenerated(ctx context.Context, ev report.GeneratedEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("kafka: serializar evento: %w", err)
	}
	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.RequestID),
		Value: b,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
			{Key: "event-type", Value: []byte("report.generated")},
		},
	})
	if err != nil {
		return fmt.Errorf("kafka: publicar evento: %w", err)
	}
	return nil
}
