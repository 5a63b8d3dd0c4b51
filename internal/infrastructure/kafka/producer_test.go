package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reportes-ventas/internal/application/report"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func TestPublishGenerated_MensajeJSONConClave(t *testing.T) {
	w := &recordingWriter{}
	p := &Producer{w: w}
	ev := report.GeneratedEvent{
		RequestID:   "7f0c1e9a-0000-0000-0000-000000000001",
		UserID:      "u1",
		Filename:    "rapport_commandes_livraisons_20240401_120000.xlsx",
		DateStart:   "2024-03-01",
		DateEnd:     "2024-03-31",
		OrderCount:  3,
		SizeBytes:   5120,
		GeneratedAt: time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, p.PublishGenerated(context.Background(), ev))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, ev.RequestID, string(msg.Key))

	var got map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, ev.Filename, got["filename"])
	assert.Equal(t, float64(3), got["order_count"])
	assert.Equal(t, "2024-03-01", got["date_start"])

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "application/json", headers["content-type"])
	assert.Equal(t, "report.generated", headers["event-type"])
}

func TestPublishGenerated_ErrorDelBroker(t *testing.T) {
	p := &Producer{w: &recordingWriter{err: errors.New("broker caído")}}

	err := p.PublishGenerated(context.Background(), report.GeneratedEvent{RequestID: "r1"})
	assert.ErrorContains(t, err, "broker caído")
}
