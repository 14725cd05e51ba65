package producer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/messaging/kafka"
	kafkaMock "github.com/lFelipelalves/Crm-Wsc-Clean/internal/messaging/kafka/mock"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failTopic string
	written   []kafkago.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if m.Topic == w.failTopic {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestProcessBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("marks sent and failed per event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failTopic: "broken"}

		repo.EXPECT().ListPending(gomock.Any(), kafka.DefaultBatchSize).Return([]kafka.OutboxEvent{
			kafka.NewOutboxEvent("evt-1", "req-1", "outreach_log", "log-1", "outreach.dispatch.requested", "wsc.outreach.dispatch.v1", []byte(`{}`)),
			kafka.NewOutboxEvent("evt-2", "req-2", "outreach_log", "log-2", "outreach.dispatch.requested", "broken", []byte(`{}`)),
		}, nil)
		repo.EXPECT().MarkSent(gomock.Any(), "evt-1").Return(nil)
		repo.EXPECT().MarkFailed(gomock.Any(), "evt-2", "broker unavailable").Return(nil)

		sent, err := producer.ProcessBatch(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Len(t, writer.written, 1)
		assert.Equal(t, []byte("log-1"), writer.written[0].Key)
	})

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ListPending(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := producer.ProcessBatch(ctx, repo, &fakeWriter{}, zap.NewNop())
		assert.Error(t, err)
	})
}
