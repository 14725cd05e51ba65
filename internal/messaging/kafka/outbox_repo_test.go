package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestOutboxRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	event := kafka.NewOutboxEvent("evt-1", "req-1", "outreach_log", "log-1", "outreach.dispatch.requested", "wsc.outreach.dispatch.v1", []byte(`{"log_id":"log-1"}`))

	t.Run("inside tx", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
			WithArgs("evt-1", "req-1", "outreach_log", "log-1", "outreach.dispatch.requested", "wsc.outreach.dispatch.v1", []byte(`{"log_id":"log-1"}`), kafka.OutboxStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Begin()
		assert.NoError(t, err)
		assert.NoError(t, repo.WithTx(tx).Create(context.Background(), event))
		assert.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects invalid event", func(t *testing.T) {
		bad := event
		bad.Payload = nil
		assert.Error(t, repo.Create(context.Background(), bad))
	})
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at"}).
		AddRow("evt-1", "req-1", "outreach_log", "log-1", "outreach.dispatch.requested", "wsc.outreach.dispatch.v1", []byte(`{}`), "pending", 0, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM outbox_events")).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 10).
		WillReturnRows(rows)

	got, err := kafka.NewOutboxRepository(db).ListPending(context.Background(), 10)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "req-1", got[0].RequestID)
	assert.Equal(t, "log-1", got[0].AggregateID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs("evt-1", kafka.OutboxStatusFailed, "broker down", kafka.MaxOutboxRetries, kafka.OutboxStatusDead).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, kafka.NewOutboxRepository(db).MarkFailed(context.Background(), "evt-1", "broker down"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := kafka.NewOutboxRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs("evt-1", kafka.OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs("evt-missing", kafka.OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.MarkSent(context.Background(), "evt-1"))
	assert.ErrorIs(t, repo.MarkSent(context.Background(), "evt-missing"), kafka.ErrOutboxEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
