package kafka

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const (
	DefaultBatchSize = 50

	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
	// OutboxStatusDead rows exhausted MaxOutboxRetries and are left for an
	// operator.
	OutboxStatusDead = "dead"

	MaxOutboxRetries = 10
)

type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	NextRetryAt   time.Time
}

// NewOutboxEvent builds a pending event for the given aggregate.
func NewOutboxEvent(id, requestID, aggregateType, aggregateID, eventType, topic string, payload []byte) OutboxEvent {
	return OutboxEvent{
		ID:            id,
		RequestID:     requestID,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       payload,
		Status:        OutboxStatusPending,
	}
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

// ErrOutboxEventNotFound is returned when a mark targets a missing row.
var ErrOutboxEventNotFound = errors.New("outbox event not found")

const outboxColumns = `id::text, COALESCE(request_id, ''), aggregate_type, aggregate_id::text,
	event_type, topic, payload, status, retry_count, COALESCE(next_retry_at, created_at)`

type outboxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx}
}

// Create is meant to run on a repository bound to the transaction that
// writes the aggregate row.
func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}

	_, err := r.execer().ExecContext(ctx, `
		INSERT INTO outbox_events
			(id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		event.ID, event.RequestID, event.AggregateType, event.AggregateID,
		event.EventType, event.Topic, event.Payload, event.Status,
	)
	if err != nil {
		return fmt.Errorf("insert outbox event %s: %w", event.ID, err)
	}
	return nil
}

// ListPending returns pending rows and failed rows whose backoff has
// elapsed, oldest first. Dead rows are never returned.
func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+outboxColumns+`
		FROM outbox_events
		WHERE status IN ($1, $2)
			AND (next_retry_at IS NULL OR next_retry_at <= NOW())
		ORDER BY created_at
		LIMIT $3`,
		OutboxStatusPending, OutboxStatusFailed, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []OutboxEvent
	for rows.Next() {
		e, err := scanOutboxEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	return r.update(ctx, `
		UPDATE outbox_events
		SET status = $2, processed_at = NOW(), error_message = NULL, updated_at = NOW()
		WHERE id = $1`,
		id, OutboxStatusSent,
	)
}

// MarkFailed schedules a retry with linear backoff (15s per attempt, capped
// at 150s) or parks the row as dead once MaxOutboxRetries is reached.
func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return r.update(ctx, `
		UPDATE outbox_events
		SET status = CASE WHEN retry_count + 1 >= $4 THEN $5 ELSE $2 END,
			retry_count = retry_count + 1,
			error_message = LEFT($3, 500),
			next_retry_at = NOW() + (LEAST(retry_count + 1, 10) * INTERVAL '15 seconds'),
			updated_at = NOW()
		WHERE id = $1`,
		id, OutboxStatusFailed, reason, MaxOutboxRetries, OutboxStatusDead,
	)
}

func (r *outboxRepository) update(ctx context.Context, query string, args ...any) error {
	res, err := r.execer().ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOutboxEventNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOutboxEvent(row rowScanner) (OutboxEvent, error) {
	var e OutboxEvent
	err := row.Scan(
		&e.ID, &e.RequestID, &e.AggregateType, &e.AggregateID,
		&e.EventType, &e.Topic, &e.Payload, &e.Status,
		&e.RetryCount, &e.NextRetryAt,
	)
	return e, err
}

// execer writes through the bound transaction when there is one.
func (r *outboxRepository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func ValidateOutboxEvent(event OutboxEvent) error {
	var errs []error
	if event.ID == "" {
		errs = append(errs, errors.New("outbox id is required"))
	}
	if event.AggregateID == "" || event.AggregateType == "" {
		errs = append(errs, errors.New("outbox aggregate is required"))
	}
	if event.EventType == "" || event.Topic == "" {
		errs = append(errs, errors.New("outbox event type and topic are required"))
	}
	if len(event.Payload) == 0 {
		errs = append(errs, errors.New("outbox payload is required"))
	}
	if event.Status != OutboxStatusPending {
		errs = append(errs, fmt.Errorf("new outbox events must be %s, got %q", OutboxStatusPending, event.Status))
	}
	return errors.Join(errs...)
}
