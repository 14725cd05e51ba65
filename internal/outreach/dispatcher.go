package outreach

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/events"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/messaging/kafka"
	outreacherrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/outreach/errors"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/roster"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const outboxAggregateType = "outreach_log"

var chargeDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

type Dispatcher struct {
	db      *sql.DB
	repo    Repository
	entries roster.Repository
	outbox  kafka.OutboxRepository
	publish bool
	now     func() time.Time
	logger  *zap.Logger
}

// NewDispatcher wires the dispatcher. A nil outbox disables event
// publication for immediate dispatches.
func NewDispatcher(db *sql.DB, repo Repository, entries roster.Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) *Dispatcher {
	l := zap.L().Named("outreach.dispatcher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("outreach.dispatcher")
	}
	return &Dispatcher{
		db:      db,
		repo:    repo,
		entries: entries,
		outbox:  outbox,
		publish: outbox != nil,
		now:     time.Now,
		logger:  l,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, req DispatchRequest) (DispatchResult, error) {
	log := contextutil.GetLogger(ctx, d.logger)

	chargeDate, err := validateDispatch(&req)
	if err != nil {
		return DispatchResult{}, err
	}
	scheduled := chargeDate != nil

	entries, err := d.entries.FindActiveByIDs(ctx, req.EntryIDs)
	if err != nil {
		log.Error("dispatch fetch roster entries failed", zap.Int("requested", len(req.EntryIDs)), zap.Error(err))
		return DispatchResult{}, apperror.WithCause(outreacherrors.ErrFetchEntries, err)
	}

	period := CurrentPeriod(d.now())
	created := 0
	for _, entry := range entries {
		if err := d.createLog(ctx, entry, req, period, chargeDate); err != nil {
			log.Warn("dispatch log insert failed",
				zap.String("entry_id", entry.ID.String()),
				zap.String("empresa_codigo", entry.CompanyCode),
				zap.Error(err),
			)
			continue
		}
		created++
	}

	log.Info("dispatch completed",
		zap.Int("requested", len(req.EntryIDs)),
		zap.Int("found", len(entries)),
		zap.Int("created", created),
		zap.Bool("scheduled", scheduled),
		zap.String("competencia", period),
	)

	res := DispatchResult{LogsCreated: created, Scheduled: scheduled}
	if scheduled {
		res.Message = fmt.Sprintf("Cobranças agendadas para %s", req.ChargeDate)
	} else {
		res.Message = fmt.Sprintf("%d cobranças criadas. O n8n processará os envios.", created)
	}
	return res, nil
}

// createLog writes one log, plus its outbox event for immediate sends, in
// its own transaction so one bad row does not undo the others.
func (d *Dispatcher) createLog(ctx context.Context, entry roster.EntryDetail, req DispatchRequest, period string, chargeDate *time.Time) error {
	l := &Log{
		ID:         uuid.New(),
		EntryID:    entry.ID,
		CompanyID:  entry.CompanyID,
		Phone:      entry.DestinationPhone(),
		Kind:       req.Kind,
		Status:     StatusPending,
		Period:     period,
		ChargeDate: chargeDate,
	}
	switch req.Kind {
	case KindText:
		msg := req.Message
		l.Message = &msg
	case KindAudio:
		url := req.AudioURL
		l.FileURL = &url
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := d.repo.WithTx(tx).Create(ctx, l); err != nil {
		return err
	}

	if d.publish && chargeDate == nil {
		payload, err := json.Marshal(events.OutreachDispatchRequested{
			EventType:  events.OutreachDispatchRequestedEvent,
			RequestID:  contextutil.GetRequestID(ctx),
			LogID:      l.ID.String(),
			EntryID:    l.EntryID.String(),
			CompanyID:  l.CompanyID.String(),
			Period:     period,
			OccurredAt: d.now().UTC(),
		})
		if err != nil {
			return err
		}
		event := kafka.NewOutboxEvent(
			uuid.NewString(),
			contextutil.GetRequestID(ctx),
			outboxAggregateType,
			l.ID.String(),
			events.OutreachDispatchRequestedEvent,
			events.OutreachDispatchTopic,
			payload,
		)
		if err := d.outbox.WithTx(tx).Create(ctx, event); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func validateDispatch(req *DispatchRequest) (*time.Time, error) {
	if len(req.EntryIDs) == 0 {
		return nil, outreacherrors.ErrEntryIDsRequired
	}

	req.Kind = strings.ToUpper(strings.TrimSpace(req.Kind))
	if req.Kind == "" {
		req.Kind = KindText
	}
	if !IsValidKind(req.Kind) {
		return nil, outreacherrors.ErrInvalidKind
	}
	if req.Kind == KindText && strings.TrimSpace(req.Message) == "" {
		return nil, outreacherrors.ErrMessageRequired
	}
	if req.Kind == KindAudio && strings.TrimSpace(req.AudioURL) == "" {
		return nil, outreacherrors.ErrAudioRequired
	}

	req.ChargeDate = strings.TrimSpace(req.ChargeDate)
	if req.ChargeDate == "" {
		if req.Schedule {
			return nil, outreacherrors.ErrDateRequired
		}
		return nil, nil
	}

	for _, layout := range chargeDateLayouts {
		if t, err := time.ParseInLocation(layout, req.ChargeDate, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, outreacherrors.ErrInvalidDate
}
