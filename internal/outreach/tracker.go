package outreach

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/alert"
	outreacherrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/outreach/errors"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/roster"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	alertTimeout         = 10 * time.Second
	defaultFailureReason = "Erro desconhecido"
)

// OutcomeRecorder applies delivery results to a log.
type OutcomeRecorder interface {
	ApplyOutcome(ctx context.Context, outcome Outcome) error
}

// DeliveryRecorder is the tracker as seen by the sender, which must claim a
// log before posting it.
type DeliveryRecorder interface {
	OutcomeRecorder
	Claim(ctx context.Context, logID string) error
}

type Tracker struct {
	db       *sql.DB
	repo     Repository
	entries  roster.Repository
	stats    *roster.StatsCache
	notifier alert.Notifier
	now      func() time.Time
	logger   *zap.Logger

	alerts sync.WaitGroup
}

func NewTracker(db *sql.DB, repo Repository, entries roster.Repository, stats *roster.StatsCache, notifier alert.Notifier, logger ...*zap.Logger) *Tracker {
	l := zap.L().Named("outreach.tracker")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("outreach.tracker")
	}
	if notifier == nil {
		notifier = alert.Nop{}
	}
	return &Tracker{
		db:       db,
		repo:     repo,
		entries:  entries,
		stats:    stats,
		notifier: notifier,
		now:      time.Now,
		logger:   l,
	}
}

// ApplyOutcome moves the log through the delivery state machine and keeps
// the roster entry aggregate in step with it.
func (t *Tracker) ApplyOutcome(ctx context.Context, o Outcome) error {
	log := contextutil.GetLogger(ctx, t.logger)

	o.LogID = strings.TrimSpace(o.LogID)
	o.Status = strings.ToUpper(strings.TrimSpace(o.Status))
	if o.LogID == "" || o.Status == "" {
		return outreacherrors.ErrOutcomeFieldsRequired
	}
	if !IsOutcomeStatus(o.Status) {
		return outreacherrors.ErrInvalidOutcomeStatus
	}
	if _, err := uuid.Parse(o.LogID); err != nil {
		return outreacherrors.ErrLogNotFound
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("apply outcome begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := t.repo.WithTx(tx)
	current, err := qtx.FindForUpdate(ctx, o.LogID)
	if err != nil {
		return mapRepositoryError(err)
	}

	if !CanTransition(current.Status, o.Status) {
		log.Warn("rejected outcome transition",
			zap.String("log_id", o.LogID),
			zap.String("from", current.Status),
			zap.String("to", o.Status),
		)
		return outreacherrors.ErrInvalidTransition
	}

	now := t.now()
	fields := map[string]any{"status_envio": o.Status}
	var entryFields map[string]any

	switch o.Status {
	case StatusSent:
		if len(o.Response) > 0 {
			fields["webhook_response"] = datatypes.JSON(o.Response)
		}
		if current.Status != StatusSent {
			fields["enviado_em"] = now
			fields["erro_mensagem"] = nil
			entryFields = map[string]any{
				"status_ponto":    roster.StatusSent,
				"ultima_cobranca": now,
			}
		}
	case StatusError:
		if o.ErrorMessage == "" {
			o.ErrorMessage = defaultFailureReason
		}
		fields["erro_mensagem"] = o.ErrorMessage
		if len(o.Response) > 0 {
			fields["webhook_response"] = datatypes.JSON(o.Response)
		}
		entryFields = map[string]any{"status_ponto": roster.StatusError}
	}

	if err := qtx.UpdateFields(ctx, o.LogID, fields); err != nil {
		return mapRepositoryError(err)
	}

	if entryFields != nil {
		err := t.entries.WithTx(tx).UpdateFields(ctx, current.EntryID.String(), entryFields)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("outcome roster entry missing", zap.String("entry_id", current.EntryID.String()))
		} else if err != nil {
			return mapRepositoryError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("apply outcome commit failed", zap.Error(err))
		return err
	}

	if entryFields != nil {
		t.stats.Invalidate(ctx)
	}

	log.Info("outcome applied",
		zap.String("log_id", o.LogID),
		zap.String("from", current.Status),
		zap.String("to", o.Status),
	)

	if o.Status == StatusError {
		t.notifyFailure(ctx, current, o.ErrorMessage, now)
	}
	return nil
}

// Claim moves a PENDENTE or ERRO log to ENVIANDO under the row lock. Only
// one caller can win the claim, so a log is posted at most once per attempt.
func (t *Tracker) Claim(ctx context.Context, logID string) error {
	log := contextutil.GetLogger(ctx, t.logger)

	logID = strings.TrimSpace(logID)
	if _, err := uuid.Parse(logID); err != nil {
		return outreacherrors.ErrLogNotFound
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("claim begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := t.repo.WithTx(tx)
	current, err := qtx.FindForUpdate(ctx, logID)
	if err != nil {
		return mapRepositoryError(err)
	}

	switch current.Status {
	case StatusPending, StatusError:
	case StatusSent:
		return outreacherrors.ErrAlreadySent
	case StatusSending:
		log.Warn("log already in flight", zap.String("log_id", logID))
		return outreacherrors.ErrAlreadyInFlight
	default:
		return outreacherrors.ErrInvalidTransition
	}

	if err := qtx.UpdateFields(ctx, logID, map[string]any{"status_envio": StatusSending}); err != nil {
		return mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		log.Error("claim commit failed", zap.Error(err))
		return err
	}

	log.Info("log claimed", zap.String("log_id", logID), zap.String("from", current.Status))
	return nil
}

func (t *Tracker) notifyFailure(ctx context.Context, l *Log, reason string, at time.Time) {
	t.alerts.Add(1)
	go func() {
		defer t.alerts.Done()

		actx, cancel := context.WithTimeout(context.WithoutCancel(ctx), alertTimeout)
		defer cancel()

		failure := alert.DeliveryFailure{
			LogID:  l.ID.String(),
			Phone:  l.Phone,
			Period: l.Period,
			Reason: reason,
			At:     at,
		}
		if detail, err := t.repo.FindDetailByID(actx, l.ID.String()); err == nil {
			failure.CompanyCode = detail.CompanyCode
			failure.CompanyName = detail.CompanyName
		}

		if err := t.notifier.DeliveryFailed(actx, failure); err != nil {
			t.logger.Warn("delivery failure alert not sent", zap.String("log_id", failure.LogID), zap.Error(err))
		}
	}()
}

// Wait blocks until pending failure alerts have been handed off.
func (t *Tracker) Wait() {
	t.alerts.Wait()
}
