package outreach

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	outreacherrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/outreach/errors"
	rostererrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/roster/errors"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Queries struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewQueries(repo Repository, logger ...*zap.Logger) *Queries {
	l := zap.L().Named("outreach.queries")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("outreach.queries")
	}
	return &Queries{repo: repo, now: time.Now, logger: l}
}

func (q *Queries) resolvePeriod(period string) (string, error) {
	period = strings.TrimSpace(period)
	if period == "" {
		return CurrentPeriod(q.now()), nil
	}
	if !IsValidPeriod(period) {
		return "", outreacherrors.ErrInvalidPeriod
	}
	return period, nil
}

// ListByPeriod returns the period's logs, newest first. An empty period
// means the current one.
func (q *Queries) ListByPeriod(ctx context.Context, period string) ([]LogResponse, error) {
	p, err := q.resolvePeriod(period)
	if err != nil {
		return nil, err
	}

	rows, err := q.repo.FindByPeriod(ctx, p)
	if err != nil {
		q.logger.Error("list logs by period failed", zap.String("competencia", p), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]LogResponse, len(rows))
	for i, row := range rows {
		r := mapLogToResponse(row.Log)
		r.Company = &LogCompany{
			Code:        row.CompanyCode,
			LegalName:   row.CompanyName,
			Responsible: row.CompanyResponsible,
			DueDay:      row.DueDay,
		}
		res[i] = r
	}
	return res, nil
}

func (q *Queries) ListByEntry(ctx context.Context, entryID string) ([]LogResponse, error) {
	if _, err := uuid.Parse(entryID); err != nil {
		return nil, rostererrors.ErrInvalidEntryID
	}

	logs, err := q.repo.FindByEntry(ctx, entryID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]LogResponse, len(logs))
	for i, l := range logs {
		res[i] = mapLogToResponse(l)
	}
	return res, nil
}

func (q *Queries) StatsByPeriod(ctx context.Context, period string) (PeriodStats, error) {
	p, err := q.resolvePeriod(period)
	if err != nil {
		return PeriodStats{}, err
	}

	rows, err := q.repo.CountByStatus(ctx, p)
	if err != nil {
		return PeriodStats{}, mapRepositoryError(err)
	}

	stats := PeriodStats{Period: p}
	for _, row := range rows {
		stats.Total += row.Total
		switch row.Status {
		case StatusSent:
			stats.Sent += row.Total
		case StatusError:
			stats.Errors += row.Total
		case StatusPending, StatusSending:
			stats.Waiting += row.Total
		}
	}
	return stats, nil
}

func (q *Queries) Pending(ctx context.Context) ([]PendingCharge, error) {
	rows, err := q.repo.FindPending(ctx)
	if err != nil {
		q.logger.Error("fetch pending charges failed", zap.Error(err))
		return nil, apperror.WithCause(outreacherrors.ErrPendingFetch, err)
	}
	if rows == nil {
		rows = []PendingCharge{}
	}
	return rows, nil
}

func mapLogToResponse(l Log) LogResponse {
	r := LogResponse{
		ID:           l.ID.String(),
		EntryID:      l.EntryID.String(),
		CompanyID:    l.CompanyID.String(),
		Phone:        l.Phone,
		Message:      l.Message,
		Kind:         l.Kind,
		FileURL:      l.FileURL,
		Status:       l.Status,
		SentAt:       formatTime(l.SentAt),
		ErrorMessage: l.ErrorMessage,
		Period:       l.Period,
		ChargeDate:   formatTime(l.ChargeDate),
		CreatedAt:    l.CreatedAt.Format(time.RFC3339),
	}
	if len(l.WebhookResponse) > 0 {
		r.WebhookResponse = json.RawMessage(l.WebhookResponse)
	}
	return r
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}
