package roster

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/audit"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/company"
	companyerrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/company/errors"
	rostererrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/roster/errors"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/contextutil"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/phone"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const resetConfirmationWord = "confirmar"

//go:generate mockgen -source=roster_service.go -destination=mock/roster_service_mock.go -package=mock
type Service interface {
	ListActive(ctx context.Context, filter ListFilter) ([]EntryResponse, error)
	ListAvailableCompanies(ctx context.Context) ([]AvailableCompanyResponse, error)
	Add(ctx context.Context, req AddEntryRequest) (EntryResponse, error)
	Remove(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateNotes(ctx context.Context, id, notes string) error
	UpdatePhone(ctx context.Context, id, phone string) error
	Reset(ctx context.Context, confirmation string) (ResetResponse, error)
	Stats(ctx context.Context) (StatsResponse, error)
}

type service struct {
	repo      Repository
	companies company.Repository
	stats     *StatsCache
	audit     audit.Logger
	logger    *zap.Logger
}

func NewService(repo Repository, companies company.Repository, stats *StatsCache, auditLogger audit.Logger, logger ...*zap.Logger) Service {
	l := zap.L().Named("roster.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("roster.service")
	}
	if auditLogger == nil {
		auditLogger = audit.Nop{}
	}
	if stats == nil {
		stats = NewStatsCache(nil)
	}
	return &service{repo: repo, companies: companies, stats: stats, audit: auditLogger, logger: l}
}

func (s *service) ListActive(ctx context.Context, filter ListFilter) ([]EntryResponse, error) {
	if filter.Day != nil && !IsValidDueDay(*filter.Day) {
		return nil, rostererrors.ErrInvalidDueDay
	}

	rows, err := s.repo.FindActive(ctx, filter.Day)
	if err != nil {
		s.logger.Error("list roster failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]EntryResponse, len(rows))
	for i, row := range rows {
		res[i] = mapDetailToResponse(row)
	}
	return res, nil
}

func (s *service) ListAvailableCompanies(ctx context.Context) ([]AvailableCompanyResponse, error) {
	rows, err := s.repo.FindAvailableCompanies(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]AvailableCompanyResponse, len(rows))
	for i, row := range rows {
		res[i] = AvailableCompanyResponse{
			ID:        row.ID.String(),
			Code:      row.Code,
			LegalName: row.LegalName,
			Phone:     row.Phone,
		}
	}
	return res, nil
}

func (s *service) Add(ctx context.Context, req AddEntryRequest) (EntryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if !IsValidDueDay(req.DueDay) {
		return EntryResponse{}, rostererrors.ErrInvalidDueDay
	}
	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return EntryResponse{}, companyerrors.ErrInvalidCompanyID
	}
	tel, err := phone.Normalize(req.Phone)
	if err != nil {
		return EntryResponse{}, err
	}

	c, err := s.companies.FindByID(ctx, req.CompanyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EntryResponse{}, companyerrors.ErrCompanyNotFound
		}
		return EntryResponse{}, mapRepositoryError(err)
	}

	exists, err := s.repo.ExistsActiveForCompany(ctx, req.CompanyID)
	if err != nil {
		return EntryResponse{}, mapRepositoryError(err)
	}
	if exists {
		return EntryResponse{}, rostererrors.ErrAlreadyEnrolled
	}

	entry := &Entry{
		ID:        uuid.New(),
		CompanyID: companyID,
		DueDay:    req.DueDay,
		Phone:     tel,
		Status:    StatusPending,
		Notes:     strings.TrimSpace(req.Notes),
		Active:    true,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		log.Warn("add roster entry failed", zap.String("empresa_id", req.CompanyID), zap.Error(err))
		return EntryResponse{}, mapRepositoryError(err)
	}
	s.stats.Invalidate(ctx)

	log.Info("roster entry added",
		zap.String("entry_id", entry.ID.String()),
		zap.String("empresa_id", req.CompanyID),
		zap.Int("dia_cobranca", entry.DueDay),
	)

	return mapDetailToResponse(EntryDetail{
		Entry:              *entry,
		CompanyCode:        c.Code,
		CompanyName:        c.LegalName,
		CompanyResponsible: c.Responsible,
		CompanyPhone:       c.Phone,
	}), nil
}

func (s *service) Remove(ctx context.Context, id string) error {
	return s.update(ctx, id, map[string]any{"ativo": false})
}

func (s *service) UpdateStatus(ctx context.Context, id, status string) error {
	status = strings.ToUpper(strings.TrimSpace(status))
	if !IsStaffStatus(status) {
		return rostererrors.ErrInvalidStatus
	}
	return s.update(ctx, id, map[string]any{"status_ponto": status})
}

func (s *service) UpdateNotes(ctx context.Context, id, notes string) error {
	return s.update(ctx, id, map[string]any{"observacoes": strings.TrimSpace(notes)})
}

func (s *service) UpdatePhone(ctx context.Context, id, raw string) error {
	tel, err := phone.Normalize(raw)
	if err != nil {
		return err
	}
	return s.update(ctx, id, map[string]any{"telefone_cobranca": tel})
}

func (s *service) update(ctx context.Context, id string, fields map[string]any) error {
	if _, err := uuid.Parse(id); err != nil {
		return rostererrors.ErrInvalidEntryID
	}
	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return mapRepositoryError(err)
	}
	s.stats.Invalidate(ctx)
	return nil
}

func (s *service) Reset(ctx context.Context, confirmation string) (ResetResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if !strings.EqualFold(strings.TrimSpace(confirmation), resetConfirmationWord) {
		return ResetResponse{}, rostererrors.ErrConfirmationRequired
	}

	n, err := s.repo.ResetActive(ctx)
	if err != nil {
		log.Error("roster reset failed", zap.Error(err))
		return ResetResponse{}, mapRepositoryError(err)
	}
	s.stats.Invalidate(ctx)

	s.audit.Log(ctx, audit.Entry{
		Action:  audit.ActionRosterReset,
		Message: "roster status reset to PENDENTE",
		Meta:    map[string]any{"entries": n},
	})
	log.Info("roster reset", zap.Int64("entries", n))

	return ResetResponse{Reset: n}, nil
}

func (s *service) Stats(ctx context.Context) (StatsResponse, error) {
	return s.stats.Get(ctx, s.loadStats)
}

func (s *service) loadStats(ctx context.Context) (StatsResponse, error) {
	rows, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return StatsResponse{}, mapRepositoryError(err)
	}
	return tallyStats(rows), nil
}

func tallyStats(rows []StatusCount) StatsResponse {
	var resp StatsResponse
	for _, row := range rows {
		resp.Total += row.Total
		switch row.Status {
		case StatusPending:
			resp.Pending += row.Total
		case StatusReceived:
			resp.Received += row.Total
		case StatusNotReceived:
			resp.NotReceived += row.Total
		case StatusSent:
			resp.Sent += row.Total
		case StatusError:
			resp.Error += row.Total
		}
	}
	return resp
}

func mapDetailToResponse(d EntryDetail) EntryResponse {
	var last *string
	if d.LastChargedAt != nil {
		v := d.LastChargedAt.Format(time.RFC3339)
		last = &v
	}
	return EntryResponse{
		ID:            d.ID.String(),
		CompanyID:     d.CompanyID.String(),
		DueDay:        d.DueDay,
		Phone:         d.Phone,
		Status:        d.Status,
		Notes:         d.Notes,
		LastChargedAt: last,
		Active:        d.Active,
		Company: CompanySummary{
			ID:          d.CompanyID.String(),
			Code:        d.CompanyCode,
			LegalName:   d.CompanyName,
			Responsible: d.CompanyResponsible,
			Phone:       d.CompanyPhone,
		},
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
	}
}
