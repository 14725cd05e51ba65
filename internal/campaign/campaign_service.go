package campaign

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"time"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/audit"
	campaignerrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/campaign/errors"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/outreach"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/roster"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=campaign_service.go -destination=mock/campaign_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateListRequest) (ListResponse, error)
	List(ctx context.Context) ([]ListResponse, error)
	Get(ctx context.Context, id string) (ListDetailResponse, error)
	Active(ctx context.Context) (ListDetailResponse, error)
	Finalize(ctx context.Context, id string) error
	UpdateItemStatus(ctx context.Context, itemID string, req UpdateItemStatusRequest) error
	BulkUpdateItemStatus(ctx context.Context, req BulkUpdateRequest) (int, error)
	UpdateItemResponse(ctx context.Context, itemID, status string) error
	CloseMonth(ctx context.Context, now time.Time) (CloseMonthResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	entries roster.Repository
	audit   audit.Logger
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, entries roster.Repository, auditLogger audit.Logger, logger ...*zap.Logger) Service {
	l := zap.L().Named("campaign.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("campaign.service")
	}
	if auditLogger == nil {
		auditLogger = audit.Nop{}
	}
	return &service{db: db, repo: repo, entries: entries, audit: auditLogger, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateListRequest) (ListResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return ListResponse{}, apperror.RequiredField("Nome")
	}
	kind := strings.ToUpper(strings.TrimSpace(req.DefaultKind))
	if kind != "" && !outreach.IsValidKind(kind) {
		return ListResponse{}, campaignerrors.ErrInvalidKind
	}

	rows, err := s.entries.FindActive(ctx, DueDayFilter(req.FilterDay01, req.FilterDay25))
	if err != nil {
		log.Error("load roster for campaign failed", zap.Error(err))
		return ListResponse{}, mapRepositoryError(err, nil)
	}
	if req.FilterPending {
		pending := rows[:0]
		for _, row := range rows {
			if row.Status == roster.StatusPending {
				pending = append(pending, row)
			}
		}
		rows = pending
	}

	list := &List{
		ID:             uuid.New(),
		Name:           name,
		Type:           strings.TrimSpace(req.Type),
		Period:         outreach.CurrentPeriod(time.Now()),
		FilterDay01:    req.FilterDay01,
		FilterDay25:    req.FilterDay25,
		FilterPending:  req.FilterPending,
		Status:         ListStatusActive,
		TotalCompanies: len(rows),
		DefaultMessage: optional(req.DefaultMessage),
		DefaultKind:    optional(kind),
		AudioURL:       optional(req.AudioURL),
	}
	items := make([]Item, len(rows))
	for i, row := range rows {
		items[i] = Item{
			ID:             uuid.New(),
			ListID:         list.ID,
			CompanyID:      row.CompanyID,
			SendStatus:     SendStatusWaiting,
			ResponseStatus: ResponsePending,
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ListResponse{}, apperror.WithCause(apperror.ErrUpstream, err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.CreateList(ctx, list); err != nil {
		return ListResponse{}, mapRepositoryError(err, nil)
	}
	if err := qtx.CreateItems(ctx, items); err != nil {
		return ListResponse{}, mapRepositoryError(err, nil)
	}
	if err := tx.Commit(); err != nil {
		return ListResponse{}, apperror.WithCause(apperror.ErrUpstream, err)
	}

	log.Info("campaign list created",
		zap.String("lista_id", list.ID.String()),
		zap.String("competencia", list.Period),
		zap.Int("total_empresas", list.TotalCompanies),
	)
	return mapListToResponse(*list), nil
}

func (s *service) List(ctx context.Context) ([]ListResponse, error) {
	lists, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err, nil)
	}
	res := make([]ListResponse, len(lists))
	for i, l := range lists {
		res[i] = mapListToResponse(l)
	}
	return res, nil
}

func (s *service) Get(ctx context.Context, id string) (ListDetailResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ListDetailResponse{}, campaignerrors.ErrInvalidID
	}
	list, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ListDetailResponse{}, mapRepositoryError(err, campaignerrors.ErrListNotFound)
	}
	return s.withItems(ctx, list)
}

func (s *service) Active(ctx context.Context) (ListDetailResponse, error) {
	list, err := s.repo.FindLatestActive(ctx)
	if err != nil {
		return ListDetailResponse{}, mapRepositoryError(err, campaignerrors.ErrNoActiveList)
	}
	return s.withItems(ctx, list)
}

func (s *service) withItems(ctx context.Context, list *List) (ListDetailResponse, error) {
	rows, err := s.repo.FindItems(ctx, list.ID.String())
	if err != nil {
		return ListDetailResponse{}, mapRepositoryError(err, nil)
	}
	items := make([]ItemResponse, len(rows))
	for i, row := range rows {
		items[i] = mapItemToResponse(row)
	}
	return ListDetailResponse{ListResponse: mapListToResponse(*list), Items: items}, nil
}

func (s *service) Finalize(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return campaignerrors.ErrInvalidID
	}
	if err := s.repo.UpdateListStatus(ctx, id, ListStatusFinalized); err != nil {
		return mapRepositoryError(err, campaignerrors.ErrListNotFound)
	}
	contextutil.GetLogger(ctx, s.logger).Info("campaign list finalized", zap.String("lista_id", id))
	return nil
}

func (s *service) UpdateItemStatus(ctx context.Context, itemID string, req UpdateItemStatusRequest) error {
	status := strings.ToUpper(strings.TrimSpace(req.Status))
	if !IsSendStatus(status) {
		return campaignerrors.ErrInvalidSendStatus
	}
	if _, err := uuid.Parse(itemID); err != nil {
		return campaignerrors.ErrInvalidID
	}

	fields := sendStatusFields(status, time.Now())
	if req.Notes != nil {
		fields["observacoes"] = strings.TrimSpace(*req.Notes)
	}
	_, err := s.updateItems(ctx, []string{itemID}, fields)
	return err
}

func (s *service) BulkUpdateItemStatus(ctx context.Context, req BulkUpdateRequest) (int, error) {
	if len(req.IDs) == 0 {
		return 0, campaignerrors.ErrIDsRequired
	}
	for _, id := range req.IDs {
		if _, err := uuid.Parse(id); err != nil {
			return 0, campaignerrors.ErrInvalidID
		}
	}
	status := strings.ToUpper(strings.TrimSpace(req.Status))
	if !IsSendStatus(status) {
		return 0, campaignerrors.ErrInvalidSendStatus
	}
	kind := strings.ToUpper(strings.TrimSpace(req.Kind))
	if kind != "" && !outreach.IsValidKind(kind) {
		return 0, campaignerrors.ErrInvalidKind
	}

	fields := sendStatusFields(status, time.Now())
	if status == SendStatusSent {
		if req.Message != "" {
			fields["mensagem_enviada"] = req.Message
		}
		if kind != "" {
			fields["tipo_mensagem"] = kind
		}
	}
	return s.updateItems(ctx, req.IDs, fields)
}

// updateItems applies fields to the items and recomputes total_enviados of
// every list they belong to, all in one transaction.
func (s *service) updateItems(ctx context.Context, ids []string, fields map[string]any) (int, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, apperror.WithCause(apperror.ErrUpstream, err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	items, err := qtx.FindItemsByIDs(ctx, ids)
	if err != nil {
		return 0, mapRepositoryError(err, campaignerrors.ErrItemNotFound)
	}
	if len(items) == 0 {
		return 0, campaignerrors.ErrItemNotFound
	}

	if err := qtx.UpdateItems(ctx, ids, fields); err != nil {
		return 0, mapRepositoryError(err, campaignerrors.ErrItemNotFound)
	}
	for _, listID := range touchedLists(items) {
		if err := qtx.RecomputeSent(ctx, listID); err != nil {
			log.Error("recompute total_enviados failed", zap.String("lista_id", listID), zap.Error(err))
			return 0, mapRepositoryError(err, nil)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, apperror.WithCause(apperror.ErrUpstream, err)
	}

	log.Info("campaign items updated", zap.Int("items", len(items)), zap.Any("status_envio", fields["status_envio"]))
	return len(items), nil
}

func (s *service) UpdateItemResponse(ctx context.Context, itemID, status string) error {
	status = strings.ToUpper(strings.TrimSpace(status))
	if !IsResponseStatus(status) {
		return campaignerrors.ErrInvalidResponseStatus
	}
	if _, err := uuid.Parse(itemID); err != nil {
		return campaignerrors.ErrInvalidID
	}
	err := s.repo.UpdateItems(ctx, []string{itemID}, map[string]any{"status_resposta": status})
	return mapRepositoryError(err, campaignerrors.ErrItemNotFound)
}

func (s *service) CloseMonth(ctx context.Context, now time.Time) (CloseMonthResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if now.Day() < CloseMonthFromDay {
		return CloseMonthResponse{}, campaignerrors.ErrCloseMonthTooEarly
	}

	n, err := s.repo.FinalizeActive(ctx)
	if err != nil {
		log.Error("close month failed", zap.Error(err))
		return CloseMonthResponse{}, mapRepositoryError(err, nil)
	}

	s.audit.Log(ctx, audit.Entry{
		Action:  audit.ActionCampaignMonthClosed,
		Message: "active campaign lists finalized",
		Meta:    map[string]any{"lists": n, "competencia": outreach.CurrentPeriod(now)},
	})
	log.Info("campaign month closed", zap.Int64("lists", n))

	return CloseMonthResponse{Finalized: n}, nil
}

func sendStatusFields(status string, now time.Time) map[string]any {
	fields := map[string]any{"status_envio": status}
	if status == SendStatusSent {
		fields["data_envio"] = now
	}
	return fields
}

func touchedLists(items []Item) []string {
	seen := make(map[string]struct{}, len(items))
	var ids []string
	for _, it := range items {
		id := it.ListID.String()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func mapListToResponse(l List) ListResponse {
	return ListResponse{
		ID:             l.ID.String(),
		Name:           l.Name,
		Type:           l.Type,
		Period:         l.Period,
		FilterDay01:    l.FilterDay01,
		FilterDay25:    l.FilterDay25,
		FilterPending:  l.FilterPending,
		Status:         l.Status,
		TotalCompanies: l.TotalCompanies,
		TotalSent:      l.TotalSent,
		DefaultMessage: l.DefaultMessage,
		DefaultKind:    l.DefaultKind,
		AudioURL:       l.AudioURL,
		CreatedAt:      l.CreatedAt.Format(time.RFC3339),
	}
}

func mapItemToResponse(d ItemDetail) ItemResponse {
	var sentAt *string
	if d.SentAt != nil {
		v := d.SentAt.Format(time.RFC3339)
		sentAt = &v
	}
	return ItemResponse{
		ID:             d.ID.String(),
		ListID:         d.ListID.String(),
		CompanyID:      d.CompanyID.String(),
		SendStatus:     d.SendStatus,
		ResponseStatus: d.ResponseStatus,
		Attempts:       d.Attempts,
		SentAt:         sentAt,
		SentMessage:    d.SentMessage,
		Kind:           d.Kind,
		Notes:          d.Notes,
		Company: &ItemCompany{
			ID:    d.CompanyID.String(),
			Code:  d.CompanyCode,
			Name:  d.CompanyName,
			Phone: d.CompanyPhone,
		},
	}
}
