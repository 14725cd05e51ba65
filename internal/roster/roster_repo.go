package roster

import (
	"context"
	"database/sql"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/dbtx"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/scope"

	"gorm.io/gorm"
)

const detailColumns = `empresas_cobranca_ponto.*,
	empresas.codigo AS empresa_codigo,
	empresas.razao_social AS empresa_nome,
	empresas.responsavel AS empresa_responsavel,
	empresas.telefone AS empresa_telefone`

//go:generate mockgen -source=roster_repo.go -destination=mock/roster_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindActive(ctx context.Context, day *int) ([]EntryDetail, error)
	FindActiveByIDs(ctx context.Context, ids []string) ([]EntryDetail, error)
	FindAvailableCompanies(ctx context.Context) ([]AvailableCompany, error)
	FindByID(ctx context.Context, id string) (*Entry, error)
	FindDetailByID(ctx context.Context, id string) (*EntryDetail, error)
	ExistsActiveForCompany(ctx context.Context, companyID string) (bool, error)
	Create(ctx context.Context, entry *Entry) error
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	ResetActive(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: dbtx.Bind(r.db, tx)}
}

func (r *repository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("empresas_cobranca_ponto").
		Select(detailColumns).
		Joins("JOIN empresas ON empresas.id = empresas_cobranca_ponto.empresa_id")
}

func (r *repository) FindActive(ctx context.Context, day *int) ([]EntryDetail, error) {
	var rows []EntryDetail
	err := r.detailQuery(ctx).
		Scopes(
			scope.Active("empresas_cobranca_ponto"),
			scope.DueDay("empresas_cobranca_ponto", day),
		).
		Order("empresas_cobranca_ponto.dia_cobranca ASC").
		Order("empresas.codigo ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindActiveByIDs(ctx context.Context, ids []string) ([]EntryDetail, error) {
	var rows []EntryDetail
	err := r.detailQuery(ctx).
		Scopes(scope.Active("empresas_cobranca_ponto")).
		Where("empresas_cobranca_ponto.id IN ?", ids).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindAvailableCompanies(ctx context.Context) ([]AvailableCompany, error) {
	var rows []AvailableCompany
	err := r.db.WithContext(ctx).
		Table("empresas").
		Select("empresas.id, empresas.codigo, empresas.razao_social, empresas.telefone").
		Scopes(scope.Active("empresas")).
		Where(`NOT EXISTS (
			SELECT 1 FROM empresas_cobranca_ponto ecp
			WHERE ecp.empresa_id = empresas.id AND ecp.ativo = true
		)`).
		Order("empresas.codigo ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Entry, error) {
	var e Entry
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindDetailByID(ctx context.Context, id string) (*EntryDetail, error) {
	var rows []EntryDetail
	err := r.detailQuery(ctx).
		Where("empresas_cobranca_ponto.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *repository) ExistsActiveForCompany(ctx context.Context, companyID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Entry{}).
		Scopes(scope.Active("")).
		Where("empresa_id = ?", companyID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Create(ctx context.Context, entry *Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	fields["updated_at"] = gorm.Expr("now()")
	res := r.db.WithContext(ctx).
		Model(&Entry{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ResetActive(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Entry{}).
		Scopes(scope.Active("")).
		Updates(map[string]any{
			"status_ponto":    StatusPending,
			"ultima_cobranca": nil,
			"updated_at":      gorm.Expr("now()"),
		})
	return res.RowsAffected, res.Error
}

func (r *repository) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.WithContext(ctx).
		Model(&Entry{}).
		Select("status_ponto, COUNT(*) AS total").
		Scopes(scope.Active("")).
		Group("status_ponto").
		Scan(&rows).Error
	return rows, err
}
