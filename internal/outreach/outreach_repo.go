package outreach

import (
	"context"
	"database/sql"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/dbtx"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const detailColumns = `log_cobranca_ponto.*,
	empresas.codigo AS empresa_codigo,
	empresas.razao_social AS empresa_nome,
	empresas.responsavel AS empresa_responsavel,
	empresas_cobranca_ponto.dia_cobranca AS dia_cobranca`

//go:generate mockgen -source=outreach_repo.go -destination=mock/outreach_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, log *Log) error
	FindByID(ctx context.Context, id string) (*Log, error)
	FindForUpdate(ctx context.Context, id string) (*Log, error)
	FindDetailByID(ctx context.Context, id string) (*LogDetail, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	FindByPeriod(ctx context.Context, period string) ([]LogDetail, error)
	FindByEntry(ctx context.Context, entryID string) ([]Log, error)
	CountByStatus(ctx context.Context, period string) ([]StatusCount, error)
	FindPending(ctx context.Context) ([]PendingCharge, error)
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
		Table("log_cobranca_ponto").
		Select(detailColumns).
		Joins("JOIN empresas ON empresas.id = log_cobranca_ponto.empresa_id").
		Joins("LEFT JOIN empresas_cobranca_ponto ON empresas_cobranca_ponto.id = log_cobranca_ponto.empresa_cobranca_id")
}

func (r *repository) Create(ctx context.Context, log *Log) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Log, error) {
	var l Log
	if err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// FindForUpdate locks the row until the surrounding transaction ends.
func (r *repository) FindForUpdate(ctx context.Context, id string) (*Log, error) {
	var l Log
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindDetailByID(ctx context.Context, id string) (*LogDetail, error) {
	var rows []LogDetail
	err := r.detailQuery(ctx).
		Where("log_cobranca_ponto.id = ?", id).
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

func (r *repository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	fields["updated_at"] = gorm.Expr("now()")
	res := r.db.WithContext(ctx).
		Model(&Log{}).
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

func (r *repository) FindByPeriod(ctx context.Context, period string) ([]LogDetail, error) {
	var rows []LogDetail
	err := r.detailQuery(ctx).
		Scopes(scope.Period("log_cobranca_ponto", period)).
		Order("log_cobranca_ponto.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByEntry(ctx context.Context, entryID string) ([]Log, error) {
	var logs []Log
	err := r.db.WithContext(ctx).
		Where("empresa_cobranca_id = ?", entryID).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}

func (r *repository) CountByStatus(ctx context.Context, period string) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.WithContext(ctx).
		Model(&Log{}).
		Select("status_envio, COUNT(*) AS total").
		Scopes(scope.Period("", period)).
		Group("status_envio").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindPending(ctx context.Context) ([]PendingCharge, error) {
	var rows []PendingCharge
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM buscar_cobrancas_pendentes()").
		Scan(&rows).Error
	return rows, err
}
