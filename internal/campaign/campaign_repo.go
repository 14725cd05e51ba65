package campaign

import (
	"context"
	"database/sql"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/dbtx"

	"gorm.io/gorm"
)

const itemDetailColumns = `cobrancas_ponto.*,
	empresas.codigo AS empresa_codigo,
	empresas.razao_social AS empresa_nome,
	empresas.telefone AS empresa_telefone`

//go:generate mockgen -source=campaign_repo.go -destination=mock/campaign_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateList(ctx context.Context, list *List) error
	CreateItems(ctx context.Context, items []Item) error
	FindAll(ctx context.Context) ([]List, error)
	FindByID(ctx context.Context, id string) (*List, error)
	FindLatestActive(ctx context.Context) (*List, error)
	FindItems(ctx context.Context, listID string) ([]ItemDetail, error)
	UpdateListStatus(ctx context.Context, id, status string) error
	FinalizeActive(ctx context.Context) (int64, error)
	FindItemsByIDs(ctx context.Context, ids []string) ([]Item, error)
	UpdateItems(ctx context.Context, ids []string, fields map[string]any) error
	RecomputeSent(ctx context.Context, listID string) error
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

func (r *repository) CreateList(ctx context.Context, list *List) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *repository) CreateItems(ctx context.Context, items []Item) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(items, 200).Error
}

func (r *repository) FindAll(ctx context.Context) ([]List, error) {
	var lists []List
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&lists).Error
	return lists, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*List, error) {
	var l List
	if err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindLatestActive(ctx context.Context) (*List, error) {
	var l List
	err := r.db.WithContext(ctx).
		Where("status = ?", ListStatusActive).
		Order("created_at DESC").
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindItems(ctx context.Context, listID string) ([]ItemDetail, error) {
	var rows []ItemDetail
	err := r.db.WithContext(ctx).
		Table("cobrancas_ponto").
		Select(itemDetailColumns).
		Joins("JOIN empresas ON empresas.id = cobrancas_ponto.empresa_id").
		Where("cobrancas_ponto.lista_id = ?", listID).
		Order("cobrancas_ponto.created_at ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) UpdateListStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).
		Model(&List{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": gorm.Expr("now()")})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FinalizeActive(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&List{}).
		Where("status = ?", ListStatusActive).
		Updates(map[string]any{"status": ListStatusFinalized, "updated_at": gorm.Expr("now()")})
	return res.RowsAffected, res.Error
}

func (r *repository) FindItemsByIDs(ctx context.Context, ids []string) ([]Item, error) {
	var items []Item
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *repository) UpdateItems(ctx context.Context, ids []string, fields map[string]any) error {
	fields["updated_at"] = gorm.Expr("now()")
	res := r.db.WithContext(ctx).
		Model(&Item{}).
		Where("id IN ?", ids).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RecomputeSent rewrites total_enviados from the item rows.
func (r *repository) RecomputeSent(ctx context.Context, listID string) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE listas_cobranca
		SET total_enviados = (
			SELECT COUNT(*) FROM cobrancas_ponto
			WHERE lista_id = ? AND status_envio = ?
		), updated_at = now()
		WHERE id = ?`, listID, SendStatusSent, listID).Error
}
