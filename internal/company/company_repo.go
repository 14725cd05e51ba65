package company

import (
	"context"
	"database/sql"
	"strings"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAll(ctx context.Context, filter ListFilter) ([]Company, error)
	FindByID(ctx context.Context, id string) (*Company, error)
	Create(ctx context.Context, company *Company) error
	Update(ctx context.Context, company *Company) error
	Deactivate(ctx context.Context, id string) error
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

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Company, error) {
	var companies []Company
	q := r.db.WithContext(ctx).Model(&Company{})

	if filter.Active != nil {
		q = q.Where("ativo = ?", *filter.Active)
	}
	if term := strings.TrimSpace(filter.Q); term != "" {
		like := "%" + term + "%"
		q = q.Where("codigo ILIKE ? OR razao_social ILIKE ?", like, like)
	}

	err := q.Order("codigo ASC").Find(&companies).Error
	return companies, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Company, error) {
	var c Company
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Create(ctx context.Context, company *Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *repository) Update(ctx context.Context, company *Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

func (r *repository) Deactivate(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&Company{}).
		Where("id = ?", id).
		Updates(map[string]any{"ativo": false, "updated_at": gorm.Expr("now()")})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
