package rbac

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	ListPolicies(ctx context.Context) ([]PolicyRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListPolicies(ctx context.Context) ([]PolicyRow, error) {
	var rows []PolicyRow
	err := r.db.WithContext(ctx).
		Order("role, resource, action").
		Find(&rows).Error
	return rows, err
}
