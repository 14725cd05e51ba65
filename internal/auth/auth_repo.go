package auth

import (
	"context"
	"errors"
	"strings"

	autherrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/auth/errors"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, identity *Identity) error
	FindByEmail(ctx context.Context, email string) (*Identity, error)
	FindByID(ctx context.Context, id string) (*Identity, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, identity *Identity) error {
	err := r.db.WithContext(ctx).Create(identity).Error
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return autherrors.ErrEmailAlreadyRegistered
	}
	if err != nil {
		return apperror.WithCause(apperror.ErrUpstream, err)
	}
	return nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Identity, error) {
	var id Identity
	err := r.db.WithContext(ctx).
		Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&id).Error
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Identity, error) {
	var identity Identity
	if err := r.db.WithContext(ctx).First(&identity, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &identity, nil
}
