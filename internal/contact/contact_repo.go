package contact

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=contact_repo.go -destination=mock/contact_repo_mock.go -package=mock
type Repository interface {
	FindByCompany(ctx context.Context, companyID string) ([]Contact, error)
	FindByID(ctx context.Context, id string) (*Contact, error)
	Create(ctx context.Context, contact *Contact) error
	Update(ctx context.Context, contact *Contact) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByCompany(ctx context.Context, companyID string) ([]Contact, error) {
	var contacts []Contact
	err := r.db.WithContext(ctx).
		Where("empresa_id = ?", companyID).
		Order("nome ASC").
		Find(&contacts).Error
	return contacts, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Contact, error) {
	var c Contact
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Create(ctx context.Context, contact *Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *repository) Update(ctx context.Context, contact *Contact) error {
	return r.db.WithContext(ctx).Save(contact).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Contact{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
