package contact

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/company"
	companyerrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/company/errors"
	contacterrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/contact/errors"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/phone"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	ListByCompany(ctx context.Context, companyID string) ([]ContactResponse, error)
	Create(ctx context.Context, companyID string, req CreateContactRequest) (ContactResponse, error)
	Update(ctx context.Context, id string, req UpdateContactRequest) (ContactResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	companies company.Repository
	logger    *zap.Logger
}

func NewService(repo Repository, companies company.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("contact.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("contact.service")
	}
	return &service{repo: repo, companies: companies, logger: l}
}

func (s *service) ListByCompany(ctx context.Context, companyID string) ([]ContactResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	contacts, err := s.repo.FindByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]ContactResponse, len(contacts))
	for i, c := range contacts {
		res[i] = mapToResponse(c)
	}
	return res, nil
}

func (s *service) Create(ctx context.Context, companyID string, req CreateContactRequest) (ContactResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return ContactResponse{}, companyerrors.ErrInvalidCompanyID
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return ContactResponse{}, apperror.RequiredField("Nome")
	}

	tel, err := phone.Normalize(req.Phone)
	if err != nil {
		return ContactResponse{}, err
	}

	if _, err := s.companies.FindByID(ctx, companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ContactResponse{}, companyerrors.ErrCompanyNotFound
		}
		return ContactResponse{}, mapRepositoryError(err)
	}

	c := &Contact{
		ID:        uuid.New(),
		CompanyID: cid,
		Name:      name,
		Phone:     tel,
		Email:     strings.TrimSpace(req.Email),
		Position:  strings.TrimSpace(req.Position),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("create contact failed", zap.String("empresa_id", companyID), zap.Error(err))
		return ContactResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*c), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateContactRequest) (ContactResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ContactResponse{}, contacterrors.ErrInvalidContactID
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ContactResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return ContactResponse{}, apperror.RequiredField("Nome")
		}
		c.Name = name
	}
	if req.Phone != nil {
		tel, err := phone.Normalize(*req.Phone)
		if err != nil {
			return ContactResponse{}, err
		}
		c.Phone = tel
	}
	if req.Email != nil {
		c.Email = strings.TrimSpace(*req.Email)
	}
	if req.Position != nil {
		c.Position = strings.TrimSpace(*req.Position)
	}
	c.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, c); err != nil {
		return ContactResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*c), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return contacterrors.ErrInvalidContactID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	s.logger.Info("contact deleted", zap.String("contact_id", id))
	return nil
}

func mapToResponse(c Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID.String(),
		CompanyID: c.CompanyID.String(),
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Position:  c.Position,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
