package company

import (
	"context"
	"database/sql"
	"strings"
	"time"

	companyerrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/company/errors"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/contextutil"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/counter"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/phone"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, filter ListFilter) ([]CompanyResponse, error)
	GetByID(ctx context.Context, id string) (CompanyResponse, error)
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error)
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{db: db, repo: repo, counter: counter, logger: l}
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]CompanyResponse, error) {
	companies, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("list companies failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(companies), nil
}

func (s *service) GetByID(ctx context.Context, id string) (CompanyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*c), nil
}

func (s *service) Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	tel, err := phone.Normalize(req.Phone)
	if err != nil {
		return CompanyResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create company begin tx failed", zap.Error(err))
		return CompanyResponse{}, err
	}
	defer tx.Rollback()

	code := strings.TrimSpace(req.Code)
	if code == "" {
		next, err := s.counter.Next(ctx, counter.CompanyCode)
		if err != nil {
			log.Error("create company generate code failed", zap.Error(err))
			return CompanyResponse{}, err
		}
		code = counter.FormatCode(next)
	}

	c := &Company{
		ID:          uuid.New(),
		Code:        code,
		LegalName:   strings.TrimSpace(req.LegalName),
		CNPJ:        strings.TrimSpace(req.CNPJ),
		Responsible: strings.TrimSpace(req.Responsible),
		Phone:       tel,
		Email:       strings.TrimSpace(req.Email),
		Active:      true,
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, c); err != nil {
		log.Warn("create company persist failed", zap.String("codigo", code), zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("create company commit failed", zap.Error(err))
		return CompanyResponse{}, err
	}

	log.Info("company created", zap.String("company_id", c.ID.String()), zap.String("codigo", c.Code))
	return mapToResponse(*c), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}

	if req.Phone != nil {
		tel, err := phone.Normalize(*req.Phone)
		if err != nil {
			return CompanyResponse{}, err
		}
		c.Phone = tel
	}
	if req.Code != nil {
		c.Code = strings.TrimSpace(*req.Code)
	}
	if req.LegalName != nil {
		c.LegalName = strings.TrimSpace(*req.LegalName)
	}
	if req.CNPJ != nil {
		c.CNPJ = strings.TrimSpace(*req.CNPJ)
	}
	if req.Responsible != nil {
		c.Responsible = strings.TrimSpace(*req.Responsible)
	}
	if req.Email != nil {
		c.Email = strings.TrimSpace(*req.Email)
	}
	if req.Active != nil {
		c.Active = *req.Active
	}
	c.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, c); err != nil {
		s.logger.Warn("update company failed", zap.String("company_id", id), zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*c), nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return companyerrors.ErrInvalidCompanyID
	}
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	s.logger.Info("company deactivated", zap.String("company_id", id))
	return nil
}

func mapToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID.String(),
		Code:        c.Code,
		LegalName:   c.LegalName,
		CNPJ:        c.CNPJ,
		Responsible: c.Responsible,
		Phone:       c.Phone,
		Email:       c.Email,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(companies []Company) []CompanyResponse {
	res := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		res[i] = mapToResponse(c)
	}
	return res
}
