package company_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/company"
	companyerrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/company/errors"
	companyMock "github.com/lFelipelalves/Crm-Wsc-Clean/internal/company/mock"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/counter"
	counterMock "github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/counter/mock"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/phone"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service company.Service
	repo    *companyMock.MockRepository
	counter *counterMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, _ := sqlmock.New()
	repo := companyMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: company.NewService(db, repo, counterRepo),
		repo:    repo,
		counter: counterRepo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestCompanyService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - generates code and normalizes phone", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.counter.EXPECT().
			Next(ctx, counter.CompanyCode).
			Return(int64(42), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, c *company.Company) error {
				assert.Equal(t, "0042", c.Code)
				assert.Equal(t, "5511987654321", c.Phone)
				assert.True(t, c.Active)
				return nil
			})

		resp, err := deps.service.Create(ctx, company.CreateCompanyRequest{
			LegalName: "Padaria Central LTDA",
			Phone:     "(11) 98765-4321",
		})

		assert.NoError(t, err)
		assert.Equal(t, "0042", resp.Code)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("explicit code skips counter", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Create(ctx, company.CreateCompanyRequest{Code: "123", LegalName: "ACME"})

		assert.NoError(t, err)
		assert.Equal(t, "123", resp.Code)
	})

	t.Run("duplicate code -> conflict, rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_empresas_codigo"})

		_, err := deps.service.Create(ctx, company.CreateCompanyRequest{Code: "123", LegalName: "ACME"})

		assert.ErrorIs(t, err, companyerrors.ErrCompanyCodeExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid phone never opens a tx", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, company.CreateCompanyRequest{LegalName: "ACME", Phone: "abc"})

		assert.ErrorIs(t, err, phone.ErrInvalidPhone)
		assert.Equal(t, 400, apperror.ToHTTP(err).Status)
	})
}

func TestCompanyService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("partial update", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existing := &company.Company{ID: id, Code: "0001", LegalName: "Old", Responsible: "Ana", Active: true}
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(existing, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, c *company.Company) error {
			assert.Equal(t, "New", c.LegalName)
			assert.Equal(t, "Ana", c.Responsible)
			return nil
		})

		name := "New"
		resp, err := deps.service.Update(ctx, id.String(), company.UpdateCompanyRequest{LegalName: &name})

		assert.NoError(t, err)
		assert.Equal(t, "New", resp.LegalName)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, id.String(), company.UpdateCompanyRequest{})
		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Update(ctx, "nope", company.UpdateCompanyRequest{})
		assert.ErrorIs(t, err, companyerrors.ErrInvalidCompanyID)
	})
}

func TestCompanyService_ListAndDeactivate(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	defer deps.db.Close()

	active := true
	filter := company.ListFilter{Q: "pad", Active: &active}
	deps.repo.EXPECT().FindAll(ctx, filter).Return([]company.Company{{ID: uuid.New(), Code: "0001", LegalName: "Padaria"}}, nil)

	list, err := deps.service.List(ctx, filter)
	assert.NoError(t, err)
	assert.Len(t, list, 1)

	id := uuid.New().String()
	deps.repo.EXPECT().Deactivate(ctx, id).Return(gorm.ErrRecordNotFound)
	assert.ErrorIs(t, deps.service.Deactivate(ctx, id), companyerrors.ErrCompanyNotFound)

	deps.repo.EXPECT().FindAll(ctx, gomock.Any()).Return(nil, errors.New("connection reset"))
	_, err = deps.service.List(ctx, company.ListFilter{})
	assert.Equal(t, 500, apperror.ToHTTP(err).Status)
}
