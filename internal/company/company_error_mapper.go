package company

import (
	"errors"
	"strings"

	companyerrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/company/errors"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return companyerrors.ErrCompanyNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_empresas_codigo" {
			return companyerrors.ErrCompanyCodeExists
		}
		if pgErr.Code == "22P02" {
			return companyerrors.ErrInvalidCompanyID
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_empresas_codigo") {
		return companyerrors.ErrCompanyCodeExists
	}

	return apperror.WithCause(apperror.ErrUpstream, err)
}
