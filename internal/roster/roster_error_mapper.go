package roster

import (
	"errors"
	"strings"

	rostererrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/roster/errors"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueActiveCompanyConstraint = "uq_roster_active_company"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rostererrors.ErrEntryNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == uniqueActiveCompanyConstraint {
			return rostererrors.ErrAlreadyEnrolled
		}
	}

	if strings.Contains(err.Error(), uniqueActiveCompanyConstraint) {
		return rostererrors.ErrAlreadyEnrolled
	}

	return apperror.WithCause(apperror.ErrUpstream, err)
}
