package outreach

import (
	"errors"

	outreacherrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/outreach/errors"
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
		return outreacherrors.ErrLogNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "22P02" {
		return outreacherrors.ErrInvalidLogID
	}

	return apperror.WithCause(apperror.ErrUpstream, err)
}
