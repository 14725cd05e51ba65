package user

import (
	"errors"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
	usererrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/user/errors"

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
		return usererrors.ErrUserNotFound
	}
	return apperror.WithCause(apperror.ErrUpstream, err)
}
