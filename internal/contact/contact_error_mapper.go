package contact

import (
	"errors"

	contacterrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/contact/errors"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"

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
		return contacterrors.ErrContactNotFound
	}

	return apperror.WithCause(apperror.ErrUpstream, err)
}
