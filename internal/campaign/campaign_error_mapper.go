package campaign

import (
	"errors"

	campaignerrors "github.com/lFelipelalves/Crm-Wsc-Clean/internal/campaign/errors"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"

	"gorm.io/gorm"
)

func mapRepositoryError(err error, notFound *apperror.AppError) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if notFound != nil {
			return notFound
		}
		return campaignerrors.ErrListNotFound
	}

	return apperror.WithCause(apperror.ErrUpstream, err)
}
