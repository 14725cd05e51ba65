package contacterrors

import (
	"net/http"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
)

var (
	ErrContactNotFound = apperror.New(
		apperror.CodeNotFound,
		"Contato não encontrado",
		http.StatusNotFound,
	)
	ErrInvalidContactID = apperror.New(
		apperror.CodeInvalidInput,
		"ID de contato inválido",
		http.StatusBadRequest,
	)
)
