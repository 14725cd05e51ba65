package rostererrors

import (
	"net/http"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
)

var (
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Empresa não encontrada na lista de cobrança",
		http.StatusNotFound,
	)
	ErrInvalidEntryID = apperror.New(
		apperror.CodeInvalidInput,
		"ID inválido",
		http.StatusBadRequest,
	)
	ErrAlreadyEnrolled = apperror.New(
		apperror.CodeConflict,
		"Empresa já está na lista de cobrança",
		http.StatusConflict,
	)
	ErrInvalidDueDay = apperror.New(
		apperror.CodeValidation,
		"dia_cobranca deve ser 1 ou 25",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeValidation,
		"status_ponto deve ser PENDENTE, RECEBIDO ou NAO_RECEBIDO",
		http.StatusBadRequest,
	)
	ErrConfirmationRequired = apperror.New(
		apperror.CodeConfirmationRequired,
		"Digite CONFIRMAR para resetar os status",
		http.StatusBadRequest,
	)
)
