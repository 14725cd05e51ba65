package companyerrors

import (
	"net/http"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Empresa não encontrada",
		http.StatusNotFound,
	)

	ErrCompanyCodeExists = apperror.New(
		apperror.CodeConflict,
		"Já existe uma empresa com este código",
		http.StatusConflict,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"ID de empresa inválido",
		http.StatusBadRequest,
	)
)
