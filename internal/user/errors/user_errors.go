package usererrors

import (
	"net/http"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"Usuário não encontrado",
		http.StatusNotFound,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"ID de usuário inválido",
		http.StatusBadRequest,
	)
	ErrMissingFields = apperror.New(
		apperror.CodeInvalidInput,
		"Missing fields",
		http.StatusBadRequest,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid role. Must be admin or user",
		http.StatusBadRequest,
	)
	ErrPartialFailure = apperror.New(
		apperror.CodePartialFailure,
		"User created in Auth but failed in DB. Contact support.",
		http.StatusInternalServerError,
	)
	ErrSelfDeactivation = apperror.New(
		apperror.CodeInvalidState,
		"Não é possível desativar o próprio usuário",
		http.StatusConflict,
	)
)
