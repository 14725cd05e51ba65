package autherrors

import (
	"net/http"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Email ou senha inválidos",
		http.StatusUnauthorized,
	)
	ErrInactiveProfile = apperror.New(
		apperror.CodeForbidden,
		"Usuário inativo",
		http.StatusForbidden,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid refresh token",
		http.StatusUnauthorized,
	)
	ErrMissingRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Missing refresh token",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Falha ao gerar token",
		http.StatusInternalServerError,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"A user with this email address has already been registered",
		http.StatusConflict,
	)
	ErrWeakPassword = apperror.New(
		apperror.CodeValidation,
		"Password should be at least 6 characters",
		http.StatusBadRequest,
	)
	ErrInvalidEmail = apperror.New(
		apperror.CodeValidation,
		"Invalid email address",
		http.StatusBadRequest,
	)
)
