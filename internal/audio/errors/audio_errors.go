package audioerrors

import (
	"net/http"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
)

var (
	ErrNoFile = apperror.New(
		apperror.CodeValidation,
		"Nenhum arquivo foi enviado",
		http.StatusBadRequest,
	)
	ErrNotAudio = apperror.New(
		apperror.CodeValidation,
		"O arquivo deve ser um áudio",
		http.StatusBadRequest,
	)
	ErrTooLarge = apperror.New(
		apperror.CodeValidation,
		"Arquivo muito grande (máximo 25MB)",
		http.StatusBadRequest,
	)
	ErrStorage = apperror.New(
		apperror.CodeUpstream,
		"Erro ao fazer upload do arquivo para o storage",
		http.StatusInternalServerError,
	)
	ErrUpload = apperror.New(
		apperror.CodeInternalError,
		"Erro ao fazer upload do arquivo",
		http.StatusInternalServerError,
	)
)
