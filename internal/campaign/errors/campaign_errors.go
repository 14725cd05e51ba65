package campaignerrors

import (
	"net/http"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
)

var (
	ErrListNotFound = apperror.New(
		apperror.CodeNotFound,
		"Lista de cobrança não encontrada",
		http.StatusNotFound,
	)
	ErrNoActiveList = apperror.New(
		apperror.CodeNotFound,
		"Nenhuma lista ativa",
		http.StatusNotFound,
	)
	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Cobrança não encontrada",
		http.StatusNotFound,
	)
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"ID inválido",
		http.StatusBadRequest,
	)
	ErrIDsRequired = apperror.New(
		apperror.CodeValidation,
		"ids é obrigatório",
		http.StatusBadRequest,
	)
	ErrInvalidSendStatus = apperror.New(
		apperror.CodeValidation,
		"status_envio deve ser AGUARDANDO, ENVIANDO, ENVIADO ou ERRO",
		http.StatusBadRequest,
	)
	ErrInvalidResponseStatus = apperror.New(
		apperror.CodeValidation,
		"status_resposta deve ser PENDENTE, RECEBIDO ou NAO_RECEBIDO",
		http.StatusBadRequest,
	)
	ErrInvalidKind = apperror.New(
		apperror.CodeValidation,
		"tipo_mensagem deve ser TEXTO ou AUDIO",
		http.StatusBadRequest,
	)
	ErrListNotActive = apperror.New(
		apperror.CodeInvalidState,
		"A lista não está ativa",
		http.StatusConflict,
	)
	ErrCloseMonthTooEarly = apperror.New(
		apperror.CodeInvalidState,
		"O reset só pode ser feito após o dia 8 do mês",
		http.StatusConflict,
	)
)
