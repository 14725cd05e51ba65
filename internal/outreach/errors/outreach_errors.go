package outreacherrors

import (
	"net/http"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"
)

var (
	ErrEntryIDsRequired = apperror.Validation("empresas_ids é obrigatório")
	ErrMessageRequired  = apperror.Validation("mensagem é obrigatória para tipo TEXTO")
	ErrAudioRequired    = apperror.Validation("arquivo_audio_url é obrigatório para tipo AUDIO")
	ErrDateRequired     = apperror.Validation("data_cobranca é obrigatória para envio agendado")
	ErrInvalidKind      = apperror.Validation("tipo_mensagem deve ser TEXTO ou AUDIO")
	ErrInvalidDate      = apperror.Validation("data_cobranca inválida")
	ErrInvalidPeriod    = apperror.Validation("competencia deve estar no formato YYYY-MM")

	ErrOutcomeFieldsRequired = apperror.Validation("log_id e status_envio são obrigatórios")
	ErrInvalidOutcomeStatus  = apperror.Validation("status_envio deve ser ENVIANDO, ENVIADO ou ERRO")
	ErrLogIDRequired         = apperror.Validation("log_id é obrigatório")

	ErrFetchEntries = apperror.New(
		apperror.CodeUpstream,
		"Erro ao buscar empresas",
		http.StatusInternalServerError,
	)
	ErrLogNotFound = apperror.New(
		apperror.CodeNotFound,
		"Log de cobrança não encontrado",
		http.StatusNotFound,
	)
	ErrInvalidLogID = apperror.New(
		apperror.CodeInvalidInput,
		"log_id inválido",
		http.StatusBadRequest,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"Transição de status inválida",
		http.StatusConflict,
	)
	ErrAlreadySent = apperror.New(
		apperror.CodeInvalidState,
		"Cobrança já foi enviada",
		http.StatusConflict,
	)
	ErrAlreadyInFlight = apperror.New(
		apperror.CodeInvalidState,
		"Cobrança já está em envio",
		http.StatusConflict,
	)
	ErrDeliveryFailed = apperror.New(
		apperror.CodeDeliveryFailed,
		"Falha ao enviar cobrança",
		http.StatusInternalServerError,
	)
	ErrPendingFetch = apperror.New(
		apperror.CodeUpstream,
		"Erro ao buscar cobranças",
		http.StatusInternalServerError,
	)
)
