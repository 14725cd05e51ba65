package outreach

import "encoding/json"

type DispatchRequest struct {
	EntryIDs   []string `json:"empresas_ids"`
	Message    string   `json:"mensagem"`
	Kind       string   `json:"tipo_mensagem"`
	AudioURL   string   `json:"arquivo_audio_url"`
	ChargeDate string   `json:"data_cobranca"`
	Schedule   bool     `json:"agendar"`
}

type DispatchResult struct {
	LogsCreated int    `json:"logs_criados"`
	Message     string `json:"message"`
	Scheduled   bool   `json:"agendado"`
}

type OutcomeRequest struct {
	LogID           string          `json:"log_id"`
	Status          string          `json:"status_envio"`
	WebhookResponse json.RawMessage `json:"webhook_response"`
	ErrorMessage    string          `json:"erro_mensagem"`
}

// Outcome is a delivery result reported for one log.
type Outcome struct {
	LogID        string
	Status       string
	Response     json.RawMessage
	ErrorMessage string
}

type SendRequest struct {
	LogID string `json:"log_id"`
}

type SendResult struct {
	Success   bool            `json:"success"`
	Simulated bool            `json:"simulated,omitempty"`
	Message   string          `json:"message,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// WebhookPayload is the body POSTed to the automation webhook.
type WebhookPayload struct {
	LogID       string `json:"log_id"`
	CompanyCode string `json:"empresa_codigo"`
	CompanyName string `json:"empresa_nome"`
	Responsible string `json:"responsavel"`
	Phone       string `json:"telefone"`
	Message     string `json:"mensagem,omitempty"`
	Kind        string `json:"tipo_mensagem"`
	AudioURL    string `json:"arquivo_audio_url,omitempty"`
	Timestamp   string `json:"timestamp"`
}

type LogResponse struct {
	ID              string          `json:"id"`
	EntryID         string          `json:"empresa_cobranca_id"`
	CompanyID       string          `json:"empresa_id"`
	Phone           string          `json:"telefone_destino"`
	Message         *string         `json:"mensagem"`
	Kind            string          `json:"tipo_mensagem"`
	FileURL         *string         `json:"arquivo_url"`
	Status          string          `json:"status_envio"`
	SentAt          *string         `json:"enviado_em"`
	WebhookResponse json.RawMessage `json:"webhook_response,omitempty"`
	ErrorMessage    *string         `json:"erro_mensagem"`
	Period          string          `json:"competencia"`
	ChargeDate      *string         `json:"data_cobranca"`
	CreatedAt       string          `json:"created_at"`
	Company         *LogCompany     `json:"empresa,omitempty"`
}

type LogCompany struct {
	Code        string `json:"codigo"`
	LegalName   string `json:"razao_social"`
	Responsible string `json:"responsavel,omitempty"`
	DueDay      *int   `json:"dia_cobranca,omitempty"`
}

type PeriodStats struct {
	Period  string `json:"competencia"`
	Total   int64  `json:"total"`
	Sent    int64  `json:"enviados"`
	Errors  int64  `json:"erros"`
	Waiting int64  `json:"aguardando"`
}

// InFlight reports whether any log of the period still awaits an outcome.
func (s PeriodStats) InFlight() bool {
	return s.Waiting > 0
}
