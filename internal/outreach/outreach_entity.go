package outreach

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StatusPending = "PENDENTE"
	StatusSending = "ENVIANDO"
	StatusSent    = "ENVIADO"
	StatusError   = "ERRO"
)

const (
	KindText  = "TEXTO"
	KindAudio = "AUDIO"
)

const periodLayout = "2006-01"

// Log is one attempt to reach a company for a billing period. Rows are
// never deleted.
type Log struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EntryID         uuid.UUID      `gorm:"column:empresa_cobranca_id;type:uuid;not null;index"`
	CompanyID       uuid.UUID      `gorm:"column:empresa_id;type:uuid;not null"`
	Phone           string         `gorm:"column:telefone_destino;type:varchar(20)"`
	Message         *string        `gorm:"column:mensagem;type:text"`
	Kind            string         `gorm:"column:tipo_mensagem;type:varchar(10);not null"`
	FileURL         *string        `gorm:"column:arquivo_url;type:text"`
	Status          string         `gorm:"column:status_envio;type:varchar(20);not null"`
	SentAt          *time.Time     `gorm:"column:enviado_em"`
	WebhookResponse datatypes.JSON `gorm:"column:webhook_response;type:jsonb"`
	ErrorMessage    *string        `gorm:"column:erro_mensagem;type:text"`
	Period          string         `gorm:"column:competencia;type:varchar(7);not null;index"`
	ChargeDate      *time.Time     `gorm:"column:data_cobranca"`
	CreatedAt       time.Time      `gorm:"not null;default:now()"`
	UpdatedAt       time.Time      `gorm:"not null;default:now()"`
}

func (Log) TableName() string {
	return "log_cobranca_ponto"
}

// LogDetail is a log enriched with the company and roster columns the
// dashboard shows next to it.
type LogDetail struct {
	Log
	CompanyCode        string `gorm:"column:empresa_codigo"`
	CompanyName        string `gorm:"column:empresa_nome"`
	CompanyResponsible string `gorm:"column:empresa_responsavel"`
	DueDay             *int   `gorm:"column:dia_cobranca"`
}

type StatusCount struct {
	Status string `gorm:"column:status_envio"`
	Total  int64  `gorm:"column:total"`
}

// PendingCharge is one row of buscar_cobrancas_pendentes().
type PendingCharge struct {
	LogID       string     `gorm:"column:log_id" json:"log_id"`
	EntryID     string     `gorm:"column:empresa_cobranca_id" json:"empresa_cobranca_id"`
	CompanyCode string     `gorm:"column:empresa_codigo" json:"empresa_codigo"`
	CompanyName string     `gorm:"column:empresa_nome" json:"empresa_nome"`
	Responsible *string    `gorm:"column:responsavel" json:"responsavel"`
	Phone       string     `gorm:"column:telefone" json:"telefone"`
	Message     *string    `gorm:"column:mensagem" json:"mensagem"`
	Kind        string     `gorm:"column:tipo_mensagem" json:"tipo_mensagem"`
	FileURL     *string    `gorm:"column:arquivo_url" json:"arquivo_url"`
	ChargeDate  *time.Time `gorm:"column:data_cobranca" json:"data_cobranca"`
	Period      string     `gorm:"column:competencia" json:"competencia"`
}

// CurrentPeriod returns the YYYY-MM billing period for t.
func CurrentPeriod(t time.Time) string {
	return t.Format(periodLayout)
}

func IsValidPeriod(p string) bool {
	_, err := time.Parse(periodLayout, p)
	return err == nil
}

func IsValidKind(kind string) bool {
	return kind == KindText || kind == KindAudio
}

// transitions lists the states each status may move to. Re-applying the
// current status is always allowed and handled by CanTransition.
var transitions = map[string][]string{
	StatusPending: {StatusSending, StatusSent, StatusError},
	StatusSending: {StatusSent, StatusError},
	StatusError:   {StatusSending, StatusSent},
	StatusSent:    {},
}

func CanTransition(from, to string) bool {
	if from == to {
		_, known := transitions[from]
		return known
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsOutcomeStatus reports whether status can be reported by the delivery
// side. PENDENTE is only ever written by the dispatcher.
func IsOutcomeStatus(status string) bool {
	return status == StatusSending || status == StatusSent || status == StatusError
}
