package campaign

import (
	"time"

	"github.com/google/uuid"
)

const (
	ListStatusActive    = "ATIVA"
	ListStatusFinalized = "FINALIZADA"
	ListStatusCancelled = "CANCELADA"
)

const (
	SendStatusWaiting = "AGUARDANDO"
	SendStatusSending = "ENVIANDO"
	SendStatusSent    = "ENVIADO"
	SendStatusError   = "ERRO"
)

const (
	ResponsePending     = "PENDENTE"
	ResponseReceived    = "RECEBIDO"
	ResponseNotReceived = "NAO_RECEBIDO"
)

// CloseMonthFromDay is the first day of the month on which open lists may be closed.
const CloseMonthFromDay = 8

// List is one campaign run over a snapshot of the roster.
type List struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string    `gorm:"column:nome;type:varchar(255);not null"`
	Type           string    `gorm:"column:tipo;type:varchar(50)"`
	Period         string    `gorm:"column:competencia;type:varchar(7);not null"`
	FilterDay01    bool      `gorm:"column:filtro_dia_01;not null;default:false"`
	FilterDay25    bool      `gorm:"column:filtro_dia_25;not null;default:false"`
	FilterPending  bool      `gorm:"column:filtro_pendentes;not null;default:false"`
	Status         string    `gorm:"column:status;type:varchar(20);not null;default:ATIVA"`
	TotalCompanies int       `gorm:"column:total_empresas;not null;default:0"`
	TotalSent      int       `gorm:"column:total_enviados;not null;default:0"`
	DefaultMessage *string   `gorm:"column:mensagem_padrao;type:text"`
	DefaultKind    *string   `gorm:"column:tipo_mensagem_padrao;type:varchar(10)"`
	AudioURL       *string   `gorm:"column:arquivo_audio_url;type:text"`
	CreatedAt      time.Time `gorm:"not null;default:now()"`
	UpdatedAt      time.Time `gorm:"not null;default:now()"`
}

func (List) TableName() string {
	return "listas_cobranca"
}

// Item is the per-company row of a list.
type Item struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ListID         uuid.UUID  `gorm:"column:lista_id;type:uuid;not null"`
	CompanyID      uuid.UUID  `gorm:"column:empresa_id;type:uuid;not null"`
	SendStatus     string     `gorm:"column:status_envio;type:varchar(20);not null;default:AGUARDANDO"`
	ResponseStatus string     `gorm:"column:status_resposta;type:varchar(20);not null;default:PENDENTE"`
	Attempts       int        `gorm:"column:tentativas;not null;default:0"`
	SentAt         *time.Time `gorm:"column:data_envio"`
	SentMessage    *string    `gorm:"column:mensagem_enviada;type:text"`
	Kind           *string    `gorm:"column:tipo_mensagem;type:varchar(10)"`
	Notes          *string    `gorm:"column:observacoes;type:text"`
	CreatedAt      time.Time  `gorm:"not null;default:now()"`
	UpdatedAt      time.Time  `gorm:"not null;default:now()"`
}

func (Item) TableName() string {
	return "cobrancas_ponto"
}

type ItemDetail struct {
	Item
	CompanyCode  string `gorm:"column:empresa_codigo"`
	CompanyName  string `gorm:"column:empresa_nome"`
	CompanyPhone string `gorm:"column:empresa_telefone"`
}

func IsSendStatus(s string) bool {
	switch s {
	case SendStatusWaiting, SendStatusSending, SendStatusSent, SendStatusError:
		return true
	}
	return false
}

func IsResponseStatus(s string) bool {
	switch s {
	case ResponsePending, ResponseReceived, ResponseNotReceived:
		return true
	}
	return false
}

// DueDayFilter turns the two day checkboxes into a roster filter.
// Both or neither selected means every due day.
func DueDayFilter(day01, day25 bool) *int {
	var d int
	switch {
	case day01 && !day25:
		d = 1
	case day25 && !day01:
		d = 25
	default:
		return nil
	}
	return &d
}
