package roster

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending     = "PENDENTE"
	StatusReceived    = "RECEBIDO"
	StatusNotReceived = "NAO_RECEBIDO"
	StatusSent        = "ENVIADO"
	StatusError       = "ERRO"
)

const (
	DueDayFirst       = 1
	DueDayTwentyFifth = 25
)

// Entry is one company enrolled in the recurring billing campaign.
type Entry struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID     uuid.UUID  `gorm:"column:empresa_id;type:uuid;not null"`
	DueDay        int        `gorm:"column:dia_cobranca;not null"`
	Phone         string     `gorm:"column:telefone_cobranca;type:varchar(20)"`
	Status        string     `gorm:"column:status_ponto;type:varchar(20);not null;default:PENDENTE"`
	Notes         string     `gorm:"column:observacoes;type:text"`
	LastChargedAt *time.Time `gorm:"column:ultima_cobranca"`
	Active        bool       `gorm:"column:ativo;not null;default:true"`
	CreatedAt     time.Time  `gorm:"not null;default:now()"`
	UpdatedAt     time.Time  `gorm:"not null;default:now()"`
}

func (Entry) TableName() string {
	return "empresas_cobranca_ponto"
}

// EntryDetail is an entry joined with its company row.
type EntryDetail struct {
	Entry
	CompanyCode        string `gorm:"column:empresa_codigo"`
	CompanyName        string `gorm:"column:empresa_nome"`
	CompanyResponsible string `gorm:"column:empresa_responsavel"`
	CompanyPhone       string `gorm:"column:empresa_telefone"`
}

// DestinationPhone prefers the roster override over the company phone.
func (d EntryDetail) DestinationPhone() string {
	if d.Phone != "" {
		return d.Phone
	}
	return d.CompanyPhone
}

type AvailableCompany struct {
	ID        uuid.UUID `gorm:"column:id"`
	Code      string    `gorm:"column:codigo"`
	LegalName string    `gorm:"column:razao_social"`
	Phone     string    `gorm:"column:telefone"`
}

type StatusCount struct {
	Status string `gorm:"column:status_ponto"`
	Total  int64  `gorm:"column:total"`
}

func IsValidDueDay(day int) bool {
	return day == DueDayFirst || day == DueDayTwentyFifth
}

// IsStaffStatus reports whether staff may set the status by hand.
// ENVIADO and ERRO belong to the delivery tracker.
func IsStaffStatus(status string) bool {
	switch status {
	case StatusPending, StatusReceived, StatusNotReceived:
		return true
	}
	return false
}
