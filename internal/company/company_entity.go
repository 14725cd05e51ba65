package company

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code        string    `gorm:"column:codigo;type:varchar(20);not null;uniqueIndex:uq_empresas_codigo"`
	LegalName   string    `gorm:"column:razao_social;type:varchar(255);not null"`
	CNPJ        string    `gorm:"column:cnpj;type:varchar(20)"`
	Responsible string    `gorm:"column:responsavel;type:varchar(255)"`
	Phone       string    `gorm:"column:telefone;type:varchar(20)"`
	Email       string    `gorm:"column:email;type:varchar(255)"`
	Active      bool      `gorm:"column:ativo;not null;default:true"`
	CreatedAt   time.Time `gorm:"not null;default:now()"`
	UpdatedAt   time.Time `gorm:"not null;default:now()"`
}

func (Company) TableName() string {
	return "empresas"
}
