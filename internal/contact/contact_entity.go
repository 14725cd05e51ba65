package contact

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"column:empresa_id;type:uuid;not null;index"`
	Name      string    `gorm:"column:nome;type:varchar(255);not null"`
	Phone     string    `gorm:"column:telefone;type:varchar(20)"`
	Email     string    `gorm:"column:email;type:varchar(255)"`
	Position  string    `gorm:"column:cargo;type:varchar(100)"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (Contact) TableName() string {
	return "contatos"
}
