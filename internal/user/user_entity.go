package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the application profile of an auth identity.
type User struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	AuthID    uuid.UUID `gorm:"column:auth_id;type:uuid;not null;uniqueIndex"`
	Email     string    `gorm:"column:email;type:varchar(255);not null"`
	Name      string    `gorm:"column:nome;type:varchar(255);not null"`
	Role      string    `gorm:"column:role;type:varchar(20);not null;default:user"`
	Active    bool      `gorm:"column:ativo;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "usuarios"
}
