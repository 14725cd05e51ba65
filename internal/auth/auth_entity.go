package auth

import (
	"time"

	"github.com/google/uuid"
)

// Identity is a login credential. Profiles in usuarios point at it by auth_id.
type Identity struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"not null;default:now()"`
}

func (Identity) TableName() string {
	return "auth_identities"
}
