package models

import (
	"time"
)

// Programmer represents a programmer record in the roster.
//
// The password is accepted as plaintext input on create/update requests and
// persisted only as a bcrypt hash computed at write time. The hash column is
// never serialized.
type Programmer struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Nickname     string    `json:"nickname" gorm:"not null;size:100"`
	AvatarNumber int       `json:"avatarNumber" gorm:"column:avatar_number;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName specifies the table name for the Programmer model
func (Programmer) TableName() string {
	return "programmers"
}
