package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null;size:50" json:"username"`
	Email        string    `gorm:"unique;not null;size:100" json:"email"`
	PasswordHash string    `gorm:"column:password;not null;size:100" json:"-"`
	FullName     string    `gorm:"size:100" json:"full_name,omitempty"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
	Uploads      []Upload  `gorm:"foreignKey:UserID" json:"uploads,omitempty"`
}
