package models

import (
	"time"
)

// User - identifier is stored as 16 raw bytes; the canonical string
// form only exists at the API boundary.
type User struct {
	ID        []byte    `json:"-" gorm:"type:bytea;primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
