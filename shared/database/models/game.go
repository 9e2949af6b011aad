package models

import (
	"time"
)

// Game - price is stored as integer minor units (cents), never as a
// decimal. Images are owned rows and are removed with the game.
type Game struct {
	ID          []byte    `json:"-" gorm:"type:bytea;primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description string    `json:"description"`
	Price       int64     `json:"price" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Images []GameImage `json:"images" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

// GameImage - a reference to externally hosted media; only the URL is
// interpreted here, never the image bytes.
type GameImage struct {
	ID        []byte    `json:"-" gorm:"type:bytea;primaryKey"`
	GameID    []byte    `json:"-" gorm:"type:bytea;not null;index"`
	URL       string    `json:"url" gorm:"not null"`
	Position  int       `json:"position" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
}
