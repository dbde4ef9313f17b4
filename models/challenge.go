package models

import (
	"time"
)

// Challenge rows are created and edited out-of-band; the application
// only reads them. Only is_active rows are visible or solvable.
//
// FlagHash is the hex SHA-256 of the correct flag and must never reach
// a client; the json:"-" tag is a second line of defense on top of the
// response DTOs.
type Challenge struct {
	ID            string    `gorm:"primarykey;size:36" json:"id"`
	Title         string    `gorm:"size:200;not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	Points        uint      `gorm:"not null" json:"points"`
	AttachmentURL *string   `gorm:"size:2048" json:"attachment_url"`
	LinkURL       *string   `gorm:"size:2048" json:"link_url"`
	IsActive      bool      `gorm:"not null;default:false" json:"is_active"`
	FlagHash      string    `gorm:"size:64;not null" json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Challenge) TableName() string {
	return "ctfapp_challenge"
}
