package models

import (
	"time"
)

// Team membership lives on the profile (profiles.team_id), not in a
// join table. Code is the human-typed join code; unique, immutable
// once issued.
type Team struct {
	ID        string    `gorm:"primarykey;size:36" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Code      string    `gorm:"size:16;uniqueIndex;not null" json:"code"`
	CreatedBy string    `gorm:"size:36;not null" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func (Team) TableName() string {
	return "ctfapp_team"
}
