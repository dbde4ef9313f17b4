package models

import (
	"time"
)

// Profile mirrors a user in the identity provider; the ID is the
// provider's subject, created implicitly at signup. TeamID is nil
// until the user creates or joins a team.
type Profile struct {
	ID          string    `gorm:"primarykey;size:36" json:"id"`
	DisplayName string    `gorm:"size:100" json:"display_name"`
	TeamID      *string   `gorm:"size:36;index" json:"team_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Profile) TableName() string {
	return "ctfapp_profile"
}
