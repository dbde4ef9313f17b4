package models

import (
	"time"
)

// Submission records that a team has solved a challenge. The composite
// unique index is what makes the scoring insert race-safe: concurrent
// teammates hit ON CONFLICT at the storage level, never a duplicate
// row. UserID attributes the solve to whoever submitted first.
type Submission struct {
	ID          uint64    `gorm:"primarykey"`
	TeamID      string    `gorm:"size:36;uniqueIndex:uniq_team_challenge;not null"`
	ChallengeID string    `gorm:"size:36;uniqueIndex:uniq_team_challenge;not null"`
	UserID      string    `gorm:"size:36;not null"`
	CreatedAt   time.Time
}

func (Submission) TableName() string {
	return "ctfapp_submission"
}
