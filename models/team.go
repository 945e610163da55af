// file: models/team.go
package models

import "time"

// Team is a membership row: one user belongs to at most one team.
type Team struct {
	UID       string    `gorm:"primarykey;size:64" json:"uid"`
	TID       string    `gorm:"column:tid;size:64;not null;index" json:"tid"`
	CreatedAt time.Time `json:"created_at"`
}

func (Team) TableName() string {
	return "teams"
}
