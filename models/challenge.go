// file: models/challenge.go
package models

import "time"

type Challenge struct {
	CID    string    `gorm:"column:cid;primarykey;size:64" json:"cid"`
	TStart time.Time `gorm:"column:t_start;not null" json:"t_start"`
	TStop  time.Time `gorm:"column:t_stop;not null" json:"t_stop"`

	// Team marks the challenge as team-scoped: one counted solve is
	// shared by every member of the solving user's team.
	Team bool `gorm:"not null;default:false" json:"team"`
}

func (Challenge) TableName() string {
	return "challenges"
}

// ActiveAt reports whether t falls inside the closed activation window.
func (ch *Challenge) ActiveAt(t time.Time) bool {
	return !t.Before(ch.TStart) && !t.After(ch.TStop)
}
