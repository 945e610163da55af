// file: models/event.go
package models

import "time"

// Event is an append-only audit record. It is the sole source of truth
// for what happened and when, including rejected attempts.
type Event struct {
	ID   uint64    `gorm:"primarykey" json:"id"`
	TS   time.Time `gorm:"column:ts;autoCreateTime" json:"ts"`
	IP   string    `gorm:"size:45" json:"ip"`
	Type string    `gorm:"size:32;not null;index" json:"type"`
	Data *string   `gorm:"size:255" json:"data,omitempty"`
	CID  *string   `gorm:"column:cid;size:64;index" json:"cid,omitempty"`
	UID  *string   `gorm:"size:64;index" json:"uid,omitempty"`
}

func (Event) TableName() string {
	return "events"
}
