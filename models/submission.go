// file: models/submission.go
package models

import "time"

// Submission records one user redeeming one flag. Rows are never
// updated or deleted.
type Submission struct {
	ID  uint64    `gorm:"primarykey" json:"id"`
	UID string    `gorm:"size:64;not null;index" json:"uid"`
	FID string    `gorm:"column:fid;size:255;not null;index" json:"fid"`
	TS  time.Time `gorm:"column:ts;autoCreateTime" json:"ts"`

	Flag Flag `gorm:"foreignKey:FID;references:FID" json:"-"`
}

func (Submission) TableName() string {
	return "submissions"
}
