// file: models/flag.go
package models

type Flag struct {
	// FID is the secret token itself, globally unique.
	FID string `gorm:"column:fid;primarykey;size:255" json:"fid"`

	CID       string    `gorm:"column:cid;size:64;not null;index" json:"cid"`
	Challenge Challenge `gorm:"foreignKey:CID;references:CID" json:"-"`

	// MaxSubmissions bounds successful submissions of this flag across
	// all users combined, not per user.
	MaxSubmissions int `gorm:"not null;default:1" json:"max_submissions"`
}

func (Flag) TableName() string {
	return "flags"
}
