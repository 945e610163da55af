// file: services/team_service.go
package services

import (
	"FlagCore/models"

	"gorm.io/gorm"
)

// TeamOf resolves the team a user belongs to. Absence is not an error.
func TeamOf(db *gorm.DB, uid string) (string, bool) {
	var team models.Team
	if err := db.Where("uid = ?", uid).First(&team).Error; err != nil {
		return "", false
	}
	return team.TID, true
}

// HasSolved reports whether the user is credited for the challenge,
// either through an own submission or, for team-scoped challenges,
// through any teammate's.
func HasSolved(db *gorm.DB, uid, cid string) bool {
	var count int64
	creditedSolves(db, uid, cid).Count(&count)
	return count > 0
}

// creditedSolves builds the query counting submissions that credit uid
// for cid. For a team-scoped challenge a teammate's submission counts.
func creditedSolves(db *gorm.DB, uid, cid string) *gorm.DB {
	return db.Model(&models.Submission{}).
		Joins("JOIN flags ON flags.fid = submissions.fid").
		Joins("JOIN challenges ON challenges.cid = flags.cid").
		Where("challenges.cid = ?", cid).
		Where("submissions.uid = ? OR (challenges.team AND submissions.uid IN (SELECT uid FROM teams WHERE tid = (SELECT tid FROM teams WHERE uid = ?)))", uid, uid)
}
