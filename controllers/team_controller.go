// file: controllers/team_controller.go
package controllers

import (
	"FlagCore/database"
	"FlagCore/models"
	"FlagCore/services"
	"FlagCore/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// AdminAssignTeam puts a user on a team, replacing any previous
// membership. A user belongs to at most one team at a time.
func AdminAssignTeam(c *gin.Context) {
	var req struct {
		UID string `json:"uid" binding:"required"`
		TID string `json:"tid" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid request: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.First(&user, "uid = ?", req.UID).Error; err != nil {
		utils.Error(c, 4004, "User does not exist")
		return
	}

	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}},
		DoUpdates: clause.AssignmentColumns([]string{"tid"}),
	}).Create(&models.Team{UID: req.UID, TID: req.TID}).Error
	if err != nil {
		utils.Error(c, 5000, "Failed to assign team: "+err.Error())
		return
	}

	utils.Success(c, "Team assigned", gin.H{"uid": req.UID, "tid": req.TID})
}

// GetSolveBoard returns aggregated solve counts per team (or per user
// for users without a team).
func GetSolveBoard(c *gin.Context) {
	entries, err := services.SolveBoard()
	if err != nil {
		utils.Error(c, 5000, "Query failed")
		return
	}

	utils.Success(c, "success", gin.H{
		"total":   len(entries),
		"entries": entries,
	})
}
