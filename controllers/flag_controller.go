// file: controllers/flag_controller.go
package controllers

import (
	"FlagCore/database"
	"FlagCore/models"
	"FlagCore/services"
	"FlagCore/utils"

	"github.com/gin-gonic/gin"
)

// AdminCreateFlag inserts or replaces a flag for an existing
// challenge. Without an explicit value a random one is generated.
func AdminCreateFlag(c *gin.Context) {
	var req struct {
		CID            string `json:"cid" binding:"required"`
		MaxSubmissions int    `json:"max_submissions"`
		Flag           string `json:"flag"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid request: "+err.Error())
		return
	}
	if req.MaxSubmissions <= 0 {
		req.MaxSubmissions = 1
	}

	var challenge models.Challenge
	if err := database.DB.First(&challenge, "cid = ?", req.CID).Error; err != nil {
		utils.Error(c, 4004, "Challenge does not exist")
		return
	}

	flag, err := services.CreateFlag(req.CID, req.MaxSubmissions, req.Flag)
	if err != nil {
		utils.Error(c, 5000, "Failed to create flag: "+err.Error())
		return
	}

	utils.Success(c, "Flag created successfully", gin.H{"fid": flag})
}
