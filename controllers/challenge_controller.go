// file: controllers/challenge_controller.go
package controllers

import (
	"time"

	"FlagCore/database"
	"FlagCore/models"
	"FlagCore/services"
	"FlagCore/utils"

	"github.com/gin-gonic/gin"
)

// ListChallenges returns the challenges visible to the caller with a
// solved marker (team-aware) per challenge.
func ListChallenges(c *gin.Context) {
	uidAny, exists := c.Get("uid")
	if !exists {
		utils.Error(c, 4001, "Not logged in")
		return
	}
	uid := uidAny.(string)

	var challenges []models.Challenge
	if err := database.DB.Order("t_start asc").Find(&challenges).Error; err != nil {
		utils.Error(c, 5000, "Query failed")
		return
	}

	type ChallengeItem struct {
		CID    string    `json:"cid"`
		TStart time.Time `json:"t_start"`
		TStop  time.Time `json:"t_stop"`
		Team   bool      `json:"team"`
		Active bool      `json:"active"`
		Solved bool      `json:"solved"`
	}

	now := time.Now()
	items := make([]ChallengeItem, 0, len(challenges))
	for _, ch := range challenges {
		items = append(items, ChallengeItem{
			CID:    ch.CID,
			TStart: ch.TStart,
			TStop:  ch.TStop,
			Team:   ch.Team,
			Active: ch.ActiveAt(now),
			Solved: services.HasSolved(database.DB, uid, ch.CID),
		})
	}

	utils.Success(c, "success", gin.H{
		"total":      len(items),
		"challenges": items,
	})
}

// AdminCreateChallenge registers a challenge with its activation window.
func AdminCreateChallenge(c *gin.Context) {
	var req struct {
		CID    string    `json:"cid" binding:"required"`
		TStart time.Time `json:"t_start" binding:"required"`
		TStop  time.Time `json:"t_stop" binding:"required"`
		Team   bool      `json:"team"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid request: "+err.Error())
		return
	}
	if req.TStop.Before(req.TStart) {
		utils.Error(c, 1002, "t_stop must not precede t_start")
		return
	}

	challenge := models.Challenge{
		CID:    req.CID,
		TStart: req.TStart,
		TStop:  req.TStop,
		Team:   req.Team,
	}
	if err := database.DB.Create(&challenge).Error; err != nil {
		utils.Error(c, 5000, "Failed to create challenge: "+err.Error())
		return
	}

	utils.Success(c, "Challenge created successfully", gin.H{"cid": challenge.CID})
}
