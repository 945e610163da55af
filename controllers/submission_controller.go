// file: controllers/submission_controller.go
package controllers

import (
	"errors"

	"FlagCore/services"
	"FlagCore/utils"

	"github.com/gin-gonic/gin"
)

// SubmitFlag validates and credits a flag submission for the logged-in
// user. Rejections come back with the validator's reason; anything
// else is a store failure the client may retry as a fresh attempt.
func SubmitFlag(c *gin.Context) {
	var req struct {
		Flag string `json:"flag" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid request: "+err.Error())
		return
	}

	uidAny, exists := c.Get("uid")
	if !exists {
		utils.Error(c, 4001, "Not logged in")
		return
	}
	uid := uidAny.(string)

	cid, err := services.Submit(req.Flag, uid, services.Request{Request: c.Request}, false)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			utils.Error(c, 3001, vErr.Message)
			return
		}
		utils.Error(c, 5000, "Submission failed, please retry")
		return
	}

	utils.Success(c, "Flag accepted!", gin.H{"cid": cid})
}

// AdminSubmitFlag credits a flag on behalf of a user, optionally
// bypassing the activation-window and exhaustion checks.
func AdminSubmitFlag(c *gin.Context) {
	var req struct {
		Flag  string `json:"flag" binding:"required"`
		UID   string `json:"uid" binding:"required"`
		Force bool   `json:"force"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid request: "+err.Error())
		return
	}

	cid, err := services.Submit(req.Flag, req.UID, services.Request{Request: c.Request}, req.Force)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			utils.Error(c, 3001, vErr.Message)
			return
		}
		utils.Error(c, 5000, "Submission failed, please retry")
		return
	}

	utils.Success(c, "Flag accepted!", gin.H{"cid": cid})
}
