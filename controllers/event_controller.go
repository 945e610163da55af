// file: controllers/event_controller.go
package controllers

import (
	"strconv"

	"FlagCore/database"
	"FlagCore/models"
	"FlagCore/utils"

	"github.com/gin-gonic/gin"
)

// AdminGetEvents lists audit events, newest first, with optional
// uid/cid/type filters. Events are append-only; this surface is
// read-only by construction.
func AdminGetEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 1000 {
		limit = 100
	}

	db := database.DB.Model(&models.Event{})
	if uid := c.Query("uid"); uid != "" {
		db = db.Where("uid = ?", uid)
	}
	if cid := c.Query("cid"); cid != "" {
		db = db.Where("cid = ?", cid)
	}
	if typ := c.Query("type"); typ != "" {
		db = db.Where("type = ?", typ)
	}

	var total int64
	db.Count(&total)

	var events []models.Event
	if err := db.Order("id desc").Offset((page - 1) * limit).Limit(limit).Find(&events).Error; err != nil {
		utils.Error(c, 5000, "Query failed")
		return
	}

	utils.Success(c, "success", gin.H{
		"total":  total,
		"events": events,
	})
}
