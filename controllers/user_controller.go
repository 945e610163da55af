// file: controllers/user_controller.go
package controllers

import (
	"FlagCore/database"
	"FlagCore/models"
	"FlagCore/utils"

	"github.com/gin-gonic/gin"
)

func Register(c *gin.Context) {
	var req struct {
		UID      string `json:"uid" binding:"required"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid request: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("uid = ?", req.UID).First(&user).Error; err == nil {
		utils.Error(c, 2001, "User already exists")
		return
	}

	newUser := models.User{
		UID:      req.UID,
		Password: req.Password,
	}
	if err := database.DB.Create(&newUser).Error; err != nil {
		utils.Error(c, 5000, "Database error: "+err.Error())
		return
	}

	utils.Success(c, "User registered successfully", gin.H{
		"uid":  newUser.UID,
		"role": newUser.Role,
	})
}

func Login(c *gin.Context) {
	var req struct {
		UID      string `json:"uid" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid request: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("uid = ?", req.UID).First(&user).Error; err != nil {
		utils.Error(c, 2002, "Unknown user or wrong password")
		return
	}
	if !user.CheckPassword(req.Password) {
		utils.Error(c, 2002, "Unknown user or wrong password")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.Error(c, 5002, "Failed to generate token")
		return
	}

	utils.Success(c, "Login success", gin.H{
		"token": token,
		"uid":   user.UID,
		"role":  user.Role,
	})
}
