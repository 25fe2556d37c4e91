package handlers

import (
	"errors"
	"net/http"
	"strings"

	"critichub/db"
	"critichub/models"
	"critichub/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"title": "Register"})
}

// Register creates a user account. Rejects taken ids, ids that would collide
// with the admin sentinel, and profanity. Does not log the new user in.
func Register(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	var existing models.User
	err := db.DB.Where("user_id = ?", input.UserID).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"errors": gin.H{"user_id": "Username already taken"}})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}

	if strings.Contains(strings.ToLower(input.UserID), "admin") {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"user_id": "Username cannot contain 'admin'"}})
		return
	}
	if utils.ContainsProfanity(input.UserID) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"user_id": "Please do not use vulgar language in your name"}})
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	user := models.User{UserID: input.UserID, Password: hashed}
	if err := db.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/login")
}
