package handlers

import (
	"errors"
	"net/http"

	"critichub/db"
	"critichub/models"
	"critichub/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminHome is the hub listing the admin operations
func AdminHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title": "Admin Commands",
		"commands": []string{
			"/admin/add-game",
			"/admin/delete-game",
			"/admin/delete-user",
			"/admin/delete-review",
			"/admin/upload-image",
			"/admin/see-reviews",
			"/admin/see-users",
			"/admin/stats",
			"/new-admin",
		},
	})
}

func NewAdminPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"title": "Add New Admin"})
}

// NewAdmin creates another administrator account. Same uniqueness-checked
// pattern as user registration, against the admin identifier space.
func NewAdmin(c *gin.Context) {
	var input models.NewAdminInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	var existing models.Admin
	err := db.DB.Where("admin_id = ?", input.AdminID).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"errors": gin.H{"admin_id": "Username already taken"}})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up admin"})
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create admin"})
		return
	}

	admin := models.Admin{AdminID: input.AdminID, Password: hashed}
	if err := db.DB.Create(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create admin"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Admin created", "admin_id": admin.AdminID})
}
