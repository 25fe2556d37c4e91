package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"critichub/cache"
	"critichub/db"
	"critichub/models"
	"critichub/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AddGamePage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"title": "Add a game"})
}

// AddGame inserts a catalog entry with no aggregate score yet, then points
// the admin at the image upload step.
func AddGame(c *gin.Context) {
	var input models.AddGameInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	game := models.Game{
		Name:        input.Name,
		Genre:       input.Genre,
		ReleaseDate: input.ReleaseDate,
		Developer:   input.Developer,
		Publisher:   input.Publisher,
		AvgScore:    nil, // no reviews yet
		Image:       input.Image,
		Description: input.Description,
	}
	if err := db.DB.Create(&game).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	if cache.IsRedisAvailable() {
		cache.InvalidateGames()
	}

	c.Redirect(http.StatusSeeOther, "/admin/upload-image")
}

// DeleteGamePage lists the catalog so the admin can pick an id
func DeleteGamePage(c *gin.Context) {
	var games []models.Game
	if err := db.DB.Find(&games).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch games"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"title": "Delete a game", "games": games})
}

// DeleteGame removes a game and all of its reviews. The games table carries
// no foreign-key cascade, so both deletes run in one transaction.
func DeleteGame(c *gin.Context) {
	var input models.DeleteGameInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Game{}, "game_id = ?", input.GameID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Review{}, "game_id = ?", input.GameID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
		return
	}

	if cache.IsRedisAvailable() {
		cache.InvalidateGameReviews(input.GameID)
		cache.InvalidateGames()
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
}

func UploadImagePage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"title": "Upload an Image"})
}

// UploadImage stores a game image under the static directory. Extension
// allow-list only, original filename sanitized and kept.
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"image": "No file selected"}})
		return
	}
	if file.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"image": "No file selected"}})
		return
	}
	if !utils.AllowedImageFile(file.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"image": "Images only (png, jpg, jpeg)"}})
		return
	}

	filename := utils.SanitizeFilename(file.Filename)
	dest := filepath.Join(StaticDir(), filename)
	if err := c.SaveUploadedFile(file, dest); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

// StaticDir is where uploaded game images live
func StaticDir() string {
	if dir := os.Getenv("STATIC_DIR"); dir != "" {
		return dir
	}
	return "static"
}
