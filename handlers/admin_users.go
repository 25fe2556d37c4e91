package handlers

import (
	"net/http"

	"critichub/cache"
	"critichub/db"
	"critichub/models"
	"critichub/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteUserPage suggests candidates for removal: reviewers whose average
// helpfulness sits at -5 or below across more than 3 reviews.
func DeleteUserPage(c *gin.Context) {
	unhelpful, err := unhelpfulUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"title": "Delete a User", "unhelpful_users": unhelpful})
}

func unhelpfulUsers() ([]string, error) {
	var users []string
	err := db.DB.Table("reviews").
		Select("user_id").
		Group("user_id").
		Having("AVG(helpfulness) <= ? AND COUNT(*) > ?", -5, 3).
		Pluck("user_id", &users).Error
	return users, err
}

// DeleteUser removes a user and their reviews, then recomputes the aggregate
// for every game those reviews touched. All of it in one transaction.
func DeleteUser(c *gin.Context) {
	var input models.DeleteUserInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	var touchedGames []uint
	if err := db.DB.Model(&models.Review{}).
		Where("user_id = ?", input.UserID).
		Pluck("game_id", &touchedGames).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.User{}, "user_id = ?", input.UserID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Review{}, "user_id = ?", input.UserID).Error; err != nil {
			return err
		}
		for _, gameID := range touchedGames {
			if err := recomputeAvgScore(tx, gameID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	if cache.IsRedisAvailable() {
		for _, gameID := range touchedGames {
			cache.InvalidateGameReviews(gameID)
		}
		cache.InvalidateGames()
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// SeeUsers lists every account; inactive users are those who have never
// reviewed anything.
func SeeUsers(c *gin.Context) {
	var users []models.User
	if err := db.DB.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	var inactive []models.User
	err := db.DB.
		Where("user_id NOT IN (SELECT user_id FROM reviews)").
		Find(&inactive).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":          "All Users",
		"users":          users,
		"inactive_users": inactive,
	})
}
