package handlers

import (
	"net/http"

	"critichub/db"
	"critichub/models"

	"github.com/gin-gonic/gin"
)

// Profile lists the logged-in user's reviews joined with their games, plus
// the plain average of the scores they have given (1-10 scale, not the 0-100
// aggregate used for games).
func Profile(c *gin.Context) {
	userID := c.GetString("user_id")

	var reviews []models.ReviewWithGame
	err := db.DB.Table("reviews").
		Select("reviews.*, games.name AS name, games.genre AS genre, games.image AS image, games.avg_score AS game_avg").
		Joins("JOIN games ON games.game_id = reviews.game_id").
		Where("reviews.user_id = ?", userID).
		Scan(&reviews).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	var avg struct{ Avg *float64 }
	err = db.DB.Model(&models.Review{}).
		Select("AVG(score) as avg").
		Where("user_id = ?", userID).
		Scan(&avg).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch average"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":   userID,
		"reviews":   reviews,
		"avg_score": avg.Avg,
	})
}
