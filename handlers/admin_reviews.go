package handlers

import (
	"errors"
	"net/http"

	"critichub/cache"
	"critichub/db"
	"critichub/models"
	"critichub/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func allReviewsWithGames() ([]models.ReviewWithGame, error) {
	var reviews []models.ReviewWithGame
	err := db.DB.Table("reviews").
		Select("reviews.*, games.name AS name, games.genre AS genre, games.image AS image, games.avg_score AS game_avg").
		Joins("JOIN games ON games.game_id = reviews.game_id").
		Order("games.game_id").
		Scan(&reviews).Error
	return reviews, err
}

// DeleteReviewPage lists every review so the admin can pick an id
func DeleteReviewPage(c *gin.Context) {
	reviews, err := allReviewsWithGames()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"title": "Delete a Review", "reviews": reviews})
}

// DeleteReview removes one review and recomputes its game's aggregate in a
// single transaction.
func DeleteReview(c *gin.Context) {
	var input models.DeleteReviewInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	var review models.Review
	err := db.DB.First(&review, "review_id = ?", input.ReviewID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review"})
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Review{}, "review_id = ?", input.ReviewID).Error; err != nil {
			return err
		}
		return recomputeAvgScore(tx, review.GameID)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}

	if cache.IsRedisAvailable() {
		cache.InvalidateGameReviews(review.GameID)
		cache.InvalidateGames()
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

// SeeReviews lists all reviews with their games, ordered by game
func SeeReviews(c *gin.Context) {
	reviews, err := allReviewsWithGames()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"title": "All Reviews", "reviews": reviews})
}
