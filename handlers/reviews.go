package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"critichub/cache"
	"critichub/db"
	"critichub/models"
	"critichub/monitoring"
	"critichub/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// WriteReviewPage returns the game being reviewed
func WriteReviewPage(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Param("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var game models.Game
	err = db.DB.First(&game, "game_id = ?", gameID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{"game": nil})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch game"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"game": game})
}

// WriteReview submits a review for a game. One review per user per game;
// vulgar language is rejected. The insert and the aggregate-score recompute
// run in a single transaction.
func WriteReview(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Param("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}
	userID := c.GetString("user_id")

	var input models.WriteReviewInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	var existing models.Review
	err = db.DB.Where("game_id = ? AND user_id = ?", gameID, userID).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"review_text": "You have already reviewed this game"}})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up reviews"})
		return
	}

	if utils.ContainsProfanity(input.ReviewText) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"review_text": "Please do not use vulgar language"}})
		return
	}

	review := models.Review{
		UserID:      userID,
		GameID:      uint(gameID),
		Date:        time.Now().Format("2006-01-02"),
		Description: input.ReviewText,
		Score:       input.UserScore,
		Helpfulness: 0,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		return recomputeAvgScore(tx, uint(gameID))
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	monitoring.ReviewsCreated.Inc()
	if cache.IsRedisAvailable() {
		cache.InvalidateGameReviews(uint(gameID))
		cache.InvalidateGames()
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/game/%d", gameID))
}

// recomputeAvgScore rewrites a game's aggregate as ROUND(AVG(score)*10) over
// its current reviews, scaling the 1-10 inputs to 0-100. With no reviews
// left the subquery yields NULL, the "no score yet" sentinel.
func recomputeAvgScore(tx *gorm.DB, gameID uint) error {
	return tx.Exec(
		`UPDATE games SET avg_score = (SELECT ROUND(AVG(score) * 10) FROM reviews WHERE game_id = ?) WHERE game_id = ?`,
		gameID, gameID,
	).Error
}
