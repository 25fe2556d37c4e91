package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"critichub/cache"
	"critichub/db"
	"critichub/middleware"
	"critichub/models"
	"critichub/monitoring"
	"critichub/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Reviews voted this far down stay hidden from the game page.
const helpfulnessFloor = -5

// GameDetail shows one game and its 8 most recent visible reviews. An unknown
// id produces an empty detail, not an error status.
func GameDetail(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Param("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var game models.Game
	err = db.DB.First(&game, "game_id = ?", gameID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{"game": nil, "reviews": []models.Review{}})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch game"})
		return
	}

	reviews, err := visibleReviews(game.GameID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"game": game, "reviews": reviews})
}

func visibleReviews(gameID uint) ([]models.Review, error) {
	if cache.IsRedisAvailable() {
		if reviews, err := cache.GetGameReviews(gameID); err == nil && reviews != nil {
			utils.Log.Debug(fmt.Sprintf("Cache HIT: reviews for game %d", gameID))
			return reviews, nil
		}
	}

	var reviews []models.Review
	err := db.DB.
		Where("game_id = ? AND helpfulness > ?", gameID, helpfulnessFloor).
		Order("date DESC").
		Limit(8).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	if cache.IsRedisAvailable() {
		cache.SetGameReviews(gameID, reviews)
	}
	return reviews, nil
}

// Helpfulness applies a reader's helpful (1, +1) or not-helpful (0, -1) vote
// to a review. The session remembers the last vote per review: casting the
// same value again is a no-op, switching applies only the new delta. Votes on
// the caller's own review never touch the counter. Always redirects back to
// the game page.
func Helpfulness(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Param("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}
	reviewID, err := strconv.ParseUint(c.Param("review_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}
	vote, err := strconv.Atoi(c.Param("vote"))
	if err != nil || (vote != 0 && vote != 1) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vote"})
		return
	}

	backToGame := fmt.Sprintf("/game/%d", gameID)

	prior, voted := middleware.RecordedVote(c, uint(reviewID))
	if voted && prior == vote {
		c.Redirect(http.StatusFound, backToGame)
		return
	}

	if err := middleware.RecordVote(c, uint(reviewID), vote); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}

	delta := 1
	voteLabel := "helpful"
	if vote == 0 {
		delta = -1
		voteLabel = "unhelpful"
	}

	var review models.Review
	err = db.DB.First(&review, "review_id = ?", reviewID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Redirect(http.StatusFound, backToGame)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review"})
		return
	}

	// Authors cannot vote up their own reviews
	if review.UserID != c.GetString("user_id") {
		err = db.DB.Model(&models.Review{}).
			Where("review_id = ?", reviewID).
			UpdateColumn("helpfulness", gorm.Expr("helpfulness + ?", delta)).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
			return
		}
		monitoring.HelpfulnessVotes.WithLabelValues(voteLabel).Inc()

		if cache.IsRedisAvailable() {
			cache.InvalidateGameReviews(review.GameID)
		}
	}

	c.Redirect(http.StatusFound, backToGame)
}
