package handlers

import (
	"net/http"
	"strconv"

	"critichub/cache"
	"critichub/db"
	"critichub/models"
	"critichub/utils"

	"github.com/gin-gonic/gin"
)

// Home lists established titles: games with more than two reviews, newest
// release first. The threshold is fixed, not configurable.
func Home(c *gin.Context) {
	if cache.IsRedisAvailable() {
		if games, err := cache.GetHomeGames(); err == nil && games != nil {
			utils.Log.Debug("Cache HIT: home games")
			c.JSON(http.StatusOK, gin.H{"games": games})
			return
		}
	}

	var games []models.Game
	err := db.DB.
		Where("game_id IN (SELECT game_id FROM reviews GROUP BY game_id HAVING COUNT(*) > 2)").
		Order("release_date DESC").
		Find(&games).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch games"})
		return
	}

	if cache.IsRedisAvailable() {
		cache.SetHomeGames(games)
	}

	c.JSON(http.StatusOK, gin.H{"games": games})
}

// Fixed ordering table for the discover view. The route index selects from
// here; user input is never spliced into the ORDER BY clause.
var discoverOrderings = []string{
	"release_date DESC",
	"name ASC",
	"avg_score DESC NULLS LAST",
}

// Discover lists the full catalog under one of the fixed orderings, with two
// mutually exclusive refinements posted from the same page: a name-prefix
// search and a genre filter. Whichever submit control fired wins; an empty
// search or the "None" genre falls back to the plain ordered list.
func Discover(c *gin.Context) {
	order, err := strconv.Atoi(c.Param("order"))
	if err != nil || order < 0 || order >= len(discoverOrderings) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ordering"})
		return
	}
	orderBy := discoverOrderings[order]

	genres, err := distinctGenres()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch genres"})
		return
	}

	var games []models.Game
	switch {
	case c.Request.Method == http.MethodPost && c.PostForm("submit_search") != "" && c.PostForm("search") != "":
		search := c.PostForm("search")
		err = db.DB.Where("LOWER(name) LIKE LOWER(?)", search+"%").Find(&games).Error
	case c.Request.Method == http.MethodPost && c.PostForm("submit_genre") != "" && c.PostForm("genre") != "None" && c.PostForm("genre") != "":
		genre := c.PostForm("genre")
		err = db.DB.Where("genre = ?", genre).Order(orderBy).Find(&games).Error
	default:
		err = db.DB.Order(orderBy).Find(&games).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch games"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":  order,
		"games":  games,
		"genres": genres,
	})
}

func distinctGenres() ([]string, error) {
	if cache.IsRedisAvailable() {
		if genres, err := cache.GetGenres(); err == nil && genres != nil {
			return genres, nil
		}
	}

	var genres []string
	err := db.DB.Model(&models.Game{}).Distinct("genre").Order("genre").Pluck("genre", &genres).Error
	if err != nil {
		return nil, err
	}

	if cache.IsRedisAvailable() {
		cache.SetGenres(genres)
	}
	return genres, nil
}
