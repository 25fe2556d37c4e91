package handlers

import (
	"net/http"

	"critichub/concurrent"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns the admin monitoring snapshot. The independent
// aggregate queries run concurrently.
func GetDashboardStats(c *gin.Context) {
	stats, err := concurrent.CalculateDashboardStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate statistics"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"statistics": stats})
}
