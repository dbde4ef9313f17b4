package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kamarini09/ctf-app/services"
	"github.com/kamarini09/ctf-app/utils"
)

// GetLeaderboard serves the ranked standings. Responses are cached in
// Redis for a few seconds when it is configured; the board tolerates
// that staleness, the scoring path does not and never reads it.
func GetLeaderboard(c *gin.Context) {
	if cached := services.CachedLeaderboard(); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	entries, err := services.ComputeLeaderboard()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	services.CacheLeaderboard(entries)
	c.JSON(http.StatusOK, entries)
}

// GetMaxScore reports the sum of active challenge points, floored at 1
// for progress-bar math.
func GetMaxScore(c *gin.Context) {
	max, err := services.MaxScore()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"maxScore": max})
}
