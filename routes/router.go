package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kamarini09/ctf-app/config"
	"github.com/kamarini09/ctf-app/controllers"
	"github.com/kamarini09/ctf-app/middlewares"
	"golang.org/x/time/rate"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Resolve the session user (if any) on every request.
	r.Use(middlewares.Identity())

	var submissionRate rate.Limit
	var submissionBurst int
	if config.C != nil {
		submissionRate = rate.Limit(config.C.SubmissionRate)
		submissionBurst = config.C.SubmissionBurst
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/challenges", controllers.ListChallenges)
	r.GET("/challenges/:id", controllers.GetChallengeDetail)

	r.POST("/submissions", middlewares.Limiter(submissionRate, submissionBurst), controllers.SubmitFlag)
	r.GET("/me/solves", controllers.MySolves)

	r.POST("/teams/create", controllers.CreateTeam)
	r.POST("/teams/join", controllers.JoinTeam)

	r.GET("/leaderboard", controllers.GetLeaderboard)
	r.GET("/leaderboard/max-score", controllers.GetMaxScore)

	r.POST("/attachments/sign-url", controllers.SignAttachmentURL)
	r.GET("/attachments/download", controllers.DownloadAttachment)

	return r
}
