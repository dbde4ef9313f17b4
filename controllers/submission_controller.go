package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kamarini09/ctf-app/database"
	"github.com/kamarini09/ctf-app/dto"
	"github.com/kamarini09/ctf-app/middlewares"
	"github.com/kamarini09/ctf-app/models"
	"github.com/kamarini09/ctf-app/utils"
	"gorm.io/gorm/clause"
)

func submitError(c *gin.Context, status int, msg string) {
	c.JSON(status, dto.SubmitFlagResp{OK: false, Message: msg})
}

// SubmitFlag scores a flag guess. The write is a single INSERT with
// ON CONFLICT (team_id, challenge_id) DO NOTHING, so concurrent
// teammates race at the storage layer and exactly one of them ever
// creates the team's solve; everyone gets a definitive verdict.
func SubmitFlag(c *gin.Context) {
	var req dto.SubmitFlagReq
	// Tolerate empty or invalid JSON; missing fields are rejected below.
	_ = c.ShouldBindJSON(&req)

	if req.UserID == "" {
		req.UserID = middlewares.ContextUserID(c)
	}
	if req.UserID == "" || req.ChallengeID == "" || req.Flag == "" {
		submitError(c, http.StatusBadRequest, "Missing fields")
		return
	}

	trimmed := utils.NormalizeFlag(req.Flag)
	if !utils.ValidFlagFormat(trimmed) {
		submitError(c, http.StatusBadRequest, "Invalid flag format (use KCTF{ANSWER})")
		return
	}

	// Unknown and deactivated challenges are indistinguishable on
	// purpose, so the endpoint cannot be used to probe for hidden ids.
	var challenge models.Challenge
	err := database.DB.
		Select("id", "flag_hash", "points", "is_active").
		Where("id = ?", req.ChallengeID).
		Take(&challenge).Error
	if err != nil || !challenge.IsActive {
		submitError(c, http.StatusNotFound, "Challenge not found")
		return
	}

	var profile models.Profile
	if err := database.DB.Where("id = ?", req.UserID).Take(&profile).Error; err != nil {
		submitError(c, http.StatusBadRequest, "Profile not found")
		return
	}
	if profile.TeamID == nil {
		submitError(c, http.StatusBadRequest, "Join a team first.")
		return
	}

	if utils.HashFlag(trimmed) != challenge.FlagHash {
		// Wrong guess: no record of any kind is written.
		c.JSON(http.StatusOK, dto.SubmitFlagResp{OK: true, Correct: false})
		return
	}

	submission := models.Submission{
		TeamID:      *profile.TeamID,
		ChallengeID: challenge.ID,
		UserID:      req.UserID,
	}
	result := database.DB.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "team_id"}, {Name: "challenge_id"}},
			DoNothing: true,
		}).
		Create(&submission)
	if result.Error != nil {
		log.Printf("submission insert failed: %v", result.Error)
		submitError(c, http.StatusInternalServerError, "Server error")
		return
	}

	points := challenge.Points
	if result.RowsAffected == 0 {
		c.JSON(http.StatusOK, dto.SubmitFlagResp{
			OK:            true,
			Correct:       true,
			AlreadySolved: true,
			Points:        &points,
			Message:       "Correct — but your team already solved this.",
		})
		return
	}

	c.JSON(http.StatusOK, dto.SubmitFlagResp{OK: true, Correct: true, Points: &points})
}

// MySolves lists the challenge ids the caller's team has solved.
// Missing profile, missing team and query failures all collapse to an
// empty list so the challenge page renders regardless.
func MySolves(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		userID = middlewares.ContextUserID(c)
	}
	if userID == "" {
		utils.Error(c, http.StatusBadRequest, "Missing userId")
		return
	}

	var profile models.Profile
	if err := database.DB.Where("id = ?", userID).Take(&profile).Error; err != nil || profile.TeamID == nil {
		c.JSON(http.StatusOK, []string{})
		return
	}

	var challengeIDs []string
	err := database.DB.
		Model(&models.Submission{}).
		Where("team_id = ?", *profile.TeamID).
		Pluck("challenge_id", &challengeIDs).Error
	if err != nil || challengeIDs == nil {
		c.JSON(http.StatusOK, []string{})
		return
	}

	c.JSON(http.StatusOK, challengeIDs)
}
