package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kamarini09/ctf-app/database"
	"github.com/kamarini09/ctf-app/dto"
	"github.com/kamarini09/ctf-app/middlewares"
	"github.com/kamarini09/ctf-app/models"
	"github.com/kamarini09/ctf-app/utils"
	"gorm.io/gorm"
)

const joinCodeLength = 6
const createTeamAttempts = 5

// CreateTeam creates a team with a fresh join code and puts the
// creator on it. The code column is unique; on the (rare) collision
// the insert is retried with a new code rather than silently reusing
// one.
func CreateTeam(c *gin.Context) {
	var req dto.CreateTeamReq
	_ = c.ShouldBindJSON(&req)
	if req.UserID == "" {
		req.UserID = middlewares.ContextUserID(c)
	}
	if req.Name == "" || req.UserID == "" {
		utils.Error(c, http.StatusBadRequest, "Missing name or userId")
		return
	}

	var profile models.Profile
	if err := database.DB.Where("id = ?", req.UserID).Take(&profile).Error; err != nil {
		utils.Error(c, http.StatusBadRequest, "Profile not found")
		return
	}

	var team models.Team
	for attempt := 0; ; attempt++ {
		team = models.Team{
			ID:        uuid.NewString(),
			Name:      req.Name,
			Code:      utils.GenerateJoinCode(joinCodeLength),
			CreatedBy: req.UserID,
		}
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&team).Error; err != nil {
				return err
			}
			return tx.Model(&models.Profile{}).
				Where("id = ?", req.UserID).
				Update("team_id", team.ID).Error
		})
		if err == nil {
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) && attempt < createTeamAttempts-1 {
			continue
		}
		utils.Error(c, http.StatusInternalServerError, "Failed to create team")
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": dto.TeamResp{
		ID:   team.ID,
		Name: team.Name,
		Code: team.Code,
	}})
}

// JoinTeam assigns the profile to the team behind a join code.
// Assignment is last-write-wins: joining again simply moves the
// profile to the new team.
func JoinTeam(c *gin.Context) {
	var req dto.JoinTeamReq
	_ = c.ShouldBindJSON(&req)
	if req.UserID == "" {
		req.UserID = middlewares.ContextUserID(c)
	}
	if req.JoinCode == "" || req.UserID == "" {
		utils.Error(c, http.StatusBadRequest, "Missing joinCode or userId")
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.JoinCode))

	var team models.Team
	if err := database.DB.Where("code = ?", code).Take(&team).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Team not found")
		return
	}

	result := database.DB.Model(&models.Profile{}).
		Where("id = ?", req.UserID).
		Update("team_id", team.ID)
	if result.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to join team")
		return
	}
	if result.RowsAffected == 0 {
		utils.Error(c, http.StatusBadRequest, "Profile not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": dto.TeamResp{
		ID:   team.ID,
		Name: team.Name,
		Code: team.Code,
	}})
}
