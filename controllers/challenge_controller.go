package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kamarini09/ctf-app/database"
	"github.com/kamarini09/ctf-app/dto"
	"github.com/kamarini09/ctf-app/models"
	"github.com/kamarini09/ctf-app/utils"
)

// ListChallenges returns the active catalog, cheapest first so easier
// challenges surface at the top of the page.
func ListChallenges(c *gin.Context) {
	var challenges []models.Challenge
	err := database.DB.
		Where("is_active = ?", true).
		Order("points asc").
		Find(&challenges).Error
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	items := make([]dto.ChallengeItemResp, 0, len(challenges))
	for _, ch := range challenges {
		items = append(items, dto.ChallengeItemResp{
			ID:     ch.ID,
			Title:  ch.Title,
			Points: ch.Points,
		})
	}

	c.JSON(http.StatusOK, items)
}

// GetChallengeDetail returns one active challenge. Unknown and
// inactive ids both come back as 404, and the response DTO has no
// field that could carry the flag hash.
func GetChallengeDetail(c *gin.Context) {
	id := c.Param("id")

	var challenge models.Challenge
	if err := database.DB.Where("id = ?", id).Take(&challenge).Error; err != nil || !challenge.IsActive {
		utils.Error(c, http.StatusNotFound, "Not found")
		return
	}

	c.JSON(http.StatusOK, dto.ChallengeDetailResp{
		ID:            challenge.ID,
		Title:         challenge.Title,
		Description:   challenge.Description,
		Points:        challenge.Points,
		AttachmentURL: challenge.AttachmentURL,
		LinkURL:       challenge.LinkURL,
	})
}
