package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kamarini09/ctf-app/dto"
	"github.com/kamarini09/ctf-app/services"
	"github.com/kamarini09/ctf-app/utils"
)

// StorageBaseURL is where the download gateway redirects verified
// requests; set from config at startup.
var StorageBaseURL string

// SignAttachmentURL hands out a 5-minute signed download URL for an
// attachment path. Paths are opaque here; whether they exist is the
// backing store's problem.
func SignAttachmentURL(c *gin.Context) {
	var req dto.SignURLReq
	_ = c.ShouldBindJSON(&req)
	if req.Path == "" {
		utils.Error(c, http.StatusBadRequest, "Missing path")
		return
	}

	if services.Signer == nil {
		utils.Error(c, http.StatusInternalServerError, "Attachment signing not configured")
		return
	}

	c.JSON(http.StatusOK, dto.SignURLResp{
		URL: services.Signer.SignURL(req.Path, services.SignedURLTTL),
	})
}

// DownloadAttachment is the gateway behind signed URLs: verify the
// signature and expiry, then redirect to the backing store.
func DownloadAttachment(c *gin.Context) {
	path := c.Query("path")
	sig := c.Query("sig")
	exp, err := strconv.ParseInt(c.Query("exp"), 10, 64)
	if path == "" || sig == "" || err != nil {
		utils.Error(c, http.StatusBadRequest, "Missing path, exp or sig")
		return
	}

	if services.Signer == nil {
		utils.Error(c, http.StatusInternalServerError, "Attachment signing not configured")
		return
	}

	if err := services.Signer.Verify(path, exp, sig); err != nil {
		utils.Error(c, http.StatusForbidden, err.Error())
		return
	}

	c.Redirect(http.StatusFound, StorageBaseURL+"/"+strings.TrimPrefix(path, "/"))
}
