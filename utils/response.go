package utils

import (
	"github.com/gin-gonic/gin"
)

// Error writes the `{"error": msg}` shape used by every endpoint
// except /submissions, which has its own ok/correct envelope.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}
