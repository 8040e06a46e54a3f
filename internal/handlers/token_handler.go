package handlers

import (
	"net/http"
	"programmers-api/internal/middleware"
	"programmers-api/internal/xsrf"

	"github.com/gin-gonic/gin"
)

// GetToken handles GET /api/token
// Returns a fresh anti-forgery token for the caller's session, for clients
// that prefer fetching it over reading the XSRF-TOKEN cookie.
func GetToken(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Session not established",
		})
		return
	}

	token, err := xsrf.GenerateToken(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to issue token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
	})
}
