package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"programmers-api/internal/xsrf"
)

// XSRF rejects state-changing requests that do not carry a valid anti-forgery
// token in the X-XSRF-TOKEN header. The token must be the one minted for the
// caller's session, so a token stolen cross-site is useless without the
// matching session cookie.
func XSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch:
		default:
			c.Next()
			return
		}

		token := c.GetHeader(XSRFHeader)
		if token == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Missing anti-forgery token"})
			c.Abort()
			return
		}

		if _, err := xsrf.ValidateToken(token, SessionID(c)); err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid anti-forgery token"})
			c.Abort()
			return
		}

		c.Next()
	}
}
