package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"programmers-api/internal/session"
	"programmers-api/internal/xsrf"
)

const (
	// SessionCookie carries the anonymous session ID. HttpOnly: scripts never
	// need it.
	SessionCookie = "programmers_session"

	// XSRFCookie carries the anti-forgery token. Deliberately not HttpOnly so
	// the frontend can read it and echo it back in XSRFHeader.
	XSRFCookie = "XSRF-TOKEN"

	// XSRFHeader is the request header the frontend must send on writes.
	XSRFHeader = "X-XSRF-TOKEN"
)

// sessionKey is the context key the handlers read the session ID from.
const sessionKey = "session_id"

// Session ensures every request runs under a live anonymous session and that
// the browser holds a valid anti-forgery cookie for it. New visitors get a
// fresh session; returning visitors get their expiry slid forward.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := session.GetStore()

		var sess session.Session
		fresh := false

		if id, err := c.Cookie(SessionCookie); err == nil && id != "" {
			sess, _ = store.Touch(id)
		}
		if sess.ID == "" {
			sess = store.Create()
			fresh = true
		}

		if fresh {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, sess.ID, int(store.TTL().Seconds()), "/", "", false, true)
		}

		if !hasValidXSRFCookie(c, sess.ID) {
			token, err := xsrf.GenerateToken(sess.ID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue security token"})
				c.Abort()
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(XSRFCookie, token, int(store.TTL().Seconds()), "/", "", false, false)
		}

		c.Set(sessionKey, sess.ID)
		c.Next()
	}
}

// SessionID returns the session ID set by Session, or "" if the middleware
// did not run.
func SessionID(c *gin.Context) string {
	id, _ := c.Get(sessionKey)
	s, _ := id.(string)
	return s
}

func hasValidXSRFCookie(c *gin.Context, sessionID string) bool {
	token, err := c.Cookie(XSRFCookie)
	if err != nil || token == "" {
		return false
	}
	_, err = xsrf.ValidateToken(token, sessionID)
	return err == nil
}
