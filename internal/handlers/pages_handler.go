package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index handles GET /
// Renders the shell page that loads the client application; everything after
// this is client-side routing against /api.
func Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html.tmpl", gin.H{
		"Title": "Programmers",
	})
}
