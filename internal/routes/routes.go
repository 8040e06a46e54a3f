package routes

import (
	"net/http"
	"programmers-api/internal/handlers"
	"programmers-api/internal/middleware"
	"programmers-api/web"

	"github.com/gin-gonic/gin"
)

func SetupRoutes() *gin.Engine {
	// Create a new GIN Router
	ginRouter := gin.Default()

	ginRouter.SetHTMLTemplate(web.Templates())

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Programmers API is running",
		})
	})

	// Static client assets; no session needed to fetch them
	ginRouter.StaticFS("/static", http.FS(web.Static()))

	// Everything registered below runs under an anonymous session that keeps
	// the XSRF-TOKEN cookie fresh
	ginRouter.Use(middleware.Session())

	// Shell page; the client app takes over routing from here
	ginRouter.GET("/", handlers.Index)

	api := ginRouter.Group("/api")
	api.Use(middleware.XSRF())
	{
		api.GET("/token", handlers.GetToken)

		// Programmer endpoints; the .json alias mirrors the plain route, and
		// item handlers strip the suffix from the id segment themselves
		api.GET("/programmers", handlers.GetProgrammers)
		api.GET("/programmers.json", handlers.GetProgrammers)
		api.POST("/programmers", handlers.CreateProgrammer)
		api.POST("/programmers.json", handlers.CreateProgrammer)
		api.GET("/programmers/:id", handlers.GetProgrammerByID)
		api.PUT("/programmers/:id", handlers.UpdateProgrammer)
		api.DELETE("/programmers/:id", handlers.DeleteProgrammer)

		// Stats + live events feed
		api.GET("/stats", handlers.GetAvatarStats)
		api.GET("/events", handlers.EventsHandler)
	}

	return ginRouter
}
