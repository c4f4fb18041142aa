package api

import (
	"Songboard/internal/api/middleware"
	"Songboard/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		songGroup := apiGroup.Group("/songs")
		{
			songGroup.GET("", group.SongHandler.ListSongs)
			songGroup.GET("/search", group.SongHandler.SearchSongs)
		}

		apiGroup.POST("/rate", group.SongHandler.RateSong)
	}

	return r
}
