package server

import (
	"net/http"
	"time"

	httpHandler "berta-backend/interfaces/http"
	"berta-backend/interfaces/middleware"
	"berta-backend/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(cacheHandler httpHandler.ICacheHandler, tracker *usecase.Tracker) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))
	router.Use(middleware.Tracking(tracker))

	router.GET("/", cacheHandler.GetResource)
	router.GET("/healthz", cacheHandler.Health)

	// the previous incarnation of this service answered any GET path
	router.NoRoute(func(ctx *gin.Context) {
		if ctx.Request.Method == http.MethodGet {
			cacheHandler.GetResource(ctx)
			return
		}
		ctx.Status(http.StatusNotFound)
	})

	return router
}
