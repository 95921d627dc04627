package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mallmap/server/internal/middleware"
)

// SetupRoutes registers the API on router. limiter guards click tracking and
// may be nil.
func SetupRoutes(router *gin.Engine, handler *Handler, limiter *middleware.RateLimiter, origins []string) {
	corsConfig := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	router.Use(cors.New(corsConfig))

	router.GET("/healthz", handler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/malls", handler.ListMalls)
		api.GET("/malls/:id", handler.GetMall)
		api.GET("/regions", handler.GetRegions)
		api.GET("/map", handler.GetMap)
		api.GET("/map.svg", handler.GetMapSVG)
		api.GET("/map.geojson", handler.GetMapGeoJSON)

		track := []gin.HandlerFunc{}
		if limiter != nil {
			track = append(track, limiter.Limit())
		}
		track = append(track, handler.TrackClick)
		api.POST("/track-click", track...)
	}
}
