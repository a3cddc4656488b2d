package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"roomrate/server/config"
)

func SetupRoutes(router *gin.Engine, handler *Handler, cfg *config.Config) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	api := router.Group("/api")
	{
		api.GET("/cities", handler.GetCities)
		api.GET("/room-types", handler.GetRoomTypes)
		api.POST("/predict", handler.Predict)
		api.GET("/map", handler.GetMap)
		api.GET("/chart", handler.GetChart)
	}
}
