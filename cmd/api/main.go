package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"baseload-study/internal/api/handlers"
	"baseload-study/internal/api/middleware"
	"baseload-study/internal/config"
	"baseload-study/internal/logging"
)

func main() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("api")
	viper.SetDefault("port", "8080")
	viper.SetDefault("env", "development")
	viper.SetDefault("log_level", "")
	viper.SetDefault("log_format", "console")

	logger, err := logging.New(config.LoggingConfig{
		Level:  viper.GetString("log_level"),
		Format: viper.GetString("log_format"),
	}, "")
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	if viper.GetString("env") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler())

	sitesHandler := handlers.NewSitesHandler(logger)
	simulateHandler := handlers.NewSimulateHandler(logger)
	sweepHandler := handlers.NewSweepHandler(logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/sites/select", sitesHandler.SelectSites)
		v1.POST("/simulate", simulateHandler.Simulate)
		v1.POST("/sweep", sweepHandler.Sweep)
	}

	addr := ":" + viper.GetString("port")
	logger.Info("starting API server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
