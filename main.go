package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saokiritoni/HomePage-BE/config"
	"github.com/saokiritoni/HomePage-BE/db"
	"github.com/saokiritoni/HomePage-BE/middleware"
	"github.com/saokiritoni/HomePage-BE/pkg/logger"
	"github.com/saokiritoni/HomePage-BE/routes"
)

// @title FarmSystem HomePage API
// @version 1.0
// @description Recruitment application forms, blog moderation and the
// @description member activity feed for the FarmSystem homepage.
// @BasePath /api
func main() {
	config.LoadConfig()
	middleware.Init()

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatal("Failed to init logger:", err)
	}
	defer zapLogger.Sync()

	db.Init()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(zapLogger))
	routes.RegisterRoutes(r)

	zapLogger.Info("server starting", zap.String("port", config.ServerPort))
	if err := r.Run(":" + config.ServerPort); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
