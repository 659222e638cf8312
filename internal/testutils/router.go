package testutils

import (
	"github.com/saokiritoni/HomePage-BE/routes"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r)
	return r
}
