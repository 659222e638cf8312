package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/saokiritoni/HomePage-BE/docs"
	"github.com/saokiritoni/HomePage-BE/handlers"
	"github.com/saokiritoni/HomePage-BE/middleware"
	"github.com/saokiritoni/HomePage-BE/repositories"
	"github.com/saokiritoni/HomePage-BE/services"
)

func RegisterRoutes(r *gin.Engine) {

	// init
	repos := repositories.New()
	svc := services.New(repos)
	h := handlers.New(svc)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	apply := api.Group("/apply")
	{
		apply.GET("/questions", h.Apply.GetQuestions)
		apply.POST("", h.Apply.CreateApply)
		apply.POST("/save", h.Apply.SaveApply)
		apply.POST("/load", h.Apply.LoadApply)
	}

	api.POST("/auth/login", h.Auth.Login)
	api.GET("/farming-logs", h.FarmingLog.ListFarmingLogs)

	member := api.Group("/")
	member.Use(middleware.JWTAuthMiddleware())
	{
		member.POST("/blogs", h.Blog.RegisterBlog)
		member.POST("/farming-logs", h.FarmingLog.CreateFarmingLog)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.AuthorizeAdmin())
	{
		admin.GET("/applies", h.Apply.ListSubmitted)
		admin.GET("/applies/:applyId", h.Apply.GetSubmitted)

		admin.GET("/blogs/pending", h.Blog.GetPendingBlogs)
		admin.POST("/blogs/:blogId/approve", h.Blog.ApproveBlog)
		admin.POST("/blogs/:blogId/reject", h.Blog.RejectBlog)

		admin.GET("/users", h.User.GetUsers)
		admin.GET("/users/:id", h.User.GetUserByID)
		admin.PUT("/users/:id", h.User.UpdateUser)

		admin.GET("/audit-logs", h.Audit.GetAuditLogs)
	}
}
