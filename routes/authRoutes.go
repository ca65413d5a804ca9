package routes

import (
	"civiclink-be/controllers"
	"civiclink-be/middlewares"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the authentication routes
func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/v1/auth")
	{
		auth.GET("/health", controllers.HealthCheck)
		auth.POST("/signUp", controllers.SignUp)
		auth.POST("/login", controllers.Login)
		auth.GET("/me", middlewares.AuthMiddleware(), controllers.GetMe)
	}
}
