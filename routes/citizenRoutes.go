package routes

import (
	"os"
	"strconv"

	"civiclink-be/controllers"
	"civiclink-be/middlewares"

	"github.com/gin-gonic/gin"
)

// CitizenRoutes sets up the citizen-facing routes
func CitizenRoutes(r *gin.Engine) {
	issueLimit := 10
	if v, err := strconv.Atoi(os.Getenv("ISSUE_DAILY_LIMIT")); err == nil && v > 0 {
		issueLimit = v
	}

	citizen := r.Group("/api/v1/citizen")
	{
		citizen.GET("/details", controllers.GetCitizenDetails)
		citizen.POST("/issue", middlewares.IssueRateLimiter(issueLimit), controllers.HandleIssue)
		citizen.POST("/issue/:id/support", controllers.HandleSupportIssue)
		citizen.GET("/all", controllers.GetAllIssues)
		citizen.GET("/leaderboard", controllers.GetLeaderboard)
		citizen.GET("/analytics", controllers.GetIssueAnalytics)
		citizen.GET("/issues/recent", controllers.RecentIssues)
	}
}
