// file: routes/router.go
package routes

import (
	"time"

	"FlagCore/controllers"
	"FlagCore/middlewares"
	"FlagCore/models"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	apiV1 := r.Group("/api/v1")
	{
		usersPublic := apiV1.Group("/users")
		{
			usersPublic.POST("/register", controllers.Register)
			usersPublic.POST("/login", controllers.Login)
		}

		flagRoutes := apiV1.Group("/flags")
		flagRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			flagRoutes.POST("/submit", middlewares.SubmitRateLimit(30, time.Minute), controllers.SubmitFlag)
		}

		challengeRoutes := apiV1.Group("/challenges")
		challengeRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			challengeRoutes.GET("", controllers.ListChallenges)
		}

		apiV1.GET("/solves", controllers.GetSolveBoard)

		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminRoutes.POST("/challenges", controllers.AdminCreateChallenge)
			adminRoutes.POST("/flags", controllers.AdminCreateFlag)
			adminRoutes.POST("/flags/submit", controllers.AdminSubmitFlag)
			adminRoutes.GET("/events", controllers.AdminGetEvents)
			adminRoutes.PUT("/teams", controllers.AdminAssignTeam)
		}
	}

	return r
}
