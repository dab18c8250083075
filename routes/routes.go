package routes

import (
	"team-evaluation-api/controllers"
	"team-evaluation-api/middleware"
	"team-evaluation-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Team Evaluation API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Rubric criteria (fixed reference data)
			protected.GET("/criteria", controllers.GetCriteria)

			// Teams
			teams := protected.Group("/teams")
			{
				teams.GET("", controllers.GetTeams)
				teams.GET("/:id", controllers.GetTeam)

				// Students register their own teams; admins can fix them up
				teams.POST("", middleware.RequireRole(models.RoleStudent, models.RoleAdmin), controllers.CreateTeam)
				teams.PUT("/:id", middleware.RequireRole(models.RoleStudent, models.RoleAdmin), controllers.UpdateTeam)
				teams.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteTeam)

				// Only admin assigns panels and mentors
				teams.PUT("/:id/assign", middleware.RequireRole(models.RoleAdmin), controllers.AssignPanel)
			}

			// Teachers
			teachers := protected.Group("/teachers")
			{
				teachers.GET("", controllers.GetTeachers)
				teachers.GET("/:id", controllers.GetTeacher)
				teachers.POST("", middleware.RequireRole(models.RoleAdmin), controllers.CreateTeacher)
				teachers.PUT("/:id", middleware.RequireRole(models.RoleAdmin), controllers.UpdateTeacher)
				teachers.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteTeacher)
			}

			// Panels
			panels := protected.Group("/panels")
			{
				panels.GET("", controllers.GetPanels)
				panels.GET("/:id", controllers.GetPanel)
				panels.POST("", middleware.RequireRole(models.RoleAdmin), controllers.CreatePanel)
				panels.PUT("/:id", middleware.RequireRole(models.RoleAdmin), controllers.UpdatePanel)
				panels.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeletePanel)
			}

			// Marks
			marks := protected.Group("/marks")
			{
				marks.GET("", controllers.GetMarks)
				marks.POST("", middleware.RequireRole(models.RoleTeacher), controllers.SubmitMark)
				marks.GET("/team/:teamId", controllers.GetTeamMarks)
				marks.GET("/team/:teamId/teacher/:teacherId", controllers.GetTeacherMarksForTeam)
				marks.GET("/team/:teamId/average", controllers.GetTeamAverages)
			}

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", controllers.GetNotifications)
				notifications.PUT("/:id/read", controllers.MarkNotificationRead)
			}
		}
	}
}
