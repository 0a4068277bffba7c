package app

import (
	"mahad_backend/internal/config"
	"mahad_backend/internal/middleware"
	"mahad_backend/internal/model"
	"mahad_backend/pkg/monitoring"

	"mahad_backend/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.POST("/register", c.auth.Register)
		api.POST("/login", c.auth.Login)
	}

	auth := api.Group("")
	auth.Use(middleware.AuthMiddleware(cfg))
	{
		auth.GET("/profile", c.auth.GetProfile)
		auth.PUT("/user/profile", c.user.UpdateProfile)
		auth.POST("/user/avatar/upload", c.user.UploadAvatar)

		auth.GET("/targets", c.target.List)
		auth.GET("/targets/:id", c.target.Get)

		auth.GET("/quizzes", c.quiz.ListPublished)
		auth.GET("/quizzes/:id", c.quiz.Get)
		auth.POST("/quizzes/:id/submit", c.quiz.Submit)

		auth.GET("/leaderboard", c.leaderboard.GlobalLeaderboard)
		auth.GET("/residents", c.resident.List)
	}

	staff := api.Group("/staff")
	staff.Use(middleware.AuthMiddleware(cfg))
	staff.Use(middleware.RoleMiddleware(model.RoleSupervisor, model.RoleAssistant))
	{
		staff.PUT("/grades", c.grade.Upsert)
		staff.GET("/grades", c.grade.GradesInScope)
		staff.POST("/grades/import", c.grade.Import)
		staff.GET("/residents/:id/grades", c.grade.GradesForResident)

		staff.GET("/progress/targets", c.progress.TargetProgress)
		staff.GET("/leaderboard", c.leaderboard.StaffLeaderboard)

		staff.POST("/quizzes", c.quiz.Create)
		staff.POST("/quizzes/:id/publish", c.quiz.Publish)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.POST("/buildings", c.hierarchy.CreateBuilding)
		admin.GET("/buildings", c.hierarchy.ListBuildings)
		admin.DELETE("/buildings/:id", c.hierarchy.DeleteBuilding)
		admin.GET("/buildings/:id/floors", c.hierarchy.ListFloors)
		admin.POST("/floors", c.hierarchy.CreateFloor)
		admin.GET("/floors/:id/study-groups", c.hierarchy.ListStudyGroups)
		admin.POST("/study-groups", c.hierarchy.CreateStudyGroup)

		admin.POST("/supervisors/assign", c.hierarchy.AssignSupervisor)
		admin.POST("/assistants/assign", c.hierarchy.AssignAssistant)

		admin.POST("/residents", c.resident.Create)
		admin.POST("/residents/:id/move", c.resident.Move)
		admin.DELETE("/residents/:id", c.resident.Delete)
		admin.POST("/residents/:id/photo", c.resident.UploadPhoto)

		admin.POST("/targets", c.target.Create)
		admin.DELETE("/targets/:id", c.target.Delete)

		admin.GET("/users", c.user.ListByRole)
	}
}
