package routes

import (
	"fmt"

	"project-tracker-backend/internal/api/handlers"
	"project-tracker-backend/internal/api/middleware"
	"project-tracker-backend/internal/auth"
	"project-tracker-backend/internal/config"
	"project-tracker-backend/internal/repository"
	"project-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware. RequestID runs first so the request log line carries it.
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	transactor := repository.NewTransactor(db)
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	moduleRepo := repository.NewModuleRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)

	// Initialize services
	projectService := service.NewProjectService(transactor, projectRepo, moduleRepo, taskRepo, membershipRepo, userRepo, validator)
	teamService := service.NewTeamService(membershipRepo, userRepo, taskRepo, validator)
	userService := service.NewUserService(transactor, userRepo, projectRepo, membershipRepo, validator)

	// Initialize auth
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), userRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService.Tokens(), userRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	projectHandler := handlers.NewProjectHandler(projectService)
	teamHandler := handlers.NewTeamHandler(teamService)
	userHandler := handlers.NewUserHandler(userService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	authRoutes := api.Group("/auth")
	{
		limited := authRoutes.Group("", middleware.RateLimit(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst))
		limited.POST("/signup", authHandler.Signup)
		limited.POST("/login", authHandler.Login)

		authRoutes.POST("/logout", authHandler.Logout)
		authRoutes.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
		authRoutes.PUT("/me", authMiddleware.RequireAuth(), authHandler.UpdateMe)
	}

	// Everything below requires an authenticated, active account
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		users := protected.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		projects := protected.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/my-tasks", projectHandler.MyTasks)

			projects.GET("/:projectId", projectHandler.GetProject)
			projects.PUT("/:projectId", projectHandler.UpdateProject)
			projects.DELETE("/:projectId", projectHandler.DeleteProject)
			projects.POST("/:projectId/recompute", projectHandler.RecomputeProgress)

			// Modules
			projects.GET("/:projectId/modules", projectHandler.ListModules)
			projects.POST("/:projectId/modules", projectHandler.CreateModule)
			projects.PUT("/modules/:moduleId", projectHandler.UpdateModule)
			projects.DELETE("/modules/:moduleId", projectHandler.DeleteModule)

			// Tasks
			projects.GET("/modules/:moduleId/tasks", projectHandler.ListTasks)
			projects.POST("/modules/:moduleId/tasks", projectHandler.CreateTask)
			projects.GET("/tasks/:taskId", projectHandler.GetTask)
			projects.PUT("/tasks/:taskId", projectHandler.UpdateTask)
			projects.DELETE("/tasks/:taskId", projectHandler.DeleteTask)

			// Members
			projects.GET("/:projectId/members", projectHandler.ListMembers)
			projects.POST("/:projectId/members", projectHandler.AddMember)
			projects.DELETE("/:projectId/members/:userId", projectHandler.RemoveMember)
			projects.GET("/:projectId/available-members", projectHandler.AvailableMembers)
			projects.GET("/:projectId/member-tasks", projectHandler.MemberTasks)
		}

		teams := protected.Group("/teams")
		{
			teams.GET("/members", teamHandler.GetMembers)
			teams.POST("/members", teamHandler.AddMember)
			teams.DELETE("/members/:userId", teamHandler.RemoveMember)
			teams.GET("/available-users", teamHandler.AvailableUsers)
			teams.GET("/member-tasks", teamHandler.MemberTasks)
			teams.GET("/projects", teamHandler.GetProjects)

			admin := teams.Group("/admin")
			{
				admin.GET("/all-teams", teamHandler.AllTeams)
				admin.GET("/team-details/:leaderId", teamHandler.TeamDetails)
				admin.GET("/available-leaders", teamHandler.AvailableLeaders)
			}
		}
	}

	return router, nil
}
