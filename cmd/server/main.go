package main

import (
	"net"

	"project-tracker-backend/internal/api/routes"
	"project-tracker-backend/internal/config"
	"project-tracker-backend/internal/database"
	"project-tracker-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "project-tracker-backend/docs" // registers the swagger document
)

//go:generate swag init -g cmd/server/main.go -d ../../ -o ../../docs

//	@title			Project Tracker Backend API
//	@version		1.0
//	@description	Backend API for the project tracker: projects, modules and tasks with derived progress, project membership and team rosters.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:3000
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}
	logger.Setup(cfg.LogLevel, true)

	db, err := database.Initialize(cfg.DatabaseDriver, cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatalf("failed to open %s database: %v", cfg.DatabaseDriver, err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logrus.WithError(err).Warn("failed to close database")
		}
	}()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(db, cfg)
	if err != nil {
		logrus.Fatalf("failed to build router: %v", err)
	}

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	logrus.WithFields(logrus.Fields{
		"addr":        addr,
		"driver":      cfg.DatabaseDriver,
		"environment": cfg.Environment,
	}).Info("project tracker listening")
	if err := router.Run(addr); err != nil {
		logrus.Errorf("server stopped: %v", err)
	}
}
