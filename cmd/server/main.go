package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kazuyat/siege-roster/internal/config"
	"github.com/kazuyat/siege-roster/pkg/clients/sheetsclient"
	"github.com/kazuyat/siege-roster/pkg/db"
	"github.com/kazuyat/siege-roster/pkg/handlers"
	"github.com/kazuyat/siege-roster/pkg/sheetssql"
	"github.com/kazuyat/siege-roster/pkg/utils/logging"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "prod"
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger, err := logging.InitLogger(env)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	cfg, err := config.LoadWithEnv(env)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	oauthCfg, err := config.LoadOAuthClientWithEnv(env)
	if err != nil {
		logger.Fatal("Failed to load OAuth client config", zap.Error(err))
	}

	sheetsClient, err := sheetsclient.NewClient(ctx, oauthCfg, env)
	if err != nil {
		logger.Fatal("Failed to create sheets client", zap.Error(err))
	}

	schema, err := sheetssql.SchemaFromModels(db.Member{}, db.ScheduleRun{})
	if err != nil {
		logger.Fatal("Failed to create database schema", zap.Error(err))
	}

	ssqlDB, err := sheetssql.NewDB(sheetsClient, cfg.DatabaseSheetID, schema)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}

	h := &handlers.Handler{
		DB:     db.NewDB(ssqlDB),
		Cfg:    cfg,
		Logger: logger,
	}

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Siege Roster API",
			"version": "1.0.0",
		})
	})

	h.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("Starting server", zap.String("port", port), zap.String("environment", env))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
