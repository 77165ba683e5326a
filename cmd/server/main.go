package main

import (
	"log/slog"
	"os"

	"trivia-backend/internal/config"
	"trivia-backend/internal/database"
	"trivia-backend/internal/handlers"
	"trivia-backend/internal/store"

	_ "trivia-backend/docs"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Trivia API
// @version         1.0
// @description     REST backend for a trivia-question database with a quiz picker.
// @host            localhost:8080
// @BasePath        /

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
	if err := database.Seed(db); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	r := handlers.NewRouter(store.New(db))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logger.Info("server starting", "port", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
