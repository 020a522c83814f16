// main.go
package main

import (
	"context"
	"log"

	"gift-shop/cmd"
	"gift-shop/internal/data/repository"
	"gift-shop/internal/notifier"
	"gift-shop/internal/usecase"
	"gift-shop/internal/wire"
	"gift-shop/pkg/database"
	"gift-shop/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Run schema migrations
	if err := database.Migrate(config.Database); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Seed the privileged account when none exists yet
	if err := usecase.EnsureAdminAccount(context.Background(), repos, config, logger); err != nil {
		logger.Fatal("Failed to ensure admin account", zap.Error(err))
	}

	// Outbound mail
	mail := notifier.NewSMTPSender(config.Email, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, mail, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
