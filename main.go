package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/davonjagah/JagahVA/commands"
	"github.com/davonjagah/JagahVA/config"
	"github.com/davonjagah/JagahVA/middleware"
	"github.com/davonjagah/JagahVA/routes"
	"github.com/davonjagah/JagahVA/services"
	"github.com/davonjagah/JagahVA/storage"
	"github.com/davonjagah/JagahVA/telegram"
	"github.com/davonjagah/JagahVA/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Open the user record store
	ctx := context.Background()
	store, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Error opening store: %v", err)
	}

	// Core services and command handler
	goalService := services.NewGoalService(store, logger)
	todoService := services.NewTodoService(store, logger)
	handler := commands.NewHandler(goalService, todoService, logger)

	// Telegram transport; polling runs in the background, webhook mode
	// relies on the /webhook route instead.
	var bot *telegram.Bot
	if cfg.TelegramToken != "" {
		bot, err = telegram.NewBot(cfg, handler, logger)
		if err != nil {
			log.Fatalf("Error creating telegram bot: %v", err)
		}
		if cfg.TelegramMode == "polling" {
			go bot.StartPolling(ctx)
		}
	} else {
		logger.Println("TELEGRAM_BOT_TOKEN not set, running without telegram transport")
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, bot, goalService, todoService, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
