package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/davonjagah/JagahVA/config"
	"github.com/davonjagah/JagahVA/controllers"
	"github.com/davonjagah/JagahVA/middleware"
	"github.com/davonjagah/JagahVA/services"
	"github.com/davonjagah/JagahVA/telegram"
)

func SetupRoutes(app *fiber.App, bot *telegram.Bot, goals *services.GoalService, todos *services.TodoService, cfg *config.Config) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Telegram webhook (only wired when a bot client exists)
	if bot != nil {
		webhookController := controllers.NewWebhookController(bot)
		app.Post("/webhook", webhookController.HandleUpdate)
	}

	// Dashboard routes
	dashboardController := controllers.NewDashboardController(goals, todos, cfg)
	app.Post("/api/auth/login", dashboardController.Login)

	authMiddleware := middleware.AuthMiddleware(cfg)
	api := app.Group("/api", authMiddleware)
	api.Get("/today", dashboardController.Today)
	api.Get("/tomorrow", dashboardController.Tomorrow)
	api.Get("/goals", dashboardController.GoalList)
	api.Get("/week", dashboardController.WeekProgress)
	api.Post("/complete", dashboardController.CompleteTasks)
}
