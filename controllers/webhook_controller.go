package controllers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2"

	"github.com/davonjagah/JagahVA/telegram"
	"github.com/davonjagah/JagahVA/utils"
)

// WebhookController receives Telegram updates over HTTP when the bot runs
// in webhook mode instead of polling.
type WebhookController struct {
	Bot *telegram.Bot
}

func NewWebhookController(bot *telegram.Bot) *WebhookController {
	return &WebhookController{Bot: bot}
}

func (wc *WebhookController) HandleUpdate(c *fiber.Ctx) error {
	var update tgbotapi.Update
	if err := c.BodyParser(&update); err != nil {
		return utils.BadRequest(c, "Cannot parse update")
	}

	// Telegram retries on non-2xx, so handling errors still return 200.
	wc.Bot.HandleUpdate(c.Context(), &update)
	return c.SendStatus(fiber.StatusOK)
}
