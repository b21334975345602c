package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/davonjagah/JagahVA/config"
	"github.com/davonjagah/JagahVA/utils"
)

func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, err := utils.ExtractSubjectFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		return c.Next()
	}
}
