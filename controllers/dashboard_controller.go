package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/davonjagah/JagahVA/config"
	"github.com/davonjagah/JagahVA/services"
	"github.com/davonjagah/JagahVA/utils"
)

// DashboardController serves read-only JSON views of the bot's state for
// the web interface.
type DashboardController struct {
	Goals *services.GoalService
	Todos *services.TodoService
	Cfg   *config.Config
}

func NewDashboardController(goals *services.GoalService, todos *services.TodoService, cfg *config.Config) *DashboardController {
	return &DashboardController{Goals: goals, Todos: todos, Cfg: cfg}
}

// Login exchanges the admin password for a JWT token.
func (dc *DashboardController) Login(c *fiber.Ctx) error {
	var body struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if dc.Cfg.AdminPasswordHash == "" {
		return utils.Unauthorized(c, "Dashboard login is not configured")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(dc.Cfg.AdminPasswordHash), []byte(body.Password)); err != nil {
		return utils.Unauthorized(c, "Invalid password")
	}

	token, err := utils.GenerateJWTToken("admin", dc.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{"token": token})
}

// userID resolves the record to display: the allow-listed bot user, or an
// explicit ?user= override.
func (dc *DashboardController) userID(c *fiber.Ctx) string {
	if user := c.Query("user"); user != "" {
		return user
	}
	return dc.Cfg.AllowedUserID
}

// Today returns the merged task list for today.
func (dc *DashboardController) Today(c *fiber.Ctx) error {
	todos, err := dc.Todos.GenerateTodos(c.Context(), dc.userID(c), time.Now())
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}
	return utils.Success(c, fiber.StatusOK, todos)
}

// Tomorrow returns the merged task list for tomorrow.
func (dc *DashboardController) Tomorrow(c *fiber.Ctx) error {
	todos, err := dc.Todos.GenerateTodos(c.Context(), dc.userID(c), utils.Tomorrow())
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}
	return utils.Success(c, fiber.StatusOK, todos)
}

// GoalList returns the raw goal list with progress logs.
func (dc *DashboardController) GoalList(c *fiber.Ctx) error {
	goals, err := dc.Goals.GetGoals(c.Context(), dc.userID(c))
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}
	return utils.Success(c, fiber.StatusOK, goals)
}

// CompleteTasks marks items from today's merged list done by their 1-based
// numbers, the same numbering the !today reply shows.
func (dc *DashboardController) CompleteTasks(c *fiber.Ctx) error {
	var body struct {
		Numbers []int `json:"numbers"`
	}
	if err := c.BodyParser(&body); err != nil || len(body.Numbers) == 0 {
		return utils.BadRequest(c, "Provide task numbers, e.g. {\"numbers\": [1, 3]}")
	}

	applied, err := dc.Todos.UpdateTasksByNumbers(c.Context(), dc.userID(c), body.Numbers)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"applied": applied})
}

// WeekProgress returns the weekly goal progress reports.
func (dc *DashboardController) WeekProgress(c *fiber.Ctx) error {
	reports, err := dc.Goals.WeeklyProgress(c.Context(), dc.userID(c))
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}
	return utils.Success(c, fiber.StatusOK, reports)
}
