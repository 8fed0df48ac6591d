package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/paceline/paceline-backend/app/models"
	"github.com/paceline/paceline-backend/app/queries"
	"github.com/paceline/paceline-backend/pkg/database"
	"github.com/paceline/paceline-backend/app/services"
)

func GetGoals(c *fiber.Ctx) error {
	userID, err := resolveTargetUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	now := time.Now()
	monthly, err := progressService.GetOrCreateMonthlyGoal(userID, now.Month(), now.Year(), now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	seasonal, err := progressService.GetOrCreateSeasonalGoal(userID, services.SeasonForMonth(now.Month()), services.SeasonYear(now), now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	gq := queries.GoalQueries{DB: database.DB}
	goals, err := gq.ListGoalsByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"monthly":  monthly,
		"seasonal": seasonal,
		"goals":    goals,
	})
}

func UpdateGoalTarget(c *fiber.Ctx) error {
	userID, err := resolveTargetUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	req := &models.UpdateGoalTargetRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	goalKey := c.Params("key")
	gq := queries.GoalQueries{DB: database.DB}
	if err := gq.UpdateGoalTarget(userID, goalKey, req.Target); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := progressService.UpdateProgress(userID, time.Now()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Goal target updated"})
}
