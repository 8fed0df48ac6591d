package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/paceline/paceline-backend/app/models"
	"github.com/paceline/paceline-backend/app/queries"
	"github.com/paceline/paceline-backend/pkg/database"
)

func GetAdminStats(c *fiber.Ctx) error {
	userQueries := queries.UserQueries{DB: database.DB}
	activityQueries := queries.ActivityQueries{DB: database.DB}

	totalUsers, err := userQueries.CountUsers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	totalActivities, err := activityQueries.CountAllActivities()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	totalMiles, err := activityQueries.TotalMiles()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	lastWeek, err := activityQueries.CountActivitiesSince(time.Now().AddDate(0, 0, -7))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	stats := models.AdminStats{
		TotalUsers:         totalUsers,
		TotalActivities:    totalActivities,
		TotalMiles:         totalMiles,
		ActivitiesLastWeek: lastWeek,
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

func GetAllUsers(c *fiber.Ctx) error {
	userQueries := queries.UserQueries{DB: database.DB}
	users, err := userQueries.ListUsers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"users": users, "count": len(users)})
}

func DeleteUserByAdmin(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	userQueries := queries.UserQueries{DB: database.DB}
	if err := userQueries.DeleteUser(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "User deleted"})
}
