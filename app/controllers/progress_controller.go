package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/paceline/paceline-backend/pkg/utils"
)

// resolveTargetUser returns the user the request operates on. Admins may
// target another user with the user_id query parameter.
func resolveTargetUser(c *fiber.Ctx) (uuid.UUID, error) {
	userID, role, err := utils.ExtractUserAndRoleFromHeader(c.Get("Authorization"))
	if err != nil {
		return uuid.Nil, err
	}

	override := c.Query("user_id")
	if override == "" || role != utils.RoleAdmin {
		return userID, nil
	}
	target, err := uuid.Parse(override)
	if err != nil {
		return userID, nil
	}
	return target, nil
}

func GetProgress(c *fiber.Ctx) error {
	userID, err := resolveTargetUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	progress, err := progressService.GetProgress(userID, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(progress)
}

func UpdateProgress(c *fiber.Ctx) error {
	userID, err := resolveTargetUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	progress, err := progressService.UpdateProgress(userID, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Progress updated", "progress": progress})
}
