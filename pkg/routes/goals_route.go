package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paceline/paceline-backend/app/controllers"
	"github.com/paceline/paceline-backend/pkg/middleware"
)

func RegisterGoalsRoutes(app *fiber.App) {
	goals := app.Group("/goals", middleware.JWTProtected())
	goals.Get("/", controllers.GetGoals)
	goals.Put("/:key/target", controllers.UpdateGoalTarget)
}
