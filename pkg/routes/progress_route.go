package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paceline/paceline-backend/app/controllers"
	"github.com/paceline/paceline-backend/pkg/middleware"
)

func RegisterProgressRoutes(app *fiber.App) {
	progress := app.Group("/progress", middleware.JWTProtected())
	progress.Get("/", controllers.GetProgress)
	progress.Post("/update", controllers.UpdateProgress)
}
