package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paceline/paceline-backend/app/controllers"
	"github.com/paceline/paceline-backend/pkg/middleware"
)

func RegisterActivityRoutes(app *fiber.App) {
	activities := app.Group("/activities", middleware.JWTProtected())
	activities.Post("/", controllers.CreateActivity)
	activities.Get("/", controllers.GetActivities)
	activities.Get("/export", controllers.ExportActivitiesCSV)
	activities.Post("/sync", controllers.SyncActivities)
	activities.Get("/:id", controllers.GetActivity)
	activities.Put("/:id", controllers.UpdateActivity)
	activities.Delete("/:id", controllers.DeleteActivity)
}
