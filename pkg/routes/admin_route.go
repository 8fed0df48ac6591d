package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paceline/paceline-backend/app/controllers"
	"github.com/paceline/paceline-backend/pkg/middleware"
)

func RegisterAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.JWTProtected(), middleware.AdminProtected())
	admin.Get("/stats", controllers.GetAdminStats)
	admin.Get("/users", controllers.GetAllUsers)
	admin.Delete("/users/:id", controllers.DeleteUserByAdmin)
}
