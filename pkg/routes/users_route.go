package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paceline/paceline-backend/app/controllers"
	"github.com/paceline/paceline-backend/pkg/middleware"
)

func RegisterUserRoutes(app *fiber.App) {
	// Public routes
	app.Post("/signup", controllers.UserSignUp)
	app.Post("/signin", controllers.UserSignIn)
	app.Post("/signin/google", controllers.UserSignInWithGoogle)
	app.Post("/verify-otp", controllers.UserVerifyOTP)
	app.Post("/refresh-token", controllers.RefreshToken)

	user := app.Group("/user", middleware.JWTProtected())
	user.Get("/profile", controllers.UserProfile)
	user.Put("/profile", controllers.UpdateUser)
	user.Post("/logout", controllers.UserLogout)

	strava := app.Group("/strava", middleware.JWTProtected())
	strava.Get("/connect", controllers.StravaConnect)

	// Callback is hit by Strava's redirect, state carries the user id.
	app.Get("/strava/callback", controllers.StravaCallback)
}
