package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/paceline/paceline-backend/pkg/database"
	"github.com/paceline/paceline-backend/pkg/routes"

	"github.com/paceline/paceline-backend/app/controllers"
)

func main() {
	_ = godotenv.Load()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:3000, http://localhost:3001",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	_, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	controllers.InitServices()

	routes.RegisterUserRoutes(app)
	routes.RegisterActivityRoutes(app)
	routes.RegisterProgressRoutes(app)
	routes.RegisterGoalsRoutes(app)
	routes.RegisterAdminRoutes(app)

	controllers.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
