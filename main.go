package main

import (
	"log"
	"time"

	"lms/config"
	"lms/database"
	cartRoutes "lms/routers/cartRoutes"
	categoryRoutes "lms/routers/categoryRoutes"
	courseRoutes "lms/routers/courseRoutes"
	userRoutes "lms/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	app.Get("/api/health", healthCheck)

	courseRoutes.SetupCourseRoutes(app)
	categoryRoutes.SetupCategoryRoutes(app)
	cartRoutes.SetupCartRoutes(app)
	userRoutes.SetupUserRoutes(app)

	app.Use(notFound)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

func healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "OK",
		"message":   "LMS API Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": "Route not found",
		"availableEndpoints": []string{
			"GET /api/health",
			"GET /api/courses",
			"GET /api/courses/featured",
			"GET /api/categories",
			"GET /api/cart",
		},
	})
}
