package categoryRoutes

import (
	controllers "lms/controllers/category"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/category"

	"github.com/gofiber/fiber/v2"
)

// SetupCategoryRoutes sets up category browsing and admin CRUD routes
func SetupCategoryRoutes(app *fiber.App) {
	categoryGroup := app.Group("/api/categories")

	categoryGroup.Get("/", controllers.GetAllCategories)
	categoryGroup.Get("/:slug", controllers.GetCategoryBySlug)

	categoryGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CreateCategory(), controllers.CreateCategory)
	categoryGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.UpdateCategory(), controllers.UpdateCategory)
	categoryGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.DeleteCategory)
}
