package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the course catalog and admin routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Public catalog
	courseGroup.Get("/", validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/featured", controllers.GetFeaturedCourses)
	courseGroup.Get("/:id", middleware.OptionalJWTMiddleware, controllers.GetCourseDetails)

	// Course management (instructor/admin)
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor, models.RoleAdmin), validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor, models.RoleAdmin), validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor, models.RoleAdmin), controllers.DeleteCourse)

	// Admin dashboard
	dashGroup := app.Group("/api/admin/dashboard")
	dashGroup.Get("/stats", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.DashboardStats)
}
