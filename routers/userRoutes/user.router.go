package userRoutes

import (
	controllers "lms/controllers/user"
	"lms/middleware"
	validators "lms/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up wishlist, enrollment and progress routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users")

	userGroup.Get("/wishlist", middleware.JWTMiddleware, controllers.GetWishlist)
	userGroup.Post("/wishlist/add", middleware.JWTMiddleware, validators.AddToWishlist(), controllers.AddToWishlist)
	userGroup.Delete("/wishlist/remove/:courseId", middleware.JWTMiddleware, controllers.RemoveFromWishlist)

	userGroup.Get("/enrolled-courses", middleware.JWTMiddleware, controllers.GetEnrolledCourses)
	userGroup.Put("/course-progress/:courseId", middleware.JWTMiddleware, validators.UpdateProgress(), controllers.UpdateCourseProgress)
}
