package cartRoutes

import (
	controllers "lms/controllers/cart"
	"lms/middleware"
	validators "lms/validators/cart"

	"github.com/gofiber/fiber/v2"
)

// SetupCartRoutes sets up cart and checkout routes
func SetupCartRoutes(app *fiber.App) {
	cartGroup := app.Group("/api/cart")

	cartGroup.Get("/", middleware.JWTMiddleware, controllers.GetCart)
	cartGroup.Post("/add", middleware.JWTMiddleware, validators.AddToCart(), controllers.AddToCart)
	cartGroup.Delete("/remove/:courseId", middleware.JWTMiddleware, controllers.RemoveFromCart)
	cartGroup.Delete("/clear", middleware.JWTMiddleware, controllers.ClearCart)
	cartGroup.Post("/checkout", middleware.JWTMiddleware, controllers.Checkout)
}
