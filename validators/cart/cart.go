package cartValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// AddToCart validates the add-to-cart request body
func AddToCart() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID uint `json:"courseId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		c.Locals("validatedAddToCart", reqData)
		return c.Next()
	}
}
