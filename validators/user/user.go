package userValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// AddToWishlist validates the add-to-wishlist request body
func AddToWishlist() fiber.Handler {
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

		c.Locals("validatedAddToWishlist", reqData)
		return c.Next()
	}
}

// UpdateProgress validates the lesson completion request body
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			LessonID  uint  `json:"lessonId"`
			Completed *bool `json:"completed"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.LessonID == 0 {
			errors["lessonId"] = "Lesson ID is required!"
		}
		if reqData.Completed == nil {
			errors["completed"] = "Completed flag is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
