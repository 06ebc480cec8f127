package categoryValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateCategoryRequest is the allow-listed create payload
type CreateCategoryRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	ParentID     *uint  `json:"parentId"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     *bool  `json:"isActive"`
}

// CreateCategory validates the category creation request
func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCategoryRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		} else if len(reqData.Name) > 100 {
			errors["name"] = "Name must be at most 100 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}

// UpdateCategoryRequest is the allow-listed update payload; nil fields
// are left untouched
type UpdateCategoryRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Icon         *string `json:"icon"`
	Color        *string `json:"color"`
	ParentID     *uint   `json:"parentId"`
	DisplayOrder *int    `json:"displayOrder"`
	IsActive     *bool   `json:"isActive"`
}

// UpdateCategory validates the category update request
func UpdateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCategoryRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil && strings.TrimSpace(*reqData.Name) == "" {
			errors["name"] = "Name cannot be empty!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCategoryUpdate", reqData)
		return c.Next()
	}
}
