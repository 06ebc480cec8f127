package courseValidator

import (
	"strings"

	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// CourseListQuery is the parsed catalog listing query
type CourseListQuery struct {
	Page      int      `query:"page"`
	Limit     int      `query:"limit"`
	Category  string   `query:"category"`
	Level     string   `query:"level"`
	Search    string   `query:"search"`
	MinPrice  *float64 `query:"minPrice"`
	MaxPrice  *float64 `query:"maxPrice"`
	Rating    *float64 `query:"rating"`
	SortBy    string   `query:"sortBy"`
	SortOrder string   `query:"sortOrder"`
}

var sortColumns = map[string]string{
	"createdAt":        "created_at",
	"price":            "price",
	"rating":           "rating_average",
	"enrolledStudents": "enrolled_students",
	"title":            "title",
}

// SortColumn maps a sortBy value onto its whitelisted column name
func (q *CourseListQuery) SortColumn() string {
	if col, ok := sortColumns[q.SortBy]; ok {
		return col
	}
	return "created_at"
}

// CourseList validates catalog listing query parameters
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseListQuery)

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if reqData.Page < 1 {
			reqData.Page = 1
		}
		if reqData.Limit < 1 || reqData.Limit > 100 {
			reqData.Limit = 12
		}
		if reqData.SortOrder != "asc" {
			reqData.SortOrder = "desc"
		}

		errors := make(map[string]string)

		if reqData.Level != "" && !isValidLevel(reqData.Level) {
			errors["level"] = "Level must be Beginner, Intermediate or Advanced!"
		}
		if reqData.MinPrice != nil && *reqData.MinPrice < 0 {
			errors["minPrice"] = "Minimum price cannot be negative!"
		}
		if reqData.MaxPrice != nil && *reqData.MaxPrice < 0 {
			errors["maxPrice"] = "Maximum price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseList", reqData)
		return c.Next()
	}
}

// LessonRequest is one curriculum entry of a create/update request
type LessonRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	VideoURL    string `json:"videoUrl"`
}

// CreateCourseRequest is the allow-listed create payload
type CreateCourseRequest struct {
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	ShortDescription string          `json:"shortDescription"`
	CategoryID       uint            `json:"categoryId"`
	Level            string          `json:"level"`
	Price            float64         `json:"price"`
	OriginalPrice    float64         `json:"originalPrice"`
	DurationHours    int             `json:"durationHours"`
	DurationMinutes  int             `json:"durationMinutes"`
	Thumbnail        string          `json:"thumbnail"`
	PreviewVideo     string          `json:"previewVideo"`
	Language         string          `json:"language"`
	Requirements     []string        `json:"requirements"`
	WhatYouWillLearn []string        `json:"whatYouWillLearn"`
	Tags             []string        `json:"tags"`
	Subtitles        []string        `json:"subtitles"`
	IsPublished      bool            `json:"isPublished"`
	IsFeatured       bool            `json:"isFeatured"`
	Curriculum       []LessonRequest `json:"curriculum"`
}

// CreateCourse validates the course creation request
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if reqData.CategoryID == 0 {
			errors["categoryId"] = "Category is required!"
		}

		if !isValidLevel(reqData.Level) {
			errors["level"] = "Level must be Beginner, Intermediate or Advanced!"
		}

		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}
		if reqData.OriginalPrice < 0 {
			errors["originalPrice"] = "Original price cannot be negative!"
		}

		for _, lesson := range reqData.Curriculum {
			if strings.TrimSpace(lesson.Title) == "" {
				errors["curriculum"] = "Every lesson needs a title!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourseRequest is the allow-listed update payload; nil fields
// are left untouched
type UpdateCourseRequest struct {
	Title            *string  `json:"title"`
	Description      *string  `json:"description"`
	ShortDescription *string  `json:"shortDescription"`
	CategoryID       *uint    `json:"categoryId"`
	Level            *string  `json:"level"`
	Price            *float64 `json:"price"`
	OriginalPrice    *float64 `json:"originalPrice"`
	DurationHours    *int     `json:"durationHours"`
	DurationMinutes  *int     `json:"durationMinutes"`
	Thumbnail        *string  `json:"thumbnail"`
	PreviewVideo     *string  `json:"previewVideo"`
	Language         *string  `json:"language"`
	Requirements     []string `json:"requirements"`
	WhatYouWillLearn []string `json:"whatYouWillLearn"`
	Tags             []string `json:"tags"`
	Subtitles        []string `json:"subtitles"`
	IsPublished      *bool    `json:"isPublished"`
	IsFeatured       *bool    `json:"isFeatured"`
}

// UpdateCourse validates the course update request
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && len(strings.TrimSpace(*reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.Level != nil && !isValidLevel(*reqData.Level) {
			errors["level"] = "Level must be Beginner, Intermediate or Advanced!"
		}
		if reqData.Price != nil && *reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}
		if reqData.OriginalPrice != nil && *reqData.OriginalPrice < 0 {
			errors["originalPrice"] = "Original price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

func isValidLevel(level string) bool {
	switch level {
	case models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced:
		return true
	}
	return false
}
