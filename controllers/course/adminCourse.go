package courseController

import (
	"encoding/json"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// CreateCourse creates a new course authored by the calling
// instructor or admin
func CreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var category models.Category
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CategoryID, false).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	course := models.Course{
		Title:            reqData.Title,
		Description:      reqData.Description,
		ShortDescription: reqData.ShortDescription,
		Instructor: models.Instructor{
			Name:   user.FullName(),
			Email:  user.Email,
			Bio:    user.Bio,
			Avatar: user.Avatar,
		},
		CategoryID:       category.ID,
		Level:            reqData.Level,
		Price:            reqData.Price,
		OriginalPrice:    reqData.OriginalPrice,
		DurationHours:    reqData.DurationHours,
		DurationMinutes:  reqData.DurationMinutes,
		Thumbnail:        reqData.Thumbnail,
		PreviewVideo:     reqData.PreviewVideo,
		Language:         reqData.Language,
		Requirements:     toJSON(reqData.Requirements),
		WhatYouWillLearn: toJSON(reqData.WhatYouWillLearn),
		Tags:             toJSON(reqData.Tags),
		Subtitles:        toJSON(reqData.Subtitles),
		IsPublished:      reqData.IsPublished,
		IsFeatured:       reqData.IsFeatured,
	}

	for i, lesson := range reqData.Curriculum {
		course.Lessons = append(course.Lessons, models.Lesson{
			Title:       lesson.Title,
			Description: lesson.Description,
			Duration:    lesson.Duration,
			VideoURL:    lesson.VideoURL,
			Position:    i + 1,
		})
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", err.Error())
	}

	course.Category = &category

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse applies an allow-listed update to a course. Admins may
// edit any course, instructors only their own.
func UpdateCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !ownsCourse(c, &course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to modify this course!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.ShortDescription != nil {
		updates["short_description"] = *reqData.ShortDescription
	}
	if reqData.CategoryID != nil {
		var category models.Category
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", *reqData.CategoryID, false).First(&category).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
		}
		updates["category_id"] = category.ID
	}
	if reqData.Level != nil {
		updates["level"] = *reqData.Level
	}
	if reqData.Price != nil {
		updates["price"] = *reqData.Price
	}
	if reqData.OriginalPrice != nil {
		updates["original_price"] = *reqData.OriginalPrice
	}
	if reqData.DurationHours != nil {
		updates["duration_hours"] = *reqData.DurationHours
	}
	if reqData.DurationMinutes != nil {
		updates["duration_minutes"] = *reqData.DurationMinutes
	}
	if reqData.Thumbnail != nil {
		updates["thumbnail"] = *reqData.Thumbnail
	}
	if reqData.PreviewVideo != nil {
		updates["preview_video"] = *reqData.PreviewVideo
	}
	if reqData.Language != nil {
		updates["language"] = *reqData.Language
	}
	if reqData.Requirements != nil {
		updates["requirements"] = toJSON(reqData.Requirements)
	}
	if reqData.WhatYouWillLearn != nil {
		updates["what_you_will_learn"] = toJSON(reqData.WhatYouWillLearn)
	}
	if reqData.Tags != nil {
		updates["tags"] = toJSON(reqData.Tags)
	}
	if reqData.Subtitles != nil {
		updates["subtitles"] = toJSON(reqData.Subtitles)
	}
	if reqData.IsPublished != nil {
		updates["is_published"] = *reqData.IsPublished
	}
	if reqData.IsFeatured != nil {
		updates["is_featured"] = *reqData.IsFeatured
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&course).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", err.Error())
		}
	}

	database.Database.Db.Preload("Category").First(&course, course.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse soft deletes a course. Admins may delete any course,
// instructors only their own.
func DeleteCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !ownsCourse(c, &course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to modify this course!", nil)
	}

	if err := database.Database.Db.Model(&course).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", err.Error())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// ownsCourse reports whether the caller may modify the course:
// admins always, instructors only for their own courses
func ownsCourse(c *fiber.Ctx, course *models.Course) bool {
	role, _ := c.Locals("role").(string)
	email, _ := c.Locals("email").(string)

	return role == models.RoleAdmin || course.Instructor.Email == email
}

func toJSON(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}
