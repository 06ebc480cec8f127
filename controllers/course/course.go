package courseController

import (
	"math"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllCourses lists published courses with filtering, search,
// sorting and pagination
func GetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseList").(*courseValidator.CourseListQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	query := db.Model(&models.Course{}).Where("is_published = ? AND is_deleted = ?", true, false)

	if reqData.Category != "" && reqData.Category != "all" {
		var category models.Category
		if err := db.Where("slug = ? AND is_deleted = ?", reqData.Category, false).First(&category).Error; err == nil {
			query = query.Where("category_id = ?", category.ID)
		}
	}

	if reqData.Level != "" {
		query = query.Where("level = ?", reqData.Level)
	}
	if reqData.MinPrice != nil {
		query = query.Where("price >= ?", *reqData.MinPrice)
	}
	if reqData.MaxPrice != nil {
		query = query.Where("price <= ?", *reqData.MaxPrice)
	}
	if reqData.Rating != nil {
		query = query.Where("rating_average >= ?", *reqData.Rating)
	}
	if reqData.Search != "" {
		search := "%" + reqData.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ? OR tags::text ILIKE ?", search, search, search)
	}

	var total int64
	query.Count(&total)

	offset := (reqData.Page - 1) * reqData.Limit

	var courses []models.Course
	if err := query.
		Preload("Category").
		Order(reqData.SortColumn() + " " + reqData.SortOrder).
		Offset(offset).Limit(reqData.Limit).
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", err.Error())
	}

	pages := int(math.Ceil(float64(total) / float64(reqData.Limit)))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"current": reqData.Page,
			"pages":   pages,
			"total":   total,
			"hasNext": reqData.Page < pages,
			"hasPrev": reqData.Page > 1,
		},
	})
}

// GetFeaturedCourses returns up to 6 featured published courses,
// best rated and most enrolled first
func GetFeaturedCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.
		Where("is_published = ? AND is_featured = ? AND is_deleted = ?", true, true, false).
		Preload("Category").
		Order("rating_average desc, enrolled_students desc").
		Limit(6).
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch featured courses!", err.Error())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Featured courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// GetCourseDetails returns a single course with its curriculum.
// Lesson video URLs are hidden unless the caller is enrolled.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	var course models.Course
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", courseID, false).
		Preload("Category").
		Preload("Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	enrolled := false
	if userID, ok := c.Locals("userId").(uint); ok {
		var enrollment models.Enrollment
		if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&enrollment).Error; err == nil {
			enrolled = true
		}
	}

	if !enrolled {
		for i := range course.Lessons {
			course.Lessons[i].VideoURL = ""
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":   course,
		"enrolled": enrolled,
	})
}
