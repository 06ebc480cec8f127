package userController

import (
	"math"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

type enrolledCourseView struct {
	CourseID         uint      `json:"courseId"`
	Title            string    `json:"title"`
	Thumbnail        string    `json:"thumbnail"`
	Instructor       string    `json:"instructor"`
	CategoryName     string    `json:"categoryName,omitempty"`
	EnrolledAt       time.Time `json:"enrolledAt"`
	LastAccessed     time.Time `json:"lastAccessed"`
	Progress         int       `json:"progress"`
	TotalLessons     int       `json:"totalLessons"`
	CompletedLessons int       `json:"completedLessons"`
}

// GetEnrolledCourses returns the user's enrollments with resolved
// courses and lesson counts
func GetEnrolledCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.Where("user_id = ?", userID).Order("enrolled_at asc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", err.Error())
	}

	views := make([]enrolledCourseView, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var course models.Course
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", enrollment.CourseID, false).
			Preload("Category").First(&course).Error; err != nil {
			continue
		}

		var totalLessons int64
		database.Database.Db.Model(&models.Lesson{}).Where("course_id = ?", course.ID).Count(&totalLessons)

		var completed int64
		database.Database.Db.Model(&models.CompletedLesson{}).Where("enrollment_id = ?", enrollment.ID).Count(&completed)

		view := enrolledCourseView{
			CourseID:         course.ID,
			Title:            course.Title,
			Thumbnail:        course.Thumbnail,
			Instructor:       course.Instructor.Name,
			EnrolledAt:       enrollment.EnrolledAt,
			LastAccessed:     enrollment.LastAccessed,
			Progress:         enrollment.Progress,
			TotalLessons:     int(totalLessons),
			CompletedLessons: int(completed),
		}
		if course.Category != nil {
			view.CategoryName = course.Category.Name
		}
		views = append(views, view)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched successfully!", fiber.Map{
		"enrolledCourses": views,
	})
}

// UpdateCourseProgress toggles a lesson's completion state and
// recomputes the enrollment's progress percentage
func UpdateCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("courseId")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	reqData, ok := c.Locals("validatedProgress").(*struct {
		LessonID  uint  `json:"lessonId"`
		Completed *bool `json:"completed"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var enrollment models.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course enrollment not found!", nil)
	}

	if *reqData.Completed {
		var existing models.CompletedLesson
		err := database.Database.Db.Where("enrollment_id = ? AND lesson_id = ?", enrollment.ID, reqData.LessonID).First(&existing).Error
		if err != nil {
			record := models.CompletedLesson{EnrollmentID: enrollment.ID, LessonID: reqData.LessonID}
			if err := database.Database.Db.Create(&record).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", err.Error())
			}
		}
	} else {
		if err := database.Database.Db.Where("enrollment_id = ? AND lesson_id = ?", enrollment.ID, reqData.LessonID).
			Delete(&models.CompletedLesson{}).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", err.Error())
		}
	}

	// Progress is measured against the course's current curriculum
	var totalLessons int64
	database.Database.Db.Model(&models.Lesson{}).Where("course_id = ?", courseID).Count(&totalLessons)

	var completed int64
	database.Database.Db.Model(&models.CompletedLesson{}).Where("enrollment_id = ?", enrollment.ID).Count(&completed)

	progress := 0
	if totalLessons > 0 {
		progress = int(math.Round(float64(completed) / float64(totalLessons) * 100))
	}

	if err := database.Database.Db.Model(&enrollment).Updates(map[string]interface{}{
		"progress":      progress,
		"last_accessed": time.Now(),
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", err.Error())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", fiber.Map{
		"progress":         progress,
		"completedLessons": completed,
	})
}
