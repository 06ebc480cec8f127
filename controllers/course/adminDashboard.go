package courseController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// DashboardStats returns platform-wide counts for the admin dashboard
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db
	today := now.BeginningOfDay()

	var totalCourses, publishedCourses, totalCategories int64
	var totalUsers, totalEnrollments int64
	var enrollmentsToday, newUsersToday int64
	var totalReceipts int64

	db.Model(&models.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&models.Course{}).Where("is_published = ? AND is_deleted = ?", true, false).Count(&publishedCourses)
	db.Model(&models.Category{}).Where("is_deleted = ?", false).Count(&totalCategories)
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&models.Enrollment{}).Count(&totalEnrollments)
	db.Model(&models.Enrollment{}).Where("enrolled_at >= ?", today).Count(&enrollmentsToday)
	db.Model(&models.User{}).Where("created_at >= ? AND is_deleted = ?", today, false).Count(&newUsersToday)
	db.Model(&models.CheckoutReceipt{}).Count(&totalReceipts)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"totalCourses":     totalCourses,
		"publishedCourses": publishedCourses,
		"totalCategories":  totalCategories,
		"totalUsers":       totalUsers,
		"totalEnrollments": totalEnrollments,
		"enrollmentsToday": enrollmentsToday,
		"newUsersToday":    newUsersToday,
		"totalCheckouts":   totalReceipts,
	})
}
