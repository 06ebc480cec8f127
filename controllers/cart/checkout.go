package cartController

import (
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type checkoutCourse struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Instructor string `json:"instructor"`
}

// Checkout converts the user's cart into enrollments. Enrollment
// creation, counter increments, receipt and cart clearing commit in a
// single transaction, so a failure leaves no partial state behind.
func Checkout(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var items []models.CartItem
	if err := database.Database.Db.Where("user_id = ?", userID).Order("added_at asc").Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cart!", err.Error())
	}

	if len(items) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cart is empty!", nil)
	}

	// Resolve courses in cart order; entries whose course vanished
	// since being carted are silently skipped
	var courses []models.Course
	for _, item := range items {
		var course models.Course
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", item.CourseID, false).First(&course).Error; err != nil {
			continue
		}
		courses = append(courses, course)
	}

	now := time.Now()
	receiptNo := uuid.NewString()
	var total, originalTotal float64
	for _, course := range courses {
		total += course.Price
		originalTotal += course.OriginalPrice
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		for _, course := range courses {
			enrollment := models.Enrollment{
				UserID:       userID,
				CourseID:     course.ID,
				EnrolledAt:   now,
				Progress:     0,
				LastAccessed: now,
			}
			if err := tx.Create(&enrollment).Error; err != nil {
				return err
			}

			if err := tx.Model(&models.Course{}).Where("id = ?", course.ID).
				UpdateColumn("enrolled_students", gorm.Expr("enrolled_students + ?", 1)).Error; err != nil {
				return err
			}
		}

		receipt := models.CheckoutReceipt{
			ReceiptNo:     receiptNo,
			UserID:        userID,
			ItemCount:     len(courses),
			Total:         total,
			OriginalTotal: originalTotal,
		}
		if err := tx.Create(&receipt).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process checkout!", err.Error())
	}

	summary := make([]checkoutCourse, 0, len(courses))
	lines := make([]utils.ReceiptLine, 0, len(courses))
	for _, course := range courses {
		summary = append(summary, checkoutCourse{
			ID:         course.ID,
			Title:      course.Title,
			Instructor: course.Instructor.Name,
		})
		lines = append(lines, utils.ReceiptLine{
			Title:      course.Title,
			Instructor: course.Instructor.Name,
			Price:      course.Price,
		})
	}

	utils.SendCheckoutReceiptEmail(user.Email, user.FullName(), receiptNo, lines, total)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout completed successfully!", fiber.Map{
		"enrolledCourses": len(courses),
		"receiptNo":       receiptNo,
		"courses":         summary,
	})
}
