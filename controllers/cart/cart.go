package cartController

import (
	"math"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// cartCourse is the display projection of one carted course
type cartCourse struct {
	ID            uint            `json:"id"`
	Title         string          `json:"title"`
	Thumbnail     string          `json:"thumbnail"`
	Price         float64         `json:"price"`
	OriginalPrice float64         `json:"originalPrice"`
	Instructor    string          `json:"instructor"`
	Level         string          `json:"level"`
	RatingAverage float64         `json:"ratingAverage"`
	Category      *cartCategoryRef `json:"category,omitempty"`
}

type cartCategoryRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type cartItemView struct {
	Course  cartCourse `json:"course"`
	AddedAt time.Time  `json:"addedAt"`
}

type cartSummary struct {
	ItemCount          int     `json:"itemCount"`
	Subtotal           float64 `json:"subtotal"`
	OriginalTotal      float64 `json:"originalTotal"`
	TotalSavings       float64 `json:"totalSavings"`
	DiscountPercentage int     `json:"discountPercentage"`
}

// GetCart returns the user's cart with resolved courses and totals
func GetCart(c *fiber.Ctx) error {
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

	views, summary := resolveCart(items)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart fetched successfully!", fiber.Map{
		"items":   views,
		"summary": summary,
	})
}

// resolveCart resolves cart entries to course projections and totals.
// Courses that no longer resolve are silently dropped.
func resolveCart(items []models.CartItem) ([]cartItemView, cartSummary) {
	views := make([]cartItemView, 0, len(items))
	var subtotal, originalTotal float64

	for _, item := range items {
		var course models.Course
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", item.CourseID, false).
			Preload("Category").First(&course).Error; err != nil {
			continue
		}

		view := cartItemView{
			Course: cartCourse{
				ID:            course.ID,
				Title:         course.Title,
				Thumbnail:     course.Thumbnail,
				Price:         course.Price,
				OriginalPrice: course.OriginalPrice,
				Instructor:    course.Instructor.Name,
				Level:         course.Level,
				RatingAverage: course.RatingAverage,
			},
			AddedAt: item.AddedAt,
		}
		if course.Category != nil {
			view.Course.Category = &cartCategoryRef{Name: course.Category.Name, Slug: course.Category.Slug}
		}

		views = append(views, view)
		subtotal += course.Price
		originalTotal += course.OriginalPrice
	}

	savings := originalTotal - subtotal
	discount := 0
	if originalTotal > 0 {
		discount = int(math.Round(savings / originalTotal * 100))
	}

	return views, cartSummary{
		ItemCount:          len(views),
		Subtotal:           subtotal,
		OriginalTotal:      originalTotal,
		TotalSavings:       savings,
		DiscountPercentage: discount,
	}
}

// AddToCart appends a course to the user's cart
func AddToCart(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAddToCart").(*struct {
		CourseID uint `json:"courseId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Already enrolled users cannot buy the same course again
	var enrollment models.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&enrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already enrolled in this course!", nil)
	}

	var existing models.CartItem
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course is already in your cart!", nil)
	}

	item := models.CartItem{
		UserID:   userID,
		CourseID: course.ID,
		AddedAt:  time.Now(),
	}
	if err := database.Database.Db.Create(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add course to cart!", err.Error())
	}

	return respondWithCart(c, userID, "Course added to cart successfully!")
}

// RemoveFromCart removes a course from the cart. Removing an absent
// course is not an error.
func RemoveFromCart(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("courseId")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).
		Delete(&models.CartItem{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove course from cart!", err.Error())
	}

	return respondWithCart(c, userID, "Course removed from cart successfully!")
}

// ClearCart unconditionally empties the user's cart
func ClearCart(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := database.Database.Db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to clear cart!", err.Error())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart cleared successfully!", fiber.Map{
		"items": []cartItemView{},
	})
}

func respondWithCart(c *fiber.Ctx, userID uint, message string) error {
	var items []models.CartItem
	if err := database.Database.Db.Where("user_id = ?", userID).Order("added_at asc").Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cart!", err.Error())
	}

	views, summary := resolveCart(items)

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"items":   views,
		"summary": summary,
	})
}
