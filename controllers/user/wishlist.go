package userController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

type wishlistCourse struct {
	ID            uint    `json:"id"`
	Title         string  `json:"title"`
	Thumbnail     string  `json:"thumbnail"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	Instructor    string  `json:"instructor"`
	Level         string  `json:"level"`
	RatingAverage float64 `json:"ratingAverage"`
	CategoryName  string  `json:"categoryName,omitempty"`
	CategorySlug  string  `json:"categorySlug,omitempty"`
}

// GetWishlist returns the user's wishlist with resolved courses
func GetWishlist(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var items []models.WishlistItem
	if err := database.Database.Db.Where("user_id = ?", userID).Order("created_at asc").Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch wishlist!", err.Error())
	}

	wishlist := make([]wishlistCourse, 0, len(items))
	for _, item := range items {
		var course models.Course
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", item.CourseID, false).
			Preload("Category").First(&course).Error; err != nil {
			continue
		}

		view := wishlistCourse{
			ID:            course.ID,
			Title:         course.Title,
			Thumbnail:     course.Thumbnail,
			Price:         course.Price,
			OriginalPrice: course.OriginalPrice,
			Instructor:    course.Instructor.Name,
			Level:         course.Level,
			RatingAverage: course.RatingAverage,
		}
		if course.Category != nil {
			view.CategoryName = course.Category.Name
			view.CategorySlug = course.Category.Slug
		}
		wishlist = append(wishlist, view)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wishlist fetched successfully!", fiber.Map{
		"wishlist": wishlist,
	})
}

// AddToWishlist adds a course to the user's wishlist
func AddToWishlist(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAddToWishlist").(*struct {
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

	var existing models.WishlistItem
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course is already in your wishlist!", nil)
	}

	item := models.WishlistItem{UserID: userID, CourseID: course.ID}
	if err := database.Database.Db.Create(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add course to wishlist!", err.Error())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course added to wishlist successfully!", nil)
}

// RemoveFromWishlist removes a course from the wishlist. Removing an
// absent course is not an error.
func RemoveFromWishlist(c *fiber.Ctx) error {
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
		Delete(&models.WishlistItem{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove course from wishlist!", err.Error())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course removed from wishlist successfully!", nil)
}
