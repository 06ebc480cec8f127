package categoryController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	categoryValidator "lms/validators/category"

	"github.com/gofiber/fiber/v2"
)

// countCourses recomputes the denormalized published-course count
func countCourses(categoryID uint) int64 {
	var count int64
	database.Database.Db.Model(&models.Course{}).
		Where("category_id = ? AND is_published = ? AND is_deleted = ?", categoryID, true, false).
		Count(&count)
	return count
}

// GetAllCategories lists categories with recomputed course counts
func GetAllCategories(c *fiber.Ctx) error {
	includeInactive := c.Query("includeInactive") == "true"

	db := database.Database.Db.Where("is_deleted = ?", false)
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}

	var categories []models.Category
	if err := db.Preload("Subcategories", "is_deleted = ?", false).
		Order("display_order asc, name asc").
		Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", err.Error())
	}

	for i := range categories {
		categories[i].CourseCount = countCourses(categories[i].ID)
		for j := range categories[i].Subcategories {
			categories[i].Subcategories[j].CourseCount = countCourses(categories[i].Subcategories[j].ID)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", fiber.Map{
		"categories": categories,
	})
}

// GetCategoryBySlug returns one category with parent and children
func GetCategoryBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var category models.Category
	if err := database.Database.Db.
		Where("slug = ? AND is_deleted = ?", slug, false).
		Preload("Parent").
		Preload("Subcategories", "is_deleted = ?", false).
		First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	category.CourseCount = countCourses(category.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category fetched successfully!", fiber.Map{
		"category": category,
	})
}

// CreateCategory creates a category, optionally linked to a parent
func CreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategory").(*categoryValidator.CreateCategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var existing models.Category
	if err := database.Database.Db.Where("name = ? AND is_deleted = ?", reqData.Name, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Category with this name already exists!", nil)
	}

	if reqData.ParentID != nil {
		var parent models.Category
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", *reqData.ParentID, false).First(&parent).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Parent category not found!", nil)
		}
	}

	category := models.Category{
		Name:         reqData.Name,
		Slug:         utils.Slugify(reqData.Name),
		Description:  reqData.Description,
		ParentID:     reqData.ParentID,
		DisplayOrder: reqData.DisplayOrder,
		IsActive:     true,
	}
	if reqData.Icon != "" {
		category.Icon = reqData.Icon
	}
	if reqData.Color != "" {
		category.Color = reqData.Color
	}
	if reqData.IsActive != nil {
		category.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Create(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", err.Error())
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

// UpdateCategory applies an allow-listed update; a name change
// regenerates the slug. Reparenting is not cycle checked.
func UpdateCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil || categoryID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category ID!", nil)
	}

	reqData, ok := c.Locals("validatedCategoryUpdate").(*categoryValidator.UpdateCategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var category models.Category
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", categoryID, false).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
		updates["slug"] = utils.Slugify(*reqData.Name)
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Icon != nil {
		updates["icon"] = *reqData.Icon
	}
	if reqData.Color != nil {
		updates["color"] = *reqData.Color
	}
	if reqData.ParentID != nil {
		var parent models.Category
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", *reqData.ParentID, false).First(&parent).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Parent category not found!", nil)
		}
		updates["parent_id"] = parent.ID
	}
	if reqData.DisplayOrder != nil {
		updates["display_order"] = *reqData.DisplayOrder
	}
	if reqData.IsActive != nil {
		updates["is_active"] = *reqData.IsActive
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&category).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update category!", err.Error())
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully!", category)
}

// DeleteCategory soft deletes a category. Refused while any course
// still references it.
func DeleteCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil || categoryID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category ID!", nil)
	}

	var category models.Category
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", categoryID, false).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	var courseCount int64
	database.Database.Db.Model(&models.Course{}).
		Where("category_id = ? AND is_deleted = ?", category.ID, false).
		Count(&courseCount)
	if courseCount > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false,
			"Cannot delete category with existing courses. Please move courses to another category first.", nil)
	}

	if err := database.Database.Db.Model(&category).Updates(map[string]interface{}{
		"is_deleted": true,
		"parent_id":  nil,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete category!", err.Error())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully!", nil)
}
