package controllers

import (
	"certiperu/database"
	"certiperu/middleware"
	"certiperu/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetCourses lists active catalog courses with filters and pagination
func GetCourses(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	db := database.Database.Db.Model(&models.Course{}).
		Where("is_deleted = ? AND is_active = ?", false, true)

	if courseType := c.Query("type"); courseType != "" {
		db = db.Where("type = ?", strings.ToUpper(courseType))
	}
	if categorySlug := c.Query("category"); categorySlug != "" {
		var category models.Category
		if err := database.Database.Db.Where("slug = ? AND is_deleted = ?", categorySlug, false).First(&category).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
		}
		db = db.Where("category_id = ?", category.ID)
	}
	if c.Query("featured") == "true" {
		db = db.Where("is_featured = ?", true)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	db.Count(&total)

	var courses []models.Course
	if err := db.Offset((page - 1) * limit).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetCourseBySlug returns one active course by its catalog slug
func GetCourseBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var course models.Course
	err := database.Database.Db.
		Where("slug = ? AND is_deleted = ? AND is_active = ?", slug, false, true).
		First(&course).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// GetCategories lists catalog categories
func GetCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("name asc").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}
