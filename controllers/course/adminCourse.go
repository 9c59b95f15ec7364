package controllers

import (
	"certiperu/database"
	"certiperu/middleware"
	"certiperu/models"
	"certiperu/services"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CoursePayload is the admin create/update body, validated upstream
type CoursePayload struct {
	Name               string   `json:"name" validate:"required,min=3"`
	Description        string   `json:"description"`
	Type               string   `json:"type" validate:"omitempty,oneof=DIPLOMADO CURSO CONSTANCIA"`
	Modality           string   `json:"modality" validate:"omitempty,oneof=PRESENCIAL VIRTUAL SEMIPRESENCIAL"`
	AcademicHours      int      `json:"academic_hours" validate:"gte=0"`
	ChronologicalHours int      `json:"chronological_hours" validate:"gte=0"`
	Credits            float64  `json:"credits" validate:"gte=0"`
	Syllabus           []string `json:"syllabus"`
	Price              float64  `json:"price" validate:"gte=0"`
	Capacity           int      `json:"capacity" validate:"gte=0"`
	StartDate          string   `json:"start_date"` // 2006-01-02
	EndDate            string   `json:"end_date"`
	IsActive           *bool    `json:"is_active"`
	IsFeatured         *bool    `json:"is_featured"`
	CategoryID         *uint    `json:"category_id"`
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// AdminCreateCourse creates a new catalog course
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*CoursePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if reqData.CategoryID != nil {
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.CategoryID, false).First(&models.Category{}).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
		}
	}

	slug, err := services.UniqueSlug(db, "courses", reqData.Name, 0)
	if err != nil {
		log.Printf("Error generating course slug: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	course := models.Course{
		Name:               reqData.Name,
		Slug:               slug,
		Description:        reqData.Description,
		AcademicHours:      reqData.AcademicHours,
		ChronologicalHours: reqData.ChronologicalHours,
		Credits:            reqData.Credits,
		Syllabus:           reqData.Syllabus,
		Price:              reqData.Price,
		Capacity:           reqData.Capacity,
		StartDate:          parseDate(reqData.StartDate),
		EndDate:            parseDate(reqData.EndDate),
		CategoryID:         reqData.CategoryID,
		IsActive:           true,
	}
	if reqData.Type != "" {
		course.Type = reqData.Type
	}
	if reqData.Modality != "" {
		course.Modality = reqData.Modality
	}
	if reqData.IsActive != nil {
		course.IsActive = *reqData.IsActive
	}
	if reqData.IsFeatured != nil {
		course.IsFeatured = *reqData.IsFeatured
	}

	if err := db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse updates an existing course. The slug is regenerated when
// the name changes.
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*CoursePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Name != "" && reqData.Name != course.Name {
		slug, err := services.UniqueSlug(db, "courses", reqData.Name, course.ID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
		}
		course.Name = reqData.Name
		course.Slug = slug
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Type != "" {
		course.Type = reqData.Type
	}
	if reqData.Modality != "" {
		course.Modality = reqData.Modality
	}
	if reqData.AcademicHours > 0 {
		course.AcademicHours = reqData.AcademicHours
	}
	if reqData.ChronologicalHours > 0 {
		course.ChronologicalHours = reqData.ChronologicalHours
	}
	if reqData.Credits > 0 {
		course.Credits = reqData.Credits
	}
	if reqData.Syllabus != nil {
		course.Syllabus = reqData.Syllabus
	}
	if reqData.Price > 0 {
		course.Price = reqData.Price
	}
	if reqData.Capacity > 0 {
		course.Capacity = reqData.Capacity
	}
	if d := parseDate(reqData.StartDate); d != nil {
		course.StartDate = d
	}
	if d := parseDate(reqData.EndDate); d != nil {
		course.EndDate = d
	}
	if reqData.IsActive != nil {
		course.IsActive = *reqData.IsActive
	}
	if reqData.IsFeatured != nil {
		course.IsFeatured = *reqData.IsFeatured
	}
	if reqData.CategoryID != nil {
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.CategoryID, false).First(&models.Category{}).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
		}
		course.CategoryID = reqData.CategoryID
	}

	if err := db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse removes a course. With dependent enrollments or
// certificates the course is only deactivated; otherwise it is hard-deleted.
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var dependents int64
	db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&dependents)
	if dependents == 0 {
		db.Model(&models.Certificate{}).Where("course_id = ?", course.ID).Count(&dependents)
	}

	if dependents > 0 {
		course.IsActive = false
		course.IsDeleted = true
		if err := db.Save(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deactivated (has enrollments or certificates).", nil)
	}

	if err := db.Unscoped().Delete(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AdminGetCourses lists all courses for the back office
func AdminGetCourses(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	db := database.Database.Db.Model(&models.Course{}).Where("is_deleted = ?", false)
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

// AdminGetCourseDetails returns one course by id
func AdminGetCourseDetails(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}
