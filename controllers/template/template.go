package templateController

import (
	"certiperu/database"
	"certiperu/middleware"
	"certiperu/models"
	"certiperu/services"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// TemplatePayload is the admin create/update body, validated upstream
type TemplatePayload struct {
	Name       string                 `json:"name"`
	CourseType string                 `json:"course_type"`
	IsDefault  bool                   `json:"is_default"`
	Config     *models.TemplateConfig `json:"config"`
}

// AdminCreateTemplate creates a certificate layout template
func AdminCreateTemplate(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTemplate").(*TemplatePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	tpl := services.NewTemplate(reqData.Name, reqData.CourseType, reqData.IsDefault, reqData.Config)
	if err := services.SaveTemplate(database.Database.Db, tpl); err != nil {
		log.Printf("Error creating template: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create template!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Template created successfully!", tpl)
}

// AdminUpdateTemplate edits a template. Setting it default clears the
// previous default for the same course type.
func AdminUpdateTemplate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid template id!", nil)
	}

	var tpl models.CertificateTemplate
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", id, false).First(&tpl).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Template not found!", nil)
	}

	reqData, ok := c.Locals("validatedTemplate").(*TemplatePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Name != "" {
		tpl.Name = reqData.Name
	}
	if reqData.CourseType != "" {
		tpl.CourseType = reqData.CourseType
	}
	tpl.IsDefault = reqData.IsDefault
	if reqData.Config != nil {
		tpl.Config = datatypes.NewJSONType(*reqData.Config)
	}

	if err := services.SaveTemplate(database.Database.Db, &tpl); err != nil {
		log.Printf("Error updating template: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update template!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Template updated successfully!", tpl)
}

// AdminGetTemplates lists templates, optionally by course type
func AdminGetTemplates(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.CertificateTemplate{}).Where("is_deleted = ?", false)
	if courseType := c.Query("course_type"); courseType != "" {
		db = db.Where("course_type = ?", courseType)
	}

	var templates []models.CertificateTemplate
	if err := db.Order("created_at desc").Find(&templates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch templates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Templates fetched successfully!", templates)
}

// AdminDeleteTemplate soft-deletes a template
func AdminDeleteTemplate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid template id!", nil)
	}

	if err := services.DeleteTemplate(database.Database.Db, uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Template not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete template!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Template deleted successfully!", nil)
}
