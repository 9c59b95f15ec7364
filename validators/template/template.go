package templateValidator

import (
	templateController "certiperu/controllers/template"
	"certiperu/middleware"
	"certiperu/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SaveTemplate validates the admin template body. requireAll is true on
// create.
func SaveTemplate(requireAll bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(templateController.TemplatePayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if requireAll && strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if requireAll && reqData.CourseType == "" {
			errors["course_type"] = "Course type is required!"
		}
		if reqData.CourseType != "" && !models.ValidCourseType(reqData.CourseType) {
			errors["course_type"] = "Course type must be DIPLOMADO, CURSO or CONSTANCIA!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTemplate", reqData)
		return c.Next()
	}
}
