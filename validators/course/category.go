package courseValidator

import (
	"certiperu/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SaveCategory validates the admin category body. requireName is true on
// create.
func SaveCategory(requireName bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if requireName && strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		} else if reqData.Name != "" && len(strings.TrimSpace(reqData.Name)) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}
