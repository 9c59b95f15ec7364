package settingsValidator

import (
	"certiperu/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func UpdateSettings() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name           string `json:"name"`
			RUC            string `json:"ruc"`
			Address        string `json:"address"`
			Website        string `json:"website"`
			SignatoryName  string `json:"signatory_name"`
			SignatoryTitle string `json:"signatory_title"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Institution name is required!"
		}
		if reqData.RUC != "" && len(reqData.RUC) != 11 {
			errors["ruc"] = "RUC must have 11 digits!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSettings", reqData)
		return c.Next()
	}
}
