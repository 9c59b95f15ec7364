package verifyController

import (
	"certiperu/database"
	"certiperu/middleware"
	"certiperu/services"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// VerifyCertificate answers a public verification lookup. The response body
// is always the structured result, with 404 only when the code is unknown.
func VerifyCertificate(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Verification code is required!", nil)
	}

	result, err := services.Verify(database.Database.Db, code)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(result)
		}
		log.Printf("Error verifying certificate: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify certificate!", nil)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
